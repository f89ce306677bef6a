package usecase

import (
	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
)

const (
	// DisclaimerKey is the flag store key for disclaimer acknowledgment
	DisclaimerKey = "apkshelf_disclaimer_acknowledged"

	disclaimerAcknowledged = "true"
)

type disclaimerUseCase struct{}

// NewDisclaimer creates a new instance of DisclaimerUseCase
func NewDisclaimer() interfaces.DisclaimerUseCase {
	return &disclaimerUseCase{}
}

// ShouldShow reports whether the first-visit disclaimer must be scheduled
func (uc *disclaimerUseCase) ShouldShow(store interfaces.FlagStore) bool {
	v, ok := store.Get(DisclaimerKey)
	return !ok || v != disclaimerAcknowledged
}

// Acknowledge persists the acknowledgment flag
func (uc *disclaimerUseCase) Acknowledge(store interfaces.FlagStore) {
	store.Set(DisclaimerKey, disclaimerAcknowledged)
}
