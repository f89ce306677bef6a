package interfaces

import (
	"context"
	"time"

	"github.com/apkshelf/apkshelf/pkg/domain/model"
)

// ResolverUseCase resolves targets into button states
type ResolverUseCase interface {
	// Resolve updates btn from the latest release of target. It never fails.
	Resolve(ctx context.Context, target *model.Target, btn *model.Button) model.Outcome

	// ResolveAll resolves every target into the button with the same index, concurrently
	ResolveAll(ctx context.Context, targets []*model.Target, buttons []*model.Button) []model.Outcome
}

// BoardUseCase holds the current button state of every target
type BoardUseCase interface {
	Refresh(ctx context.Context)
	Snapshot() []*model.Card

	// Run refreshes immediately and then every interval until ctx is done
	Run(ctx context.Context, interval time.Duration)
}

// VisitUseCase records page views
type VisitUseCase interface {
	Track(ctx context.Context, source string) (*model.Visit, error)
	Count() uint64
}

// DisclaimerUseCase decides whether the first-visit disclaimer is shown
type DisclaimerUseCase interface {
	ShouldShow(store FlagStore) bool
	Acknowledge(store FlagStore)
}
