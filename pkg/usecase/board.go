package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
)

type boardUseCase struct {
	resolver interfaces.ResolverUseCase
	targets  []*model.Target

	mu    sync.RWMutex
	cards []*model.Card

	// refreshMu serializes refreshes so an older result never overwrites a newer one
	refreshMu sync.Mutex
	now       func() time.Time
}

// NewBoard creates a board with one unresolved button per target
func NewBoard(resolver interfaces.ResolverUseCase, targets []*model.Target) interfaces.BoardUseCase {
	cards := make([]*model.Card, len(targets))
	for i, target := range targets {
		cards[i] = &model.Card{
			Target: target,
			Button: target.NewButton(),
		}
	}

	return &boardUseCase{
		resolver: resolver,
		targets:  targets,
		cards:    cards,
		now:      time.Now,
	}
}

// Refresh resolves every target into a fresh button and swaps the whole board in at once,
// so readers never see a half-updated board. Each refresh is one button lifetime.
func (uc *boardUseCase) Refresh(ctx context.Context) {
	uc.refreshMu.Lock()
	defer uc.refreshMu.Unlock()

	logger := ctxlog.From(ctx)
	started := uc.now()

	buttons := make([]*model.Button, len(uc.targets))
	for i, target := range uc.targets {
		buttons[i] = target.NewButton()
	}

	outcomes := uc.resolver.ResolveAll(ctx, uc.targets, buttons)

	resolvedAt := uc.now()
	cards := make([]*model.Card, len(uc.targets))
	counts := map[model.Outcome]int{}
	for i, target := range uc.targets {
		cards[i] = &model.Card{
			Target:     target,
			Button:     buttons[i],
			Outcome:    outcomes[i],
			ResolvedAt: resolvedAt,
		}
		counts[outcomes[i]]++
	}

	uc.mu.Lock()
	uc.cards = cards
	uc.mu.Unlock()

	logger.Info("Refreshed release board",
		"targets", len(cards),
		"asset", counts[model.OutcomeAsset],
		"no_matching_asset", counts[model.OutcomeNoMatchingAsset],
		"fallback", counts[model.OutcomeFallback],
		"duration_ms", resolvedAt.Sub(started).Milliseconds(),
	)
}

// Snapshot returns copies of the current cards
func (uc *boardUseCase) Snapshot() []*model.Card {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	cards := make([]*model.Card, len(uc.cards))
	for i, card := range uc.cards {
		c := *card
		c.Button = card.Button.Clone()
		cards[i] = &c
	}
	return cards
}

// Run refreshes the board immediately and then every interval until ctx is done.
// A zero interval refreshes once.
func (uc *boardUseCase) Run(ctx context.Context, interval time.Duration) {
	uc.Refresh(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.Refresh(ctx)
		}
	}
}
