package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
)

type visitUseCase struct {
	count atomic.Uint64
}

// NewVisit creates a new instance of VisitUseCase
func NewVisit() interfaces.VisitUseCase {
	return &visitUseCase{}
}

// Track records one page view. The log line is the invocation metric.
func (uc *visitUseCase) Track(ctx context.Context, source string) (*model.Visit, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate visit id")
	}

	visit := &model.Visit{
		ID:        id,
		Source:    source,
		Count:     uc.count.Add(1),
		CreatedAt: time.Now(),
	}

	ctxlog.From(ctx).Info("Visit tracked",
		"visit_id", visit.ID.String(),
		"source", visit.Source,
		"count", visit.Count,
	)

	return visit, nil
}

// Count returns the number of visits tracked since start
func (uc *visitUseCase) Count() uint64 {
	return uc.count.Load()
}
