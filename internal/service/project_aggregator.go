package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/landgrid/landgrid-backend/internal/model"
	"github.com/landgrid/landgrid-backend/pkg/workerpool"
)

// ProjectAggregator produces the current full list of land projects with
// live minted counters attached.
type ProjectAggregator struct {
	reader      LedgerReader
	metrics     ResolverMetrics
	logger      *zap.Logger
	workerCount int
}

// NewProjectAggregator constructs a ProjectAggregator.
func NewProjectAggregator(reader LedgerReader, metrics ResolverMetrics, logger *zap.Logger) *ProjectAggregator {
	return &ProjectAggregator{
		reader:      reader,
		metrics:     metrics,
		logger:      logger.Named("projectAggregator"),
		workerCount: defaultWorkerCount,
	}
}

// ListAll reads the project counter and fans out one read per id, attaching
// each project's live minted count. A failed per-id read drops that project
// from the snapshot (logged, counted) instead of failing the whole call, so
// the result is best-effort, in id order.
func (a *ProjectAggregator) ListAll(ctx context.Context) ([]model.LandProject, error) {
	started := time.Now()

	count, err := a.reader.ProjectCount(ctx)
	if err != nil {
		a.metrics.ObserveResolve("projects", err, 0, 0, started)
		return nil, fmt.Errorf("read project counter: %w", err)
	}

	ids := make([]uint64, count)
	for i := range ids {
		ids[i] = uint64(i) + 1
	}

	results := make([]*model.LandProject, count)
	var skipped atomic.Uint64

	err = workerpool.Process(ctx, a.workerCount, ids, func(ctx context.Context, i int, id uint64) error {
		p, err := a.reader.ProjectInfo(ctx, id)
		if err != nil {
			skipped.Add(1)
			a.logger.Warn("skipping unreadable project", zap.Uint64("land_id", id), zap.Error(err))
			return nil
		}
		minted, err := a.reader.MintedCount(ctx, id)
		if err != nil {
			skipped.Add(1)
			a.logger.Warn("skipping project with unreadable minted count", zap.Uint64("land_id", id), zap.Error(err))
			return nil
		}
		p.PlotsMinted = minted
		results[i] = &p
		return nil
	})
	if err != nil {
		a.metrics.ObserveResolve("projects", err, count, skipped.Load(), started)
		return nil, err
	}

	projects := make([]model.LandProject, 0, count)
	for _, p := range results {
		if p != nil {
			projects = append(projects, *p)
		}
	}

	a.metrics.ObserveResolve("projects", nil, count, skipped.Load(), started)
	return projects, nil
}

// HoldStatuses reads the trading-suspension flag for each given project.
// Unreadable flags are omitted from the result.
func (a *ProjectAggregator) HoldStatuses(ctx context.Context, landIDs []uint64) (map[uint64]bool, error) {
	flags := make([]*bool, len(landIDs))

	err := workerpool.Process(ctx, a.workerCount, landIDs, func(ctx context.Context, i int, id uint64) error {
		onHold, err := a.reader.IsProjectOnHold(ctx, id)
		if err != nil {
			a.logger.Warn("skipping unreadable hold flag", zap.Uint64("land_id", id), zap.Error(err))
			return nil
		}
		flags[i] = &onHold
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[uint64]bool, len(landIDs))
	for i, f := range flags {
		if f != nil {
			out[landIDs[i]] = *f
		}
	}
	return out, nil
}
