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

// StatsResolver computes the platform-wide dashboard numbers. A plot
// counts as sold once its primary-sale eligibility is exhausted.
type StatsResolver struct {
	reader      LedgerReader
	metrics     ResolverMetrics
	logger      *zap.Logger
	workerCount int
}

// NewStatsResolver constructs a StatsResolver.
func NewStatsResolver(reader LedgerReader, metrics ResolverMetrics, logger *zap.Logger) *StatsResolver {
	return &StatsResolver{
		reader:      reader,
		metrics:     metrics,
		logger:      logger.Named("statsResolver"),
		workerCount: defaultWorkerCount,
	}
}

// Resolve reads the project counter, the total token count, and scans
// per-token sale flags. Unreadable flags are skipped.
func (r *StatsResolver) Resolve(ctx context.Context) (model.MarketStats, error) {
	started := time.Now()

	projects, err := r.reader.ProjectCount(ctx)
	if err != nil {
		r.metrics.ObserveResolve("stats", err, 0, 0, started)
		return model.MarketStats{}, fmt.Errorf("read project counter: %w", err)
	}
	total, err := r.reader.TotalMintedTokens(ctx)
	if err != nil {
		r.metrics.ObserveResolve("stats", err, 0, 0, started)
		return model.MarketStats{}, fmt.Errorf("read total minted tokens: %w", err)
	}

	tokenIDs := make([]uint64, total)
	for i := range tokenIDs {
		tokenIDs[i] = uint64(i) + 1
	}

	var sold, skipped atomic.Uint64
	err = workerpool.Process(ctx, r.workerCount, tokenIDs, func(ctx context.Context, _ int, tokenID uint64) error {
		eligible, err := r.reader.IsPrimarySaleEligible(ctx, tokenID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping token with unreadable sale flag", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}
		if !eligible {
			sold.Add(1)
		}
		return nil
	})
	if err != nil {
		r.metrics.ObserveResolve("stats", err, total, skipped.Load(), started)
		return model.MarketStats{}, err
	}

	r.metrics.ObserveResolve("stats", nil, total, skipped.Load(), started)
	return model.MarketStats{
		TotalProjects: projects,
		TotalPlots:    total,
		PlotsSold:     sold.Load(),
	}, nil
}
