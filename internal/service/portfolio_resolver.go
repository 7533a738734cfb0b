package service

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/landgrid/landgrid-backend/internal/model"
	"github.com/landgrid/landgrid-backend/pkg/workerpool"
)

// PortfolioResolver finds every token owned by an address and enriches it
// with project and listing data. Like the plot resolver it scans the whole
// token id range, so cost is O(total platform tokens) regardless of how
// many the user owns.
type PortfolioResolver struct {
	reader      LedgerReader
	metrics     ResolverMetrics
	logger      *zap.Logger
	workerCount int
}

// NewPortfolioResolver constructs a PortfolioResolver.
func NewPortfolioResolver(reader LedgerReader, metrics ResolverMetrics, logger *zap.Logger) *PortfolioResolver {
	return &PortfolioResolver{
		reader:      reader,
		metrics:     metrics,
		logger:      logger.Named("portfolioResolver"),
		workerCount: defaultWorkerCount,
	}
}

// ResolveOwnedPlots returns the portfolio rows for owner, sorted by token
// id. A zero owner address short-circuits to an empty result without any
// ledger read. Per-token read failures skip the token.
func (r *PortfolioResolver) ResolveOwnedPlots(ctx context.Context, owner common.Address) ([]model.OwnedPlotProjection, ScanReport, error) {
	if owner == (common.Address{}) {
		return nil, ScanReport{}, nil
	}

	started := time.Now()

	total, err := r.reader.TotalMintedTokens(ctx)
	if err != nil {
		r.metrics.ObserveResolve("portfolio", err, 0, 0, started)
		return nil, ScanReport{}, fmt.Errorf("read total minted tokens: %w", err)
	}

	tokenIDs := make([]uint64, total)
	for i := range tokenIDs {
		tokenIDs[i] = uint64(i) + 1
	}

	results := make([]*model.OwnedPlotProjection, total)
	var skipped atomic.Uint64

	err = workerpool.Process(ctx, r.workerCount, tokenIDs, func(ctx context.Context, i int, tokenID uint64) error {
		tokenOwner, err := r.reader.TokenOwner(ctx, tokenID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping token with unreadable owner", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}
		if tokenOwner != owner {
			return nil
		}

		info, err := r.reader.TokenInfo(ctx, tokenID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping owned token with unreadable record", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}
		project, err := r.reader.ProjectInfo(ctx, info.LandID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping owned token with unreadable project", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}
		resalePrice, err := r.reader.ResalePrice(ctx, tokenID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping owned token with unreadable resale price", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}

		row := &model.OwnedPlotProjection{
			TokenID:     tokenID,
			LandID:      info.LandID,
			PlotNumber:  info.PlotNumber,
			ProjectName: project.Name,
			MintPrice:   info.MintPrice,
		}
		if resalePrice != nil && resalePrice.Sign() > 0 {
			row.Listed = true
			row.ListingPrice = resalePrice
		}
		results[i] = row
		return nil
	})
	if err != nil {
		r.metrics.ObserveResolve("portfolio", err, total, skipped.Load(), started)
		return nil, ScanReport{}, err
	}

	rows := make([]model.OwnedPlotProjection, 0)
	for _, row := range results {
		if row != nil {
			rows = append(rows, *row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TokenID < rows[j].TokenID })

	report := ScanReport{Attempted: total, Matched: uint64(len(rows)), Skipped: skipped.Load()}
	r.metrics.ObserveResolve("portfolio", nil, total, report.Skipped, started)
	return rows, report, nil
}
