package service

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/landgrid/landgrid-backend/internal/model"
	"github.com/landgrid/landgrid-backend/pkg/workerpool"
)

// PlotStatusResolver classifies every minted token of a project into a
// status, producing the project-scoped plot read-model.
//
// Tokens are minted across all projects against one shared counter, so a
// project resolution scans every token id on the platform and discards the
// ones that belong elsewhere. That makes each call O(total platform tokens),
// not O(tokens in the project). The ceiling comes from the contract's read
// surface; an indexed read-model would change the staleness semantics.
type PlotStatusResolver struct {
	reader      LedgerReader
	metrics     ResolverMetrics
	logger      *zap.Logger
	workerCount int
}

// NewPlotStatusResolver constructs a PlotStatusResolver.
func NewPlotStatusResolver(reader LedgerReader, metrics ResolverMetrics, logger *zap.Logger) *PlotStatusResolver {
	return &PlotStatusResolver{
		reader:      reader,
		metrics:     metrics,
		logger:      logger.Named("plotStatusResolver"),
		workerCount: defaultWorkerCount,
	}
}

// ResolveProjectPlots scans token ids 1..totalSupply and returns the plots
// of the given project sorted by plot number. capacity is the project's
// plot capacity, used only for sizing. A failed per-token read means "not
// minted yet or racing the scan" and skips the id.
func (r *PlotStatusResolver) ResolveProjectPlots(
	ctx context.Context,
	landID uint64,
	capacity uint64,
	platformOwner common.Address,
) ([]model.PlotToken, ScanReport, error) {
	started := time.Now()

	total, err := r.reader.TotalMintedTokens(ctx)
	if err != nil {
		r.metrics.ObserveResolve("project_plots", err, 0, 0, started)
		return nil, ScanReport{}, fmt.Errorf("read total minted tokens: %w", err)
	}

	tokenIDs := make([]uint64, total)
	for i := range tokenIDs {
		tokenIDs[i] = uint64(i) + 1
	}

	results := make([]*model.PlotToken, total)
	var skipped atomic.Uint64

	err = workerpool.Process(ctx, r.workerCount, tokenIDs, func(ctx context.Context, i int, tokenID uint64) error {
		info, err := r.reader.TokenInfo(ctx, tokenID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping unreadable token", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}
		if info.LandID != landID {
			return nil
		}

		owner, err := r.reader.TokenOwner(ctx, tokenID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping token with unreadable owner", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}
		resalePrice, err := r.reader.ResalePrice(ctx, tokenID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping token with unreadable resale price", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}
		eligible, err := r.reader.IsPrimarySaleEligible(ctx, tokenID)
		if err != nil {
			skipped.Add(1)
			r.logger.Debug("skipping token with unreadable sale flag", zap.Uint64("token_id", tokenID), zap.Error(err))
			return nil
		}

		results[i] = &model.PlotToken{
			TokenID:     tokenID,
			LandID:      landID,
			PlotNumber:  info.PlotNumber,
			MintPrice:   info.MintPrice,
			Owner:       owner,
			ResalePrice: resalePrice,
			Status:      classifyStatus(eligible, owner, platformOwner, resalePrice),
		}
		return nil
	})
	if err != nil {
		r.metrics.ObserveResolve("project_plots", err, total, skipped.Load(), started)
		return nil, ScanReport{}, err
	}

	plots := make([]model.PlotToken, 0, capacity)
	for _, p := range results {
		if p != nil {
			plots = append(plots, *p)
		}
	}
	sort.Slice(plots, func(i, j int) bool { return plots[i].PlotNumber < plots[j].PlotNumber })

	report := ScanReport{Attempted: total, Matched: uint64(len(plots)), Skipped: skipped.Load()}
	r.warnOnHighSkipRatio("project plot scan", landID, report)
	r.metrics.ObserveResolve("project_plots", nil, total, report.Skipped, started)
	return plots, report, nil
}

func (r *PlotStatusResolver) warnOnHighSkipRatio(scan string, landID uint64, report ScanReport) {
	if report.Attempted == 0 {
		return
	}
	if ratio := float64(report.Skipped) / float64(report.Attempted); ratio > skipWarnRatio {
		r.logger.Warn("high skip ratio, snapshot likely degraded",
			zap.String("scan", scan),
			zap.Uint64("land_id", landID),
			zap.Uint64("attempted", report.Attempted),
			zap.Uint64("skipped", report.Skipped),
		)
	}
}

// classifyStatus derives a plot status from the three independently read
// facts. Available wins over listed: primary inventory still held by the
// platform owner is for sale at base price even if a stray resale price
// exists (a state the contract should make unreachable).
func classifyStatus(primaryEligible bool, owner, platformOwner common.Address, resalePrice *big.Int) model.PlotStatus {
	switch {
	case primaryEligible && owner == platformOwner:
		return model.PlotAvailable
	case resalePrice != nil && resalePrice.Sign() > 0:
		return model.PlotListed
	default:
		return model.PlotSold
	}
}
