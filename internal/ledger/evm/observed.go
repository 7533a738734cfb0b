package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/landgrid/landgrid-backend/internal/model"
)

// GatewayMetrics records one gateway operation outcome.
type GatewayMetrics interface {
	Observe(operation string, err error, started time.Time)
}

// Observed wraps a Gateway and records per-operation metrics.
type Observed struct {
	gw      *Gateway
	metrics GatewayMetrics
}

// NewObserved decorates gw with metrics.
func NewObserved(gw *Gateway, metrics GatewayMetrics) *Observed {
	return &Observed{gw: gw, metrics: metrics}
}

func (o *Observed) OwnerAddress(ctx context.Context) (addr common.Address, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("owner_address", err, started) }()
	return o.gw.OwnerAddress(ctx)
}

func (o *Observed) ProjectCount(ctx context.Context) (count uint64, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("project_count", err, started) }()
	return o.gw.ProjectCount(ctx)
}

func (o *Observed) ProjectInfo(ctx context.Context, landID uint64) (p model.LandProject, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("project_info", err, started) }()
	return o.gw.ProjectInfo(ctx, landID)
}

func (o *Observed) MintedCount(ctx context.Context, landID uint64) (count uint64, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("minted_count", err, started) }()
	return o.gw.MintedCount(ctx, landID)
}

func (o *Observed) TotalMintedTokens(ctx context.Context) (total uint64, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("total_minted_tokens", err, started) }()
	return o.gw.TotalMintedTokens(ctx)
}

func (o *Observed) TokenInfo(ctx context.Context, tokenID uint64) (info model.TokenInfo, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("token_info", err, started) }()
	return o.gw.TokenInfo(ctx, tokenID)
}

func (o *Observed) TokenOwner(ctx context.Context, tokenID uint64) (addr common.Address, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("token_owner", err, started) }()
	return o.gw.TokenOwner(ctx, tokenID)
}

func (o *Observed) ResalePrice(ctx context.Context, tokenID uint64) (price *big.Int, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("resale_price", err, started) }()
	return o.gw.ResalePrice(ctx, tokenID)
}

func (o *Observed) IsPrimarySaleEligible(ctx context.Context, tokenID uint64) (ok bool, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("is_primary_sale_eligible", err, started) }()
	return o.gw.IsPrimarySaleEligible(ctx, tokenID)
}

func (o *Observed) IsProjectOnHold(ctx context.Context, landID uint64) (ok bool, err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("is_project_on_hold", err, started) }()
	return o.gw.IsProjectOnHold(ctx, landID)
}

func (o *Observed) BuyPlot(ctx context.Context, s model.Session, tokenID uint64, value *big.Int) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("buy_plot", err, started) }()
	return o.gw.BuyPlot(ctx, s, tokenID, value)
}

func (o *Observed) BuyResale(ctx context.Context, s model.Session, tokenID uint64, value *big.Int) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("buy_resale", err, started) }()
	return o.gw.BuyResale(ctx, s, tokenID, value)
}

func (o *Observed) ListForSale(ctx context.Context, s model.Session, tokenID uint64, price *big.Int) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("list_for_sale", err, started) }()
	return o.gw.ListForSale(ctx, s, tokenID, price)
}

func (o *Observed) Unlist(ctx context.Context, s model.Session, tokenID uint64) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("unlist", err, started) }()
	return o.gw.Unlist(ctx, s, tokenID)
}

func (o *Observed) MintPlot(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("mint_plot", err, started) }()
	return o.gw.MintPlot(ctx, s, landID)
}

func (o *Observed) MintPlotsBatch(ctx context.Context, s model.Session, landID, count uint64) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("mint_plots_batch", err, started) }()
	return o.gw.MintPlotsBatch(ctx, s, landID, count)
}

func (o *Observed) CreateProject(ctx context.Context, s model.Session, p model.CreateProjectParams) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("create_project", err, started) }()
	return o.gw.CreateProject(ctx, s, p)
}

func (o *Observed) DeactivateProject(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("deactivate_project", err, started) }()
	return o.gw.DeactivateProject(ctx, s, landID)
}

func (o *Observed) HoldProject(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("hold_project", err, started) }()
	return o.gw.HoldProject(ctx, s, landID)
}

func (o *Observed) UnholdProject(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("unhold_project", err, started) }()
	return o.gw.UnholdProject(ctx, s, landID)
}

func (o *Observed) DeleteProject(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.metrics.Observe("delete_project", err, started) }()
	return o.gw.DeleteProject(ctx, s, landID)
}
