// Package transport exposes the HTTP read API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/landgrid/landgrid-backend/internal/ledger"
	"github.com/landgrid/landgrid-backend/internal/model"
	"github.com/landgrid/landgrid-backend/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ProjectLister serves the project list view.
	ProjectLister interface {
		ListAll(ctx context.Context) ([]model.LandProject, error)
		HoldStatuses(ctx context.Context, landIDs []uint64) (map[uint64]bool, error)
	}

	// PlotResolver serves the per-project plot view.
	PlotResolver interface {
		ResolveProjectPlots(ctx context.Context, landID, capacity uint64, platformOwner common.Address) ([]model.PlotToken, service.ScanReport, error)
	}

	// PortfolioReader serves the per-address holdings view.
	PortfolioReader interface {
		ResolveOwnedPlots(ctx context.Context, owner common.Address) ([]model.OwnedPlotProjection, service.ScanReport, error)
	}

	// StatsReader serves the dashboard counters.
	StatsReader interface {
		Resolve(ctx context.Context) (model.MarketStats, error)
	}

	// ProjectReader supplies the contract facts the plot view needs.
	ProjectReader interface {
		OwnerAddress(ctx context.Context) (common.Address, error)
		ProjectInfo(ctx context.Context, landID uint64) (model.LandProject, error)
	}

	// RefResolver turns opaque content references into fetchable URLs.
	RefResolver interface {
		GatewayURL(ref string) string
	}
)

// MarketHandler implements the JSON read API over the resolvers.
type MarketHandler struct {
	projects  ProjectLister
	plots     PlotResolver
	portfolio PortfolioReader
	stats     StatsReader
	reader    ProjectReader
	refs      RefResolver
	logger    *zap.Logger
}

// NewMarketHandler returns a MarketHandler instance.
func NewMarketHandler(
	projects ProjectLister,
	plots PlotResolver,
	portfolio PortfolioReader,
	stats StatsReader,
	reader ProjectReader,
	refs RefResolver,
	logger *zap.Logger,
) *MarketHandler {
	return &MarketHandler{
		projects:  projects,
		plots:     plots,
		portfolio: portfolio,
		stats:     stats,
		reader:    reader,
		refs:      refs,
		logger:    logger.Named("marketHandler"),
	}
}

// Register mounts the API routes on mux.
func (h *MarketHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/projects", h.listProjects)
	mux.HandleFunc("GET /v1/projects/{id}/plots", h.projectPlots)
	mux.HandleFunc("GET /v1/portfolio/{address}", h.portfolioByAddress)
	mux.HandleFunc("GET /v1/stats", h.marketStats)
	mux.HandleFunc("GET /v1/health", h.health)
}

type projectResponse struct {
	LandID      uint64 `json:"landId"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	TotalArea   uint64 `json:"totalArea"`
	PlotSize    uint64 `json:"plotSize"`
	NumPlots    uint64 `json:"numPlots"`
	PlotsMinted uint64 `json:"plotsMinted"`
	BasePrice   string `json:"basePrice"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ContactInfo string `json:"contactInfo,omitempty"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	OnHold      bool   `json:"onHold"`
}

type plotResponse struct {
	TokenID     uint64 `json:"tokenId"`
	PlotNumber  uint64 `json:"plotNumber"`
	Owner       string `json:"owner"`
	MintPrice   string `json:"mintPrice"`
	ResalePrice string `json:"resalePrice,omitempty"`
	Status      string `json:"status"`
}

type portfolioRowResponse struct {
	TokenID      uint64 `json:"tokenId"`
	LandID       uint64 `json:"landId"`
	PlotNumber   uint64 `json:"plotNumber"`
	ProjectName  string `json:"projectName"`
	MintPrice    string `json:"mintPrice"`
	Listed       bool   `json:"listed"`
	ListingPrice string `json:"listingPrice,omitempty"`
}

type scanResponse struct {
	Attempted uint64 `json:"attempted"`
	Matched   uint64 `json:"matched"`
	Skipped   uint64 `json:"skipped"`
}

type statsResponse struct {
	TotalProjects uint64 `json:"totalProjects"`
	TotalPlots    uint64 `json:"totalPlots"`
	PlotsSold     uint64 `json:"plotsSold"`
}

func (h *MarketHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.projects.ListAll(ctx)
	if err != nil {
		h.writeError(w, "list projects", err)
		return
	}

	ids := make([]uint64, len(projects))
	for i, p := range projects {
		ids[i] = p.LandID
	}
	holds, err := h.projects.HoldStatuses(ctx, ids)
	if err != nil {
		h.writeError(w, "read hold statuses", err)
		return
	}

	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = projectResponse{
			LandID:      p.LandID,
			Name:        p.Name,
			Location:    p.Location,
			TotalArea:   p.TotalArea,
			PlotSize:    p.PlotSize,
			NumPlots:    p.NumPlots,
			PlotsMinted: p.PlotsMinted,
			BasePrice:   model.FormatEther(p.BasePrice),
			ImageURL:    h.refs.GatewayURL(p.ImageRef),
			ContactInfo: p.ContactInfo,
			Description: p.Description,
			Active:      p.Active,
			OnHold:      holds[p.LandID],
		}
	}

	h.writeJSON(w, http.StatusOK, struct {
		Projects []projectResponse `json:"projects"`
	}{Projects: out})
}

func (h *MarketHandler) projectPlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	landID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || landID == 0 {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	owner, err := h.reader.OwnerAddress(ctx)
	if err != nil {
		h.writeError(w, "read platform owner", err)
		return
	}
	project, err := h.reader.ProjectInfo(ctx, landID)
	if err != nil {
		// The contract reverts project reads for ids it never issued.
		if errors.Is(err, ledger.ErrNetworkUnavailable) {
			h.writeError(w, "read project", err)
			return
		}
		h.logger.Debug("project lookup failed", zap.Uint64("land_id", landID), zap.Error(err))
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}

	plots, report, err := h.plots.ResolveProjectPlots(ctx, landID, project.NumPlots, owner)
	if err != nil {
		h.writeError(w, "resolve plots", err)
		return
	}

	out := make([]plotResponse, len(plots))
	for i, p := range plots {
		out[i] = plotResponse{
			TokenID:    p.TokenID,
			PlotNumber: p.PlotNumber,
			Owner:      p.Owner.Hex(),
			MintPrice:  model.FormatEther(p.MintPrice),
			Status:     string(p.Status),
		}
		if p.ResalePrice != nil && p.ResalePrice.Sign() > 0 {
			out[i].ResalePrice = model.FormatEther(p.ResalePrice)
		}
	}

	h.writeJSON(w, http.StatusOK, struct {
		Plots []plotResponse `json:"plots"`
		Scan  scanResponse   `json:"scan"`
	}{
		Plots: out,
		Scan:  scanResponse{Attempted: report.Attempted, Matched: report.Matched, Skipped: report.Skipped},
	})
}

func (h *MarketHandler) portfolioByAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.PathValue("address")
	if !common.IsHexAddress(raw) {
		http.Error(w, "invalid address", http.StatusBadRequest)
		return
	}

	rows, report, err := h.portfolio.ResolveOwnedPlots(ctx, common.HexToAddress(raw))
	if err != nil {
		h.writeError(w, "resolve portfolio", err)
		return
	}

	out := make([]portfolioRowResponse, len(rows))
	for i, row := range rows {
		out[i] = portfolioRowResponse{
			TokenID:     row.TokenID,
			LandID:      row.LandID,
			PlotNumber:  row.PlotNumber,
			ProjectName: row.ProjectName,
			MintPrice:   model.FormatEther(row.MintPrice),
			Listed:      row.Listed,
		}
		if row.Listed {
			out[i].ListingPrice = model.FormatEther(row.ListingPrice)
		}
	}

	h.writeJSON(w, http.StatusOK, struct {
		Plots []portfolioRowResponse `json:"plots"`
		Scan  scanResponse           `json:"scan"`
	}{
		Plots: out,
		Scan:  scanResponse{Attempted: report.Attempted, Matched: report.Matched, Skipped: report.Skipped},
	})
}

func (h *MarketHandler) marketStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Resolve(r.Context())
	if err != nil {
		h.writeError(w, "resolve stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{
		TotalProjects: stats.TotalProjects,
		TotalPlots:    stats.TotalPlots,
		PlotsSold:     stats.PlotsSold,
	})
}

func (h *MarketHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "healthy"})
}

func (h *MarketHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

func (h *MarketHandler) writeError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op, zap.Error(err))
	if errors.Is(err, ledger.ErrNetworkUnavailable) {
		http.Error(w, "upstream node unavailable", http.StatusBadGateway)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
