// Package service implements the read-model resolvers and the transaction
// orchestrator for the land marketplace. Every resolution is a fresh set
// of ledger reads; nothing is cached across calls.
package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/landgrid/landgrid-backend/internal/model"
	"github.com/landgrid/landgrid-backend/pkg/paced"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerReader is the read half of the contract gateway.
	LedgerReader interface {
		OwnerAddress(ctx context.Context) (common.Address, error)
		ProjectCount(ctx context.Context) (uint64, error)
		ProjectInfo(ctx context.Context, landID uint64) (model.LandProject, error)
		MintedCount(ctx context.Context, landID uint64) (uint64, error)
		TotalMintedTokens(ctx context.Context) (uint64, error)
		TokenInfo(ctx context.Context, tokenID uint64) (model.TokenInfo, error)
		TokenOwner(ctx context.Context, tokenID uint64) (common.Address, error)
		ResalePrice(ctx context.Context, tokenID uint64) (*big.Int, error)
		IsPrimarySaleEligible(ctx context.Context, tokenID uint64) (bool, error)
		IsProjectOnHold(ctx context.Context, landID uint64) (bool, error)
	}

	// LedgerWriter is the write half of the contract gateway. Every call
	// submits one transaction and blocks until it is confirmed.
	LedgerWriter interface {
		BuyPlot(ctx context.Context, s model.Session, tokenID uint64, value *big.Int) error
		BuyResale(ctx context.Context, s model.Session, tokenID uint64, value *big.Int) error
		ListForSale(ctx context.Context, s model.Session, tokenID uint64, price *big.Int) error
		Unlist(ctx context.Context, s model.Session, tokenID uint64) error
		MintPlot(ctx context.Context, s model.Session, landID uint64) error
		MintPlotsBatch(ctx context.Context, s model.Session, landID, count uint64) error
		CreateProject(ctx context.Context, s model.Session, p model.CreateProjectParams) error
		DeactivateProject(ctx context.Context, s model.Session, landID uint64) error
		HoldProject(ctx context.Context, s model.Session, landID uint64) error
		UnholdProject(ctx context.Context, s model.Session, landID uint64) error
		DeleteProject(ctx context.Context, s model.Session, landID uint64) error
	}

	// ResolverMetrics records read-model resolutions.
	ResolverMetrics interface {
		ObserveResolve(kind string, err error, attempted, skipped uint64, started time.Time)
	}

	// OrchestratorMetrics records write operations and batch outcomes.
	OrchestratorMetrics interface {
		ObserveWrite(operation string, err error, started time.Time)
		ObserveBatch(operation string, requested, succeeded, failed uint64, stopped bool, started time.Time)
	}

	// SequentialRunner paces the one-by-one mint fallback.
	SequentialRunner interface {
		Run(ctx context.Context, count int, task func(context.Context, int) error, stop func(error) bool) (paced.Result, error)
	}
)

// ScanReport makes best-effort scans auditable: skipped reads are an
// explicit, counted policy rather than silently missing data.
type ScanReport struct {
	Attempted uint64
	Matched   uint64
	Skipped   uint64
}
