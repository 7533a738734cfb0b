package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/landgrid/landgrid-backend/internal/ledger"
	"github.com/landgrid/landgrid-backend/internal/model"
)

// BatchMintResult summarizes one batch mint run. StopCause is set only
// when Stopped is true and carries the rejection that ended the run.
type BatchMintResult struct {
	OperationID uuid.UUID
	Requested   uint64
	Minted      uint64
	Failed      uint64
	Chunks      int
	Stopped     bool
	StopCause   error
}

// TransactionOrchestrator sequences ledger writes. It holds no state
// between calls; the session descriptor carries everything a write needs.
type TransactionOrchestrator struct {
	reader     LedgerReader
	writer     LedgerWriter
	sequential SequentialRunner
	metrics    OrchestratorMetrics
	logger     *zap.Logger
}

// NewTransactionOrchestrator constructs a TransactionOrchestrator.
func NewTransactionOrchestrator(
	reader LedgerReader,
	writer LedgerWriter,
	sequential SequentialRunner,
	metrics OrchestratorMetrics,
	logger *zap.Logger,
) *TransactionOrchestrator {
	return &TransactionOrchestrator{
		reader:     reader,
		writer:     writer,
		sequential: sequential,
		metrics:    metrics,
		logger:     logger.Named("orchestrator"),
	}
}

func (o *TransactionOrchestrator) observeWrite(operation string, err error, started time.Time) {
	o.metrics.ObserveWrite(operation, err, started)
}

// BuyPlot executes a primary-sale purchase at the given price.
func (o *TransactionOrchestrator) BuyPlot(ctx context.Context, s model.Session, tokenID uint64, price *big.Int) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("buy_plot", err, started) }()
	if err = o.writer.BuyPlot(ctx, s, tokenID, price); err != nil {
		return fmt.Errorf("buy plot %d: %w", tokenID, err)
	}
	return nil
}

// BuyResale executes a resale purchase at the listed price.
func (o *TransactionOrchestrator) BuyResale(ctx context.Context, s model.Session, tokenID uint64, price *big.Int) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("buy_resale", err, started) }()
	if err = o.writer.BuyResale(ctx, s, tokenID, price); err != nil {
		return fmt.Errorf("buy resale %d: %w", tokenID, err)
	}
	return nil
}

// ListForSale lists an owned plot at the given asking price.
func (o *TransactionOrchestrator) ListForSale(ctx context.Context, s model.Session, tokenID uint64, price *big.Int) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("list_for_sale", err, started) }()
	if err = o.writer.ListForSale(ctx, s, tokenID, price); err != nil {
		return fmt.Errorf("list plot %d: %w", tokenID, err)
	}
	return nil
}

// Unlist withdraws an owned plot from the resale market.
func (o *TransactionOrchestrator) Unlist(ctx context.Context, s model.Session, tokenID uint64) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("unlist", err, started) }()
	if err = o.writer.Unlist(ctx, s, tokenID); err != nil {
		return fmt.Errorf("unlist plot %d: %w", tokenID, err)
	}
	return nil
}

// MintPlot mints a single plot token for the given project.
func (o *TransactionOrchestrator) MintPlot(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("mint_plot", err, started) }()
	if err = o.writer.MintPlot(ctx, s, landID); err != nil {
		return fmt.Errorf("mint plot for project %d: %w", landID, err)
	}
	return nil
}

// CreateProject registers a new land project on the ledger.
func (o *TransactionOrchestrator) CreateProject(ctx context.Context, s model.Session, p model.CreateProjectParams) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("create_project", err, started) }()
	if err = o.writer.CreateProject(ctx, s, p); err != nil {
		return fmt.Errorf("create project %q: %w", p.Name, err)
	}
	return nil
}

// DeactivateProject marks a project inactive without removing it.
func (o *TransactionOrchestrator) DeactivateProject(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("deactivate_project", err, started) }()
	if err = o.writer.DeactivateProject(ctx, s, landID); err != nil {
		return fmt.Errorf("deactivate project %d: %w", landID, err)
	}
	return nil
}

// HoldProject pauses sales for a project.
func (o *TransactionOrchestrator) HoldProject(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("hold_project", err, started) }()
	if err = o.writer.HoldProject(ctx, s, landID); err != nil {
		return fmt.Errorf("hold project %d: %w", landID, err)
	}
	return nil
}

// UnholdProject resumes sales for a held project.
func (o *TransactionOrchestrator) UnholdProject(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("unhold_project", err, started) }()
	if err = o.writer.UnholdProject(ctx, s, landID); err != nil {
		return fmt.Errorf("unhold project %d: %w", landID, err)
	}
	return nil
}

// DeleteProject removes a project from the ledger. The pre-flight
// minted-count read rejects the call before any transaction is built:
// a project with minted tokens must never be deleted.
func (o *TransactionOrchestrator) DeleteProject(ctx context.Context, s model.Session, landID uint64) (err error) {
	started := time.Now()
	defer func() { o.observeWrite("delete_project", err, started) }()

	minted, err := o.reader.MintedCount(ctx, landID)
	if err != nil {
		return fmt.Errorf("pre-flight minted count for project %d: %w", landID, err)
	}
	if minted > 0 {
		err = fmt.Errorf("project %d has %d minted plots: %w", landID, minted, ledger.ErrPreflightRejected)
		return err
	}
	if err = o.writer.DeleteProject(ctx, s, landID); err != nil {
		return fmt.Errorf("delete project %d: %w", landID, err)
	}
	return nil
}

// MintBatch mints count plots in chunks of at most mintChunkSize, each
// chunk a single transaction. A user rejection stops the run and the
// rejected chunk counts as failed; any other chunk failure is recorded
// and the run continues.
func (o *TransactionOrchestrator) MintBatch(ctx context.Context, s model.Session, landID, count uint64) (BatchMintResult, error) {
	started := time.Now()
	result := BatchMintResult{
		OperationID: uuid.New(),
		Requested:   count,
	}
	logger := o.logger.With(
		zap.String("operation_id", result.OperationID.String()),
		zap.Uint64("land_id", landID),
		zap.Uint64("requested", count),
	)
	logger.Info("starting batch mint")

	for remaining := count; remaining > 0; {
		chunk := remaining
		if chunk > mintChunkSize {
			chunk = mintChunkSize
		}
		if err := ctx.Err(); err != nil {
			result.Failed += remaining
			o.metrics.ObserveBatch("mint_batch", count, result.Minted, result.Failed, result.Stopped, started)
			return result, err
		}
		result.Chunks++

		err := o.writer.MintPlotsBatch(ctx, s, landID, chunk)
		switch {
		case err == nil:
			result.Minted += chunk
		case errors.Is(err, ledger.ErrUserRejected):
			result.Failed += remaining
			result.Stopped = true
			result.StopCause = err
			logger.Warn("batch mint stopped by user rejection", zap.Int("chunk", result.Chunks))
			o.metrics.ObserveBatch("mint_batch", count, result.Minted, result.Failed, result.Stopped, started)
			return result, nil
		default:
			result.Failed += chunk
			logger.Warn("batch mint chunk failed", zap.Int("chunk", result.Chunks), zap.Error(err))
		}
		remaining -= chunk
	}

	logger.Info("batch mint finished",
		zap.Uint64("minted", result.Minted),
		zap.Uint64("failed", result.Failed),
		zap.Int("chunks", result.Chunks),
	)
	o.metrics.ObserveBatch("mint_batch", count, result.Minted, result.Failed, result.Stopped, started)
	return result, nil
}

// MintSequential mints count plots one transaction at a time through
// the paced runner. It is the fallback for wallets that cannot sign
// the batch entry point.
func (o *TransactionOrchestrator) MintSequential(ctx context.Context, s model.Session, landID, count uint64) (BatchMintResult, error) {
	started := time.Now()
	result := BatchMintResult{
		OperationID: uuid.New(),
		Requested:   count,
	}
	logger := o.logger.With(
		zap.String("operation_id", result.OperationID.String()),
		zap.Uint64("land_id", landID),
		zap.Uint64("requested", count),
	)
	logger.Info("starting sequential mint")

	run, err := o.sequential.Run(ctx, int(count), func(ctx context.Context, i int) error {
		taskStarted := time.Now()
		mintErr := o.writer.MintPlot(ctx, s, landID)
		o.observeWrite("mint_plot", mintErr, taskStarted)
		if mintErr != nil {
			logger.Warn("sequential mint failed", zap.Int("plot_index", i), zap.Error(mintErr))
		}
		return mintErr
	}, func(err error) bool {
		return errors.Is(err, ledger.ErrUserRejected)
	})

	result.Minted = uint64(run.Succeeded)
	result.Failed = uint64(run.Failed)
	result.Stopped = run.Stopped
	result.StopCause = run.StopCause
	o.metrics.ObserveBatch("mint_sequential", count, result.Minted, result.Failed, result.Stopped, started)
	if err != nil {
		return result, err
	}

	logger.Info("sequential mint finished",
		zap.Uint64("minted", result.Minted),
		zap.Uint64("failed", result.Failed),
	)
	return result, nil
}
