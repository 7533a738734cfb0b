package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/landgrid/landgrid-backend/internal/ledger/evm"
	"github.com/landgrid/landgrid-backend/internal/metrics"
	"github.com/landgrid/landgrid-backend/internal/pinning"
	"github.com/landgrid/landgrid-backend/internal/service"
	"github.com/landgrid/landgrid-backend/internal/transport"
)

type config struct {
	Addr            string `long:"addr" env:"MARKET_API_ADDR" description:"listen address" default:":8000"`
	RPCURL          string `long:"rpc-url" env:"MARKET_API_RPC_URL" description:"Ethereum node RPC URL" default:"http://127.0.0.1:8545"`
	ContractAddress string `long:"contract-address" env:"MARKET_API_CONTRACT_ADDRESS" description:"land tokenization contract address" required:"true"`
	PinataGateway   string `long:"pinata-gateway" env:"MARKET_API_PINATA_GATEWAY" description:"IPFS gateway base URL"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if !common.IsHexAddress(cfg.ContractAddress) {
		logger.Fatal("invalid contract address", zap.String("address", cfg.ContractAddress))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("market api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial node: %w", err)
	}
	defer client.Close()

	gateway, err := evm.NewGateway(client, common.HexToAddress(cfg.ContractAddress), nil)
	if err != nil {
		return fmt.Errorf("init gateway: %w", err)
	}
	observed := evm.NewObserved(gateway, metrics.NewGateway())

	resolverMetrics := metrics.NewResolver()
	aggregator := service.NewProjectAggregator(observed, resolverMetrics, logger)
	plots := service.NewPlotStatusResolver(observed, resolverMetrics, logger)
	portfolio := service.NewPortfolioResolver(observed, resolverMetrics, logger)
	stats := service.NewStatsResolver(observed, resolverMetrics, logger)
	refs := pinning.NewClient("", cfg.PinataGateway, pinning.Credentials{}, logger)

	mux := http.NewServeMux()
	transport.NewMarketHandler(aggregator, plots, portfolio, stats, observed, refs, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
