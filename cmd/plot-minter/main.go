package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/landgrid/landgrid-backend/internal/ledger/evm"
	"github.com/landgrid/landgrid-backend/internal/metrics"
	"github.com/landgrid/landgrid-backend/internal/model"
	"github.com/landgrid/landgrid-backend/internal/pinning"
	"github.com/landgrid/landgrid-backend/internal/service"
	"github.com/landgrid/landgrid-backend/internal/wallet"
	"github.com/landgrid/landgrid-backend/pkg/paced"
)

type config struct {
	RPCURL          string        `long:"rpc-url" env:"PLOT_MINTER_RPC_URL" description:"Ethereum node RPC URL" default:"http://127.0.0.1:8545"`
	ContractAddress string        `long:"contract-address" env:"PLOT_MINTER_CONTRACT_ADDRESS" description:"land tokenization contract address" required:"true"`
	PrivateKey      string        `long:"private-key" env:"PLOT_MINTER_PRIVATE_KEY" description:"hex signing key" required:"true"`
	ChainID         int64         `long:"chain-id" env:"PLOT_MINTER_CHAIN_ID" description:"chain id" default:"1337"`
	Operation       string        `long:"operation" env:"PLOT_MINTER_OPERATION" description:"one of: mint, mint-batch, mint-sequential, create, hold, unhold, deactivate, delete" required:"true"`
	LandID          uint64        `long:"land-id" env:"PLOT_MINTER_LAND_ID" description:"target project id"`
	Count           uint64        `long:"count" env:"PLOT_MINTER_COUNT" description:"plots to mint" default:"1"`
	MintInterval    time.Duration `long:"mint-interval" env:"PLOT_MINTER_MINT_INTERVAL" description:"delay between sequential mints" default:"1s"`

	PinataAPIKey    string `long:"pinata-api-key" env:"PLOT_MINTER_PINATA_API_KEY" description:"Pinata API key"`
	PinataAPISecret string `long:"pinata-api-secret" env:"PLOT_MINTER_PINATA_API_SECRET" description:"Pinata API secret"`
	PinataJWT       string `long:"pinata-jwt" env:"PLOT_MINTER_PINATA_JWT" description:"Pinata JWT"`
	ImageFile       string `long:"image-file" env:"PLOT_MINTER_IMAGE_FILE" description:"image to pin for a new project; overrides --image-ref"`

	Name        string `long:"name" env:"PLOT_MINTER_NAME" description:"new project name"`
	Location    string `long:"location" env:"PLOT_MINTER_LOCATION" description:"new project location"`
	TotalArea   uint64 `long:"total-area" env:"PLOT_MINTER_TOTAL_AREA" description:"new project total area, sq ft"`
	PlotSize    uint64 `long:"plot-size" env:"PLOT_MINTER_PLOT_SIZE" description:"new project plot size, sq ft"`
	BasePrice   string `long:"base-price" env:"PLOT_MINTER_BASE_PRICE" description:"new project base price, ether" default:"0"`
	ImageRef    string `long:"image-ref" env:"PLOT_MINTER_IMAGE_REF" description:"new project image reference"`
	ContactInfo string `long:"contact-info" env:"PLOT_MINTER_CONTACT_INFO" description:"new project contact info"`
	Description string `long:"description" env:"PLOT_MINTER_DESCRIPTION" description:"new project description"`
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
		logger.Fatal("plot minter failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial node: %w", err)
	}
	defer client.Close()

	authorizer, err := wallet.NewKeyedAuthorizer(cfg.PrivateKey, big.NewInt(cfg.ChainID))
	if err != nil {
		return fmt.Errorf("init signer: %w", err)
	}

	gateway, err := evm.NewGateway(client, common.HexToAddress(cfg.ContractAddress), authorizer)
	if err != nil {
		return fmt.Errorf("init gateway: %w", err)
	}
	observed := evm.NewObserved(gateway, metrics.NewGateway())

	platformOwner, err := observed.OwnerAddress(ctx)
	if err != nil {
		return fmt.Errorf("read platform owner: %w", err)
	}
	session := authorizer.Session(authorizer.Address() == platformOwner)
	if !session.IsOwner {
		logger.Warn("signing account is not the platform owner, owner-only calls will revert",
			zap.String("account", authorizer.Address().Hex()),
			zap.String("owner", platformOwner.Hex()),
		)
	}

	orchestrator := service.NewTransactionOrchestrator(
		observed,
		observed,
		paced.New(cfg.MintInterval, logger),
		metrics.NewOrchestrator(),
		logger,
	)

	switch cfg.Operation {
	case "mint":
		if err := orchestrator.MintPlot(ctx, session, cfg.LandID); err != nil {
			return err
		}
		logger.Info("minted one plot", zap.Uint64("land_id", cfg.LandID))
		return nil

	case "mint-batch":
		result, err := orchestrator.MintBatch(ctx, session, cfg.LandID, cfg.Count)
		reportMint(logger, result)
		return err

	case "mint-sequential":
		result, err := orchestrator.MintSequential(ctx, session, cfg.LandID, cfg.Count)
		reportMint(logger, result)
		return err

	case "create":
		basePrice, err := model.ParseEther(cfg.BasePrice)
		if err != nil {
			return fmt.Errorf("parse base price: %w", err)
		}
		imageRef := cfg.ImageRef
		if cfg.ImageFile != "" {
			imageRef, err = pinImage(ctx, cfg, logger)
			if err != nil {
				return err
			}
		}
		return orchestrator.CreateProject(ctx, session, model.CreateProjectParams{
			Name:        cfg.Name,
			Location:    cfg.Location,
			TotalArea:   cfg.TotalArea,
			PlotSize:    cfg.PlotSize,
			ImageRef:    imageRef,
			ContactInfo: cfg.ContactInfo,
			Description: cfg.Description,
			BasePrice:   basePrice,
		})

	case "hold":
		return orchestrator.HoldProject(ctx, session, cfg.LandID)

	case "unhold":
		return orchestrator.UnholdProject(ctx, session, cfg.LandID)

	case "deactivate":
		return orchestrator.DeactivateProject(ctx, session, cfg.LandID)

	case "delete":
		return orchestrator.DeleteProject(ctx, session, cfg.LandID)

	default:
		return fmt.Errorf("unknown operation %q", cfg.Operation)
	}
}

func pinImage(ctx context.Context, cfg config, logger *zap.Logger) (string, error) {
	blob, err := os.ReadFile(cfg.ImageFile)
	if err != nil {
		return "", fmt.Errorf("read image file: %w", err)
	}
	pinner := pinning.NewClient("", "", pinning.Credentials{
		APIKey:    cfg.PinataAPIKey,
		APISecret: cfg.PinataAPISecret,
		JWT:       cfg.PinataJWT,
	}, logger)
	hash, err := pinner.Store(ctx, filepath.Base(cfg.ImageFile), blob)
	if err != nil {
		return "", fmt.Errorf("pin image: %w", err)
	}
	return hash, nil
}

func reportMint(logger *zap.Logger, result service.BatchMintResult) {
	fields := []zap.Field{
		zap.String("operation_id", result.OperationID.String()),
		zap.Uint64("requested", result.Requested),
		zap.Uint64("minted", result.Minted),
		zap.Uint64("failed", result.Failed),
	}
	if result.Stopped {
		fields = append(fields, zap.NamedError("stop_cause", result.StopCause))
		logger.Warn("mint run stopped early", fields...)
		return
	}
	logger.Info("mint run finished", fields...)
}
