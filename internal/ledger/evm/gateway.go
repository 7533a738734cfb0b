// Package evm implements the contract gateway over an EVM node. It is the
// single seam through which every ledger read and write passes.
package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/landgrid/landgrid-backend/internal/ledger"
	"github.com/landgrid/landgrid-backend/internal/model"
	"github.com/landgrid/landgrid-backend/pkg/safe"
)

// Gateway exposes typed reads and writes against the LandTokenization
// contract. Reads need no signing identity; writes go through the
// configured Authorizer and block until the transaction is confirmed.
//
// A write that is retried after a timeout without checking chain state
// first can double-submit; avoiding that is the caller's responsibility.
type Gateway struct {
	client   *ethclient.Client
	contract *bind.BoundContract
	auth     ledger.Authorizer
	address  common.Address
}

// NewGateway binds the contract at the given address. auth may be nil for
// a read-only gateway; writes then fail without touching the network.
func NewGateway(client *ethclient.Client, contractAddr common.Address, auth ledger.Authorizer) (*Gateway, error) {
	cABI, err := contractABI()
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}
	return &Gateway{
		client:   client,
		contract: bind.NewBoundContract(contractAddr, cABI, client, client, client),
		auth:     auth,
		address:  contractAddr,
	}, nil
}

// landInfo mirrors the contract's LandInfo tuple layout.
type landInfo struct {
	LandId        *big.Int
	LandName      string
	TotalArea     *big.Int
	PlotSize      *big.Int
	NumPlots      *big.Int
	ImageHash     string
	Description   string
	ContactNumber string
	Location      string
	BasePrice     *big.Int
	Active        bool
}

// plotInfo mirrors the contract's PlotInfo tuple layout.
type plotInfo struct {
	LandId      *big.Int
	PlotNumber  *big.Int
	Price       *big.Int
	IsFirstSale bool
}

func (g *Gateway) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, classifyReadError(method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty result", method)
	}
	return out, nil
}

func (g *Gateway) callUint64(ctx context.Context, method string, args ...interface{}) (uint64, error) {
	out, err := g.call(ctx, method, args...)
	if err != nil {
		return 0, err
	}
	v, err := safe.BigUint64(*abi.ConvertType(out[0], new(*big.Int)).(**big.Int))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	return v, nil
}

func (g *Gateway) callBool(ctx context.Context, method string, args ...interface{}) (bool, error) {
	out, err := g.call(ctx, method, args...)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// OwnerAddress returns the platform owner account. Primary inventory is
// held by this address.
func (g *Gateway) OwnerAddress(ctx context.Context) (common.Address, error) {
	out, err := g.call(ctx, "owner")
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// ProjectCount returns the highest assigned project id. Ids are assigned
// sequentially from 1, so 1..count is the full id range.
func (g *Gateway) ProjectCount(ctx context.Context) (uint64, error) {
	return g.callUint64(ctx, "landCounter")
}

// ProjectInfo reads one project record. PlotsMinted is a separate live
// read (MintedCount) and is left zero here.
func (g *Gateway) ProjectInfo(ctx context.Context, landID uint64) (model.LandProject, error) {
	out, err := g.call(ctx, "getLandInfo", new(big.Int).SetUint64(landID))
	if err != nil {
		return model.LandProject{}, err
	}
	rec := *abi.ConvertType(out[0], new(landInfo)).(*landInfo)

	id, err := safe.BigUint64(rec.LandId)
	if err != nil {
		return model.LandProject{}, fmt.Errorf("getLandInfo: land id: %w", err)
	}
	totalArea, err := safe.BigUint64(rec.TotalArea)
	if err != nil {
		return model.LandProject{}, fmt.Errorf("getLandInfo: total area: %w", err)
	}
	plotSize, err := safe.BigUint64(rec.PlotSize)
	if err != nil {
		return model.LandProject{}, fmt.Errorf("getLandInfo: plot size: %w", err)
	}
	numPlots, err := safe.BigUint64(rec.NumPlots)
	if err != nil {
		return model.LandProject{}, fmt.Errorf("getLandInfo: plot capacity: %w", err)
	}

	return model.LandProject{
		LandID:      id,
		Name:        rec.LandName,
		Location:    rec.Location,
		TotalArea:   totalArea,
		PlotSize:    plotSize,
		NumPlots:    numPlots,
		BasePrice:   rec.BasePrice,
		ImageRef:    rec.ImageHash,
		ContactInfo: rec.ContactNumber,
		Description: rec.Description,
		Active:      rec.Active,
	}, nil
}

// MintedCount returns the live minted-plot counter for a project.
func (g *Gateway) MintedCount(ctx context.Context, landID uint64) (uint64, error) {
	return g.callUint64(ctx, "getPlotsMinted", new(big.Int).SetUint64(landID))
}

// TotalMintedTokens returns the ledger-wide minted token count, the upper
// bound for token id scans.
func (g *Gateway) TotalMintedTokens(ctx context.Context) (uint64, error) {
	return g.callUint64(ctx, "totalSupply")
}

// TokenInfo reads the immutable per-token record.
func (g *Gateway) TokenInfo(ctx context.Context, tokenID uint64) (model.TokenInfo, error) {
	out, err := g.call(ctx, "getPlotInfo", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return model.TokenInfo{}, err
	}
	rec := *abi.ConvertType(out[0], new(plotInfo)).(*plotInfo)

	landID, err := safe.BigUint64(rec.LandId)
	if err != nil {
		return model.TokenInfo{}, fmt.Errorf("getPlotInfo: land id: %w", err)
	}
	plotNumber, err := safe.BigUint64(rec.PlotNumber)
	if err != nil {
		return model.TokenInfo{}, fmt.Errorf("getPlotInfo: plot number: %w", err)
	}

	return model.TokenInfo{
		LandID:     landID,
		PlotNumber: plotNumber,
		MintPrice:  rec.Price,
	}, nil
}

// TokenOwner returns the current owner of a token.
func (g *Gateway) TokenOwner(ctx context.Context, tokenID uint64) (common.Address, error) {
	out, err := g.call(ctx, "ownerOf", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// ResalePrice returns the listing price, zero when the token is not listed.
func (g *Gateway) ResalePrice(ctx context.Context, tokenID uint64) (*big.Int, error) {
	out, err := g.call(ctx, "getResalePrice", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// IsPrimarySaleEligible reports whether the token is still flagged for
// first-time sale from the platform inventory.
func (g *Gateway) IsPrimarySaleEligible(ctx context.Context, tokenID uint64) (bool, error) {
	return g.callBool(ctx, "isAvailableForPrimarySale", new(big.Int).SetUint64(tokenID))
}

// IsProjectOnHold reports the project-level trading-suspension flag.
func (g *Gateway) IsProjectOnHold(ctx context.Context, landID uint64) (bool, error) {
	return g.callBool(ctx, "isProjectOnHold", new(big.Int).SetUint64(landID))
}

func (g *Gateway) write(ctx context.Context, s model.Session, value *big.Int, method string, args ...interface{}) error {
	if g.auth == nil {
		return fmt.Errorf("%s: gateway has no signing authority: %w", method, ledger.ErrUserRejected)
	}
	if !s.Connected() {
		return fmt.Errorf("%s: session has no account: %w", method, ledger.ErrUserRejected)
	}
	opts, err := g.auth.Authorize(ctx, s)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	opts.Context = ctx
	if value != nil {
		opts.Value = value
	}

	tx, err := g.contract.Transact(opts, method, args...)
	if err != nil {
		return classifyWriteError(method, err)
	}

	receipt, err := bind.WaitMined(ctx, g.client, tx)
	if err != nil {
		return fmt.Errorf("%s: wait for confirmation of %s: %w", method, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%s: tx %s: %w", method, tx.Hash().Hex(), ledger.ErrContractReverted)
	}
	return nil
}

// BuyPlot executes a primary-sale purchase, attaching the asked price.
func (g *Gateway) BuyPlot(ctx context.Context, s model.Session, tokenID uint64, value *big.Int) error {
	return g.write(ctx, s, value, "buyPlot", new(big.Int).SetUint64(tokenID))
}

// BuyResale executes a secondary-market purchase, attaching the listing price.
func (g *Gateway) BuyResale(ctx context.Context, s model.Session, tokenID uint64, value *big.Int) error {
	return g.write(ctx, s, value, "buyResale", new(big.Int).SetUint64(tokenID))
}

// ListForSale lists an owned token at the given price.
func (g *Gateway) ListForSale(ctx context.Context, s model.Session, tokenID uint64, price *big.Int) error {
	return g.write(ctx, s, nil, "listForSale", new(big.Int).SetUint64(tokenID), price)
}

// Unlist removes a resale listing.
func (g *Gateway) Unlist(ctx context.Context, s model.Session, tokenID uint64) error {
	return g.write(ctx, s, nil, "unlistFromSale", new(big.Int).SetUint64(tokenID))
}

// MintPlot mints a single plot within a project's capacity.
func (g *Gateway) MintPlot(ctx context.Context, s model.Session, landID uint64) error {
	return g.write(ctx, s, nil, "mintPlot", new(big.Int).SetUint64(landID))
}

// MintPlotsBatch mints count plots in one atomic transaction; the contract
// mints all of them or none.
func (g *Gateway) MintPlotsBatch(ctx context.Context, s model.Session, landID, count uint64) error {
	return g.write(ctx, s, nil, "mintPlotsBatch", new(big.Int).SetUint64(landID), new(big.Int).SetUint64(count))
}

// CreateProject opens a new tokenization campaign.
func (g *Gateway) CreateProject(ctx context.Context, s model.Session, p model.CreateProjectParams) error {
	price := p.BasePrice
	if price == nil {
		price = new(big.Int)
	}
	return g.write(ctx, s, nil, "createLandProject",
		p.Name,
		new(big.Int).SetUint64(p.TotalArea),
		new(big.Int).SetUint64(p.PlotSize),
		p.ImageRef,
		p.Description,
		p.ContactInfo,
		p.Location,
		price,
	)
}

// DeactivateProject flips the project's active flag off.
func (g *Gateway) DeactivateProject(ctx context.Context, s model.Session, landID uint64) error {
	return g.write(ctx, s, nil, "deactivateLandProject", new(big.Int).SetUint64(landID))
}

// HoldProject suspends trading for a project without deactivating it.
func (g *Gateway) HoldProject(ctx context.Context, s model.Session, landID uint64) error {
	return g.write(ctx, s, nil, "holdProject", new(big.Int).SetUint64(landID))
}

// UnholdProject resumes trading for a held project.
func (g *Gateway) UnholdProject(ctx context.Context, s model.Session, landID uint64) error {
	return g.write(ctx, s, nil, "unholdProject", new(big.Int).SetUint64(landID))
}

// DeleteProject removes a project. The contract rejects the call when any
// plot has been minted; callers are expected to pre-flight that case.
func (g *Gateway) DeleteProject(ctx context.Context, s model.Session, landID uint64) error {
	return g.write(ctx, s, nil, "deleteProject", new(big.Int).SetUint64(landID))
}
