// Package model defines the read-model entities resolved from the land
// tokenization contract.
package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PlotStatus classifies a minted plot token at observation time. It is
// derived from three independently read facts (primary-sale eligibility,
// current owner, resale price) and is never stored.
type PlotStatus string

const (
	PlotAvailable PlotStatus = "available"
	PlotListed    PlotStatus = "listed"
	PlotSold      PlotStatus = "sold"
)

// LandProject is one tokenization campaign for a tract of land.
type LandProject struct {
	LandID      uint64
	Name        string
	Location    string
	TotalArea   uint64
	PlotSize    uint64
	NumPlots    uint64
	PlotsMinted uint64
	BasePrice   *big.Int // wei
	ImageRef    string   // opaque content reference, may be empty
	ContactInfo string
	Description string
	Active      bool
}

// TokenInfo holds the immutable per-token record kept by the contract.
type TokenInfo struct {
	LandID     uint64
	PlotNumber uint64
	MintPrice  *big.Int // wei
}

// PlotToken is one minted plot enriched with its derived status.
type PlotToken struct {
	TokenID     uint64
	LandID      uint64
	PlotNumber  uint64
	MintPrice   *big.Int // wei
	Owner       common.Address
	ResalePrice *big.Int // wei, zero when not listed
	Status      PlotStatus
}

// OwnedPlotProjection is a portfolio row: a token owned by a user joined
// with its parent project's name and listing state.
type OwnedPlotProjection struct {
	TokenID      uint64
	LandID       uint64
	PlotNumber   uint64
	ProjectName  string
	MintPrice    *big.Int // wei
	Listed       bool
	ListingPrice *big.Int // wei, nil unless Listed
}

// MarketStats is the platform-wide dashboard view.
type MarketStats struct {
	TotalProjects uint64
	TotalPlots    uint64
	PlotsSold     uint64
}

// CreateProjectParams carries the owner intent to open a new campaign.
type CreateProjectParams struct {
	Name        string
	Location    string
	TotalArea   uint64
	PlotSize    uint64
	ImageRef    string
	ContactInfo string
	Description string
	BasePrice   *big.Int // wei
}
