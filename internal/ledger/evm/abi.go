package evm

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI of the LandTokenization contract, limited to the methods this
// backend consumes.
const landTokenizationABI = `[
  {"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"landCounter","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getLandInfo","stateMutability":"view","inputs":[{"name":"landId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","internalType":"struct LandTokenization.LandInfo","components":[
    {"name":"landId","type":"uint256"},
    {"name":"landName","type":"string"},
    {"name":"totalArea","type":"uint256"},
    {"name":"plotSize","type":"uint256"},
    {"name":"numPlots","type":"uint256"},
    {"name":"imageHash","type":"string"},
    {"name":"description","type":"string"},
    {"name":"contactNumber","type":"string"},
    {"name":"location","type":"string"},
    {"name":"basePrice","type":"uint256"},
    {"name":"active","type":"bool"}
  ]}]},
  {"type":"function","name":"getPlotsMinted","stateMutability":"view","inputs":[{"name":"landId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getPlotInfo","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","internalType":"struct LandTokenization.PlotInfo","components":[
    {"name":"landId","type":"uint256"},
    {"name":"plotNumber","type":"uint256"},
    {"name":"price","type":"uint256"},
    {"name":"isFirstSale","type":"bool"}
  ]}]},
  {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"getResalePrice","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"isAvailableForPrimarySale","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"isProjectOnHold","stateMutability":"view","inputs":[{"name":"landId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"buyPlot","stateMutability":"payable","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"buyResale","stateMutability":"payable","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"listForSale","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"unlistFromSale","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"mintPlot","stateMutability":"nonpayable","inputs":[{"name":"landId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"mintPlotsBatch","stateMutability":"nonpayable","inputs":[{"name":"landId","type":"uint256"},{"name":"count","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"createLandProject","stateMutability":"nonpayable","inputs":[
    {"name":"landName","type":"string"},
    {"name":"totalArea","type":"uint256"},
    {"name":"plotSize","type":"uint256"},
    {"name":"imageHash","type":"string"},
    {"name":"description","type":"string"},
    {"name":"contactNumber","type":"string"},
    {"name":"location","type":"string"},
    {"name":"basePrice","type":"uint256"}
  ],"outputs":[]},
  {"type":"function","name":"deactivateLandProject","stateMutability":"nonpayable","inputs":[{"name":"landId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"holdProject","stateMutability":"nonpayable","inputs":[{"name":"landId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"unholdProject","stateMutability":"nonpayable","inputs":[{"name":"landId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"deleteProject","stateMutability":"nonpayable","inputs":[{"name":"landId","type":"uint256"}],"outputs":[]}
]`

var (
	abiOnce   sync.Once
	parsedABI abi.ABI
	abiErr    error
)

func contractABI() (abi.ABI, error) {
	abiOnce.Do(func() {
		parsedABI, abiErr = abi.JSON(strings.NewReader(landTokenizationABI))
	})
	return parsedABI, abiErr
}
