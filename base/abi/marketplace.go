package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// MarketplaceABI is the fixed price listing entry of the marketplace contract
var MarketplaceABI abi.ABI

var marketplaceABI = `[
{"type":"function","name":"listToken","stateMutability":"nonpayable","inputs":[{"type":"address","name":"asset"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"},{"type":"address","name":"seller"}],"outputs":[]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}
