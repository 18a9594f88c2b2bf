package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestSelectors(t *testing.T) {
	req := require.New(t)
	req.Equal("0x42966c68", hexutil.Encode(ERC721TokenABI.Methods["burn"].ID))
	req.Equal("0x42842e0e", hexutil.Encode(ERC721TokenABI.Methods["safeTransferFrom"].ID))
	req.Equal("0x081812fc", hexutil.Encode(ERC721TokenABI.Methods["getApproved"].ID))
	req.Equal("0xe985e9c5", hexutil.Encode(ERC721TokenABI.Methods["isApprovedForAll"].ID))
	req.Contains(MarketplaceABI.Methods, "listToken")
}
