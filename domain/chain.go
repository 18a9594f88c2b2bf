package domain

import (
	"github.com/shopspring/decimal"
	"github.com/x-xyz/nftlister/base/ctx"
)

// ChainAdapter normalizes one chain's indexer and contracts
type ChainAdapter interface {
	ChainType() ChainType
	Currency() string
	GetNFTs(c ctx.Ctx, walletAddress string) ([]*NFT, error)
	GetMarketData(c ctx.Ctx, nft *NFT) (MarketData, error)
	// ListNFT takes price in display units
	ListNFT(c ctx.Ctx, nft *NFT, price decimal.Decimal) (bool, error)
	BurnNFT(c ctx.Ctx, nft *NFT) error
}

// NFTUsecase routes every call to the adapter of the NFT's chain
type NFTUsecase interface {
	SupportedChains() []ChainType
	GetNFTs(c ctx.Ctx, chain ChainType, walletAddress string) ([]*NFT, error)
	GetMarketData(c ctx.Ctx, nft *NFT) (MarketData, error)
	GetMarketDataBatch(c ctx.Ctx, nfts []*NFT) ([]MarketData, error)
	ListNFT(c ctx.Ctx, nft *NFT, price decimal.Decimal) (bool, error)
	BurnNFT(c ctx.Ctx, nft *NFT) error
}

// ContractCall is one entrypoint invocation handed to a wallet session
type ContractCall struct {
	Chain      ChainType   `json:"chain"`
	Contract   string      `json:"contract"`
	Entrypoint string      `json:"entrypoint"`
	Params     interface{} `json:"params"`
	// Amount of native funds attached, in smallest unit
	Amount string `json:"amount,omitempty"`
}

// WalletSession supplies the signer address and signs + injects operations
type WalletSession interface {
	Address(c ctx.Ctx) (string, error)
	Submit(c ctx.Ctx, call ContractCall) (OperationHash, error)
}

// Notifier announces completed writes, failures are never fatal
type Notifier interface {
	NotifyListed(c ctx.Ctx, nft *NFT, price decimal.Decimal, currency string) error
	NotifyBurned(c ctx.Ctx, nft *NFT) error
}

// ChainInfo describes the native currency of a chain
type ChainInfo struct {
	DisplayName string
	Currency    string
	// Decimals between display unit and smallest unit
	Decimals int32
}

var chainInfos = map[ChainType]ChainInfo{
	ChainTezos:    {DisplayName: "Tezos", Currency: "XTZ", Decimals: 6},
	ChainStargaze: {DisplayName: "Stargaze", Currency: "STARS", Decimals: 6},
	ChainEthereum: {DisplayName: "Ethereum", Currency: "ETH", Decimals: 18},
}

func GetChainInfo(chain ChainType) (ChainInfo, error) {
	if info, ok := chainInfos[chain]; ok {
		return info, nil
	}
	return ChainInfo{}, NewUnsupportedChainError(chain)
}
