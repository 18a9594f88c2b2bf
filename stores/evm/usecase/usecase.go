package usecase

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/service/chain"
	"github.com/x-xyz/nftlister/service/ens"
	"github.com/x-xyz/nftlister/service/opensea"
)

const (
	defaultPollInterval = 12 * time.Second
	// defaultMaxPages bounds a single wallet scan, 50 assets per page
	defaultMaxPages = 100
)

type EvmUseCaseCfg struct {
	OpenSea opensea.Client
	// Ens is optional, without it only hex wallets are accepted
	Ens        ens.ENS
	Chain      chain.Client
	MarketData domain.MarketDataUsecase
	Listing    domain.ListingUsecase
	Notifier   domain.Notifier
	// MarketplaceContract is optional, listing fails with a ConfigError without it
	MarketplaceContract string
	PollInterval        time.Duration
	// MaxPages defaults to defaultMaxPages when unset
	MaxPages int
}

type impl struct {
	opensea     opensea.Client
	ens         ens.ENS
	chain       chain.Client
	marketData  domain.MarketDataUsecase
	listing     domain.ListingUsecase
	notifier    domain.Notifier
	marketplace string
	info        domain.ChainInfo
	backend     *backend
	maxPages    int
	met         metrics.Service
}

func New(cfg *EvmUseCaseCfg) domain.ChainAdapter {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	info, _ := domain.GetChainInfo(domain.ChainEthereum)
	return &impl{
		opensea:     cfg.OpenSea,
		ens:         cfg.Ens,
		chain:       cfg.Chain,
		marketData:  cfg.MarketData,
		listing:     cfg.Listing,
		notifier:    cfg.Notifier,
		marketplace: cfg.MarketplaceContract,
		info:        info,
		backend:     newBackend(cfg.Chain, pollInterval),
		maxPages:    maxPages,
		met:         metrics.New("evm"),
	}
}

func (im *impl) ChainType() domain.ChainType {
	return domain.ChainEthereum
}

func (im *impl) Currency() string {
	return im.info.Currency
}

func (im *impl) resolveWallet(c ctx.Ctx, wallet string) (string, error) {
	if im.ens != nil {
		return im.ens.ResolveWallet(c, wallet)
	}
	if !common.IsHexAddress(wallet) {
		return "", domain.NewValidationError("Invalid ethereum wallet", domain.ErrInvalidAddress)
	}
	return common.HexToAddress(wallet).Hex(), nil
}

func (im *impl) GetNFTs(c ctx.Ctx, walletAddress string) ([]*domain.NFT, error) {
	owner, err := im.resolveWallet(c, walletAddress)
	if err != nil {
		return nil, err
	}
	c = ctx.WithFields(c, log.Fields{"chain": domain.ChainEthereum, "wallet": owner})
	defer im.met.BumpTime("getNFTs.time").End()

	nfts := []*domain.NFT{}
	cursor := ""
	for page := 0; ; page++ {
		if page == im.maxPages {
			c.WithFields(log.Fields{"pages": im.maxPages, "count": len(nfts)}).Warn("page limit reached, returning partial wallet")
			im.met.BumpSum("getNFTs.truncated", 1)
			break
		}
		resp, err := im.opensea.GetAssetsByOwner(c, owner, cursor)
		if err != nil {
			c.WithField("err", err).Error("opensea.GetAssetsByOwner failed")
			return nil, domain.NewFetchError("Failed to fetch assets from OpenSea", err)
		}
		for _, a := range resp.Assets {
			if nft, ok := toNFT(a); ok {
				nfts = append(nfts, nft)
			} else {
				im.met.BumpSum("getNFTs.skip", 1)
			}
		}
		if len(resp.Next) == 0 {
			break
		}
		cursor = resp.Next
	}
	return nfts, nil
}

func (im *impl) GetMarketData(c ctx.Ctx, nft *domain.NFT) (domain.MarketData, error) {
	if !nft.IsListable() {
		return domain.MarketData{}, domain.ErrMissingTokenIdentity
	}
	return im.marketData.GetMarketData(c, nft)
}

func (im *impl) ListNFT(c ctx.Ctx, nft *domain.NFT, price decimal.Decimal) (bool, error) {
	if len(im.marketplace) == 0 {
		return false, domain.ErrMarketplaceNotConfigured
	}
	if err := validateToken(nft); err != nil {
		return false, err
	}
	amount, err := domain.ToSmallestUnit(price, im.info.Decimals)
	if err != nil {
		return false, err
	}
	seller, err := im.sellerAddress()
	if err != nil {
		return false, err
	}

	req := domain.ListingRequest{
		AssetContract: nft.Attributes.ContractAddress,
		TokenId:       nft.Attributes.TokenId,
		Price:         amount,
		Seller:        seller,
	}
	if _, err := im.listing.List(c, im.backend, im.marketplace, req); err != nil {
		return false, err
	}
	if err := im.notifier.NotifyListed(c, nft, price, im.info.Currency); err != nil {
		c.WithField("err", err).Warn("notifier.NotifyListed failed")
	}
	return true, nil
}

func (im *impl) BurnNFT(c ctx.Ctx, nft *domain.NFT) error {
	if err := validateToken(nft); err != nil {
		return err
	}
	owner, err := im.sellerAddress()
	if err != nil {
		return err
	}
	if _, err := im.listing.Burn(c, im.backend, nft, owner); err != nil {
		return err
	}
	if err := im.marketData.Invalidate(c, nft); err != nil {
		c.WithField("err", err).Warn("marketData.Invalidate failed")
	}
	if err := im.notifier.NotifyBurned(c, nft); err != nil {
		c.WithField("err", err).Warn("notifier.NotifyBurned failed")
	}
	return nil
}

func (im *impl) sellerAddress() (string, error) {
	from := im.chain.From()
	if from == (common.Address{}) {
		return "", domain.ErrWalletNotConfigured
	}
	return from.Hex(), nil
}

func validateToken(nft *domain.NFT) error {
	if !nft.IsListable() {
		return domain.ErrMissingTokenIdentity
	}
	if !common.IsHexAddress(nft.Attributes.ContractAddress) {
		return domain.NewValidationError("Invalid contract address", domain.ErrInvalidAddress)
	}
	if _, err := chain.ParseTokenId(nft.Attributes.TokenId); err != nil {
		return domain.NewValidationError("Invalid token ID", err)
	}
	return nil
}

// toNFT keeps ERC721 assets that have an image
func toNFT(a opensea.Asset) (*domain.NFT, bool) {
	if a.AssetContract.SchemaName != opensea.SchemaERC721 {
		return nil, false
	}
	image := firstNonEmpty(a.ImageUrl, a.ImageOriginalUrl, a.ImageThumbnailUrl)
	if len(image) == 0 {
		return nil, false
	}
	contract := strings.ToLower(a.AssetContract.Address)
	nft := &domain.NFT{
		Id:          domain.NFTId(contract, a.TokenId),
		ChainType:   domain.ChainEthereum,
		Name:        firstNonEmpty(a.Name, a.AssetContract.Symbol, domain.UnnamedNFT),
		Collection:  firstNonEmpty(a.Collection.Name, a.AssetContract.Name, contract),
		Description: a.Description,
		ImageUrl:    image,
		Attributes: domain.Attributes{
			ContractAddress: contract,
			TokenId:         a.TokenId,
			Symbol:          a.AssetContract.Symbol,
		},
	}
	traits := make([]domain.Trait, 0, len(a.Traits))
	for _, t := range a.Traits {
		traits = append(traits, domain.Trait{TraitType: t.TraitType, Value: t.Value})
	}
	nft.Attributes.Extra.MergeTraits(traits)
	return nft, true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}
