package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/service/tzkt"
)

const (
	// BurnAddress is the canonical tezos burn account
	BurnAddress = "tz1burnburnburnburnburnburnburjAYjjX"

	defaultPageSize     = 100
	defaultPollInterval = 5 * time.Second
)

type TezosUseCaseCfg struct {
	Tzkt       tzkt.Client
	Wallet     domain.WalletSession
	MarketData domain.MarketDataUsecase
	Listing    domain.ListingUsecase
	Notifier   domain.Notifier
	// MarketplaceContract is optional, listing fails with a ConfigError without it
	MarketplaceContract string
	PageSize            int
	PollInterval        time.Duration
}

type impl struct {
	tzkt        tzkt.Client
	wallet      domain.WalletSession
	marketData  domain.MarketDataUsecase
	listing     domain.ListingUsecase
	notifier    domain.Notifier
	marketplace string
	pageSize    int
	info        domain.ChainInfo
	backend     *backend
	met         metrics.Service
}

func New(cfg *TezosUseCaseCfg) domain.ChainAdapter {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	info, _ := domain.GetChainInfo(domain.ChainTezos)
	return &impl{
		tzkt:        cfg.Tzkt,
		wallet:      cfg.Wallet,
		marketData:  cfg.MarketData,
		listing:     cfg.Listing,
		notifier:    cfg.Notifier,
		marketplace: cfg.MarketplaceContract,
		pageSize:    pageSize,
		info:        info,
		backend:     newBackend(cfg.Tzkt, cfg.Wallet, pollInterval),
		met:         metrics.New("tezos"),
	}
}

func (im *impl) ChainType() domain.ChainType {
	return domain.ChainTezos
}

func (im *impl) Currency() string {
	return im.info.Currency
}

func (im *impl) GetNFTs(c ctx.Ctx, walletAddress string) ([]*domain.NFT, error) {
	if len(walletAddress) == 0 {
		return nil, domain.NewValidationError("Wallet address is required", nil)
	}
	c = ctx.WithFields(c, log.Fields{"chain": domain.ChainTezos, "wallet": walletAddress})
	defer im.met.BumpTime("getNFTs.time").End()

	nfts := []*domain.NFT{}
	for offset := 0; ; offset += im.pageSize {
		balances, err := im.tzkt.GetTokenBalances(c, walletAddress, im.pageSize, offset)
		if err != nil {
			c.WithField("err", err).Error("tzkt.GetTokenBalances failed")
			return nil, domain.NewFetchError("Failed to fetch token balances from TzKT", err)
		}
		for _, b := range balances {
			if nft, ok := toNFT(c, b); ok {
				nfts = append(nfts, nft)
			} else {
				im.met.BumpSum("getNFTs.skip", 1)
			}
		}
		if len(balances) < im.pageSize {
			break
		}
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
	if !nft.IsListable() {
		return false, domain.ErrMissingTokenIdentity
	}
	amount, err := domain.ToSmallestUnit(price, im.info.Decimals)
	if err != nil {
		return false, err
	}
	seller, err := im.sellerAddress(c)
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
	if !nft.IsListable() {
		return domain.ErrMissingTokenIdentity
	}
	owner, err := im.sellerAddress(c)
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

func (im *impl) sellerAddress(c ctx.Ctx) (string, error) {
	address, err := im.wallet.Address(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.Address failed")
		if _, ok := domain.KindOf(err); ok {
			return "", err
		}
		return "", domain.NewConfigError("No wallet address available", err)
	}
	if len(address) == 0 {
		return "", domain.ErrWalletNotConfigured
	}
	return address, nil
}
