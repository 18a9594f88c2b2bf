package usecase

import (
	"time"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/domain"
)

// DefaultTtl is how long an informative answer is served from cache
const DefaultTtl = 5 * time.Minute

type impl struct {
	chain     domain.ChainType
	currency  string
	providers []domain.MarketDataProvider
	repo      domain.MarketDataCacheRepo
	ttl       time.Duration
	now       func() time.Time
	met       metrics.Service
}

// MarketDataUseCaseCfg wires one chain's aggregator. Providers are queried
// in the given order, the first informative answer wins.
type MarketDataUseCaseCfg struct {
	Chain     domain.ChainType
	Currency  string
	Providers []domain.MarketDataProvider
	Repo      domain.MarketDataCacheRepo
	Ttl       time.Duration
	Now       func() time.Time
}

func New(cfg *MarketDataUseCaseCfg) domain.MarketDataUsecase {
	ttl := cfg.Ttl
	if ttl <= 0 {
		ttl = DefaultTtl
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	providers := make([]domain.MarketDataProvider, len(cfg.Providers))
	copy(providers, cfg.Providers)

	return &impl{
		chain:     cfg.Chain,
		currency:  cfg.Currency,
		providers: providers,
		repo:      cfg.Repo,
		ttl:       ttl,
		now:       now,
		met:       metrics.New("marketdata"),
	}
}

func (im *impl) GetMarketData(c ctx.Ctx, nft *domain.NFT) (domain.MarketData, error) {
	if !nft.IsListable() {
		return domain.MarketData{}, domain.ErrMissingTokenIdentity
	}

	contract, tokenId := nft.Attributes.ContractAddress, nft.Attributes.TokenId
	c = ctx.WithFields(c, log.Fields{
		"chain":           im.chain,
		"contractAddress": contract,
		"tokenId":         tokenId,
	})
	defer im.met.BumpTime("get.time", "chain", im.chain.String()).End()

	if entry, err := im.repo.Get(c, contract, tokenId); err == nil {
		if !entry.Expired(im.now(), im.ttl) {
			im.met.BumpSum("cache.hit", 1, "chain", im.chain.String())
			return entry.Data, nil
		}
		im.met.BumpSum("cache.expired", 1, "chain", im.chain.String())
	} else if err != domain.ErrNotFound {
		// a broken cache degrades to a miss
		c.WithField("err", err).Warn("repo.Get failed")
	}
	im.met.BumpSum("cache.miss", 1, "chain", im.chain.String())

	for _, p := range im.providers {
		if err := c.Err(); err != nil {
			return domain.MarketData{}, domain.NewFetchError("market data lookup canceled", err)
		}

		data, err := p.Fetch(c, nft)
		if err != nil {
			im.met.BumpSum("provider.err", 1, "chain", im.chain.String(), "provider", p.Name())
			c.WithFields(log.Fields{"err": err, "provider": p.Name()}).Warn("provider.Fetch failed")
			continue
		}
		if !data.IsInformative() {
			im.met.BumpSum("provider.miss", 1, "chain", im.chain.String(), "provider", p.Name())
			continue
		}

		res := *data
		res.Source = p.Name()
		if len(res.Currency) == 0 {
			res.Currency = im.currency
		}
		im.met.BumpSum("provider.hit", 1, "chain", im.chain.String(), "provider", p.Name())

		if err := im.repo.Set(c, contract, tokenId, &domain.MarketDataEntry{
			Data:       res,
			CapturedAt: im.now(),
		}); err != nil {
			c.WithField("err", err).Warn("repo.Set failed")
		}
		return res, nil
	}

	return domain.DefaultMarketData(im.currency), nil
}

func (im *impl) Invalidate(c ctx.Ctx, nft *domain.NFT) error {
	if !nft.IsListable() {
		return domain.ErrMissingTokenIdentity
	}
	if err := im.repo.Del(c, nft.Attributes.ContractAddress, nft.Attributes.TokenId); err != nil {
		c.WithFields(log.Fields{
			"err":             err,
			"contractAddress": nft.Attributes.ContractAddress,
			"tokenId":         nft.Attributes.TokenId,
		}).Error("repo.Del failed")
		return err
	}
	return nil
}

func (im *impl) Clear(c ctx.Ctx) error {
	if err := im.repo.Clear(c); err != nil {
		c.WithField("err", err).Error("repo.Clear failed")
		return err
	}
	return nil
}
