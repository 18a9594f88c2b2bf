package repository

import (
	"time"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/domain/keys"
	"github.com/x-xyz/nftlister/service/cache"
	"github.com/x-xyz/nftlister/service/cache/provider"
	"github.com/x-xyz/nftlister/service/cache/provider/compound"
	"github.com/x-xyz/nftlister/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/nftlister/service/cache/provider/redis"
	"github.com/x-xyz/nftlister/service/redis"
)

type impl struct {
	cache cache.Service
}

// RepoCfg sizes the storage of one chain's market data cache. StorageTtl
// only bounds eviction, freshness is decided by the reader.
type RepoCfg struct {
	Chain      domain.ChainType
	SizeMB     int
	StorageTtl time.Duration
	// Redis adds a shared layer behind the in-process one when set
	Redis redis.Service
}

// New creates a market data cache repo backed by freecache and optionally redis
func New(cfg *RepoCfg) domain.MarketDataCacheRepo {
	size := cfg.SizeMB
	if size <= 0 {
		size = 16
	}
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive(keys.MarketDataPrefix(cfg.Chain.String()), size),
	}
	if cfg.Redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(cfg.Redis))
	}

	return &impl{
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cfg.StorageTtl,
			Pfx:   keys.MarketDataPrefix(cfg.Chain.String()),
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

// NewWithCache is used when the caller owns the cache service
func NewWithCache(cache cache.Service) domain.MarketDataCacheRepo {
	return &impl{cache: cache}
}

func (im *impl) Get(c ctx.Ctx, contractAddress, tokenId string) (*domain.MarketDataEntry, error) {
	entry := &domain.MarketDataEntry{}
	if err := im.cache.Get(c, keys.MarketDataKey(contractAddress, tokenId), entry); err == cache.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":             err,
			"contractAddress": contractAddress,
			"tokenId":         tokenId,
		}).Error("cache.Get failed")
		return nil, err
	}
	return entry, nil
}

func (im *impl) Set(c ctx.Ctx, contractAddress, tokenId string, entry *domain.MarketDataEntry) error {
	if err := im.cache.Set(c, keys.MarketDataKey(contractAddress, tokenId), entry); err != nil {
		c.WithFields(log.Fields{
			"err":             err,
			"contractAddress": contractAddress,
			"tokenId":         tokenId,
		}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, contractAddress, tokenId string) error {
	if err := im.cache.Del(c, keys.MarketDataKey(contractAddress, tokenId)); err != nil {
		c.WithFields(log.Fields{
			"err":             err,
			"contractAddress": contractAddress,
			"tokenId":         tokenId,
		}).Error("cache.Del failed")
		return err
	}
	return nil
}

func (im *impl) Clear(c ctx.Ctx) error {
	if err := im.cache.Clear(c); err != nil {
		c.WithField("err", err).Error("cache.Clear failed")
		return err
	}
	return nil
}
