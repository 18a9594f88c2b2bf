package repository

import (
	"time"

	"github.com/x-xyz/nftlister/base/ctx"
	hcdomain "github.com/x-xyz/nftlister/domain/healthcheck"
	"github.com/x-xyz/nftlister/domain/keys"
	"github.com/x-xyz/nftlister/service/redis"
)

type impl struct {
	redisCache redis.Service
}

// New creates the health check repo, redisCache may be nil when only the local cache is used
func New(redisCache redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		redisCache: redisCache,
	}
}

func (im *impl) PingCache(context ctx.Ctx) (string, error) {
	if im.redisCache == nil {
		return hcdomain.CacheLocal, nil
	}

	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return hcdomain.CacheRedis, err
	}
	return hcdomain.CacheRedis, nil
}
