package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/nftlister/base/ctx"
)

// Forever is the expire value for keys without ttl
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL when the key has no associated expire
	ErrNoTTL = errors.New("key has no ttl")
)

// Service is the subset of redis commands the cache layer relies on
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	TTL(context ctx.Ctx, key string) (int, error)
	ScanMatch(context ctx.Ctx, cursor int64, match string, count int) (int64, []string, error)
}
