package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/nftlister/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// raw cache implementation
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
	// Clear removes every key starting with prefix
	Clear(c ctx.Ctx, prefix string) error
}
