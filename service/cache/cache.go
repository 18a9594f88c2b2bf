package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// OneTimeGetter loads a value on a miss. Concurrent misses on the same key
// share one call.
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service stores typed values under a prefix on top of a raw provider
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
	// Clear drops every key under the service prefix
	Clear(c ctx.Ctx) error
}

// ServiceConfig falls back to json when Serialize/Deserialize are nil
type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
