package ens

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/ptr"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/domain/keys"
	"github.com/x-xyz/nftlister/service/cache"
	"github.com/x-xyz/nftlister/service/cache/provider"
	"github.com/x-xyz/nftlister/service/cache/provider/compound"
	"github.com/x-xyz/nftlister/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/nftlister/service/cache/provider/redis"
	"github.com/x-xyz/nftlister/service/redis"
)

type resolveFunc func(name string) (common.Address, error)

type impl struct {
	resolve resolveFunc
	cache   cache.Service
}

// New resolves names through the ENS registry reachable from backend.
// redis is optional and extends the in-process cache.
func New(backend bind.ContractBackend, redis redis.Service) ENS {
	return newWithResolver(func(name string) (common.Address, error) {
		return goens.Resolve(backend, name)
	}, redis)
}

func newWithResolver(resolve resolveFunc, redis redis.Service) *impl {
	providers := []provider.Provider{primitive.NewPrimitive("ens", 8)}
	if redis != nil {
		providers = append(providers, redisCache.NewRedis(redis))
	}
	return &impl{
		resolve: resolve,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   24 * time.Hour,
			Pfx:   "ensPfx",
			Cache: compound.NewCompound(providers),
		}),
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (string, error) {
	res := ""
	key := keys.RedisKey("resolve", strings.ToLower(name))
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(name)
		if fmt.Sprint(err) == "unregistered name" {
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		return ptr.String(addr.Hex()), nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}

func (im *impl) ResolveWallet(ctx ctx.Ctx, wallet string) (string, error) {
	wallet = strings.TrimSpace(wallet)
	if common.IsHexAddress(wallet) {
		return common.HexToAddress(wallet).Hex(), nil
	}
	if !strings.Contains(wallet, ".") {
		return "", domain.NewValidationError("Invalid ethereum wallet", domain.ErrInvalidAddress)
	}

	addr, err := im.Resolve(ctx, wallet)
	if err != nil {
		return "", domain.NewFetchError("Failed to resolve ENS name", err)
	}
	if len(addr) == 0 {
		return "", domain.NewValidationError("Unregistered ENS name", domain.ErrInvalidAddress)
	}
	return addr, nil
}
