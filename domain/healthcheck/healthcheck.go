package healthcheck

import (
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain"
)

const (
	CacheLocal = "local"
	CacheRedis = "redis"
)

// Report is rendered by GET /health
type Report struct {
	Healthy bool               `json:"healthy"`
	Cache   string             `json:"cache"`
	Chains  []domain.ChainType `json:"chains"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Report, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingCache returns the shared cache backend in use
	PingCache(context ctx.Ctx) (string, error)
}
