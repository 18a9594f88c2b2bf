package usecase

import (
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain"
	hcdomain "github.com/x-xyz/nftlister/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
	nft  domain.NFTUsecase
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo, nft domain.NFTUsecase) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
		nft:  nft,
	}
}

// Check is unhealthy when the shared cache is unreachable or no chain is wired
func (im *impl) Check(context ctx.Ctx) (*hcdomain.Report, error) {
	report := &hcdomain.Report{Chains: im.nft.SupportedChains()}

	backend, err := im.repo.PingCache(context)
	report.Cache = backend
	if err != nil {
		return report, err
	}
	if len(report.Chains) == 0 {
		return report, domain.NewConfigError("no chain adapter configured", nil)
	}

	report.Healthy = true
	return report, nil
}
