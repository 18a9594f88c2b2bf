package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/domain"
)

const defaultBatchWorkers = 8

type NFTUseCaseCfg struct {
	Adapters []domain.ChainAdapter
	// BatchWorkers bounds concurrent market data lookups of one batch
	BatchWorkers int
}

type impl struct {
	chains       []domain.ChainType
	adapters     map[domain.ChainType]domain.ChainAdapter
	batchWorkers int
}

// New registers adapters by chain tag, a later adapter replaces an earlier
// one of the same chain
func New(cfg *NFTUseCaseCfg) domain.NFTUsecase {
	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	im := &impl{
		adapters:     make(map[domain.ChainType]domain.ChainAdapter),
		batchWorkers: workers,
	}
	for _, a := range cfg.Adapters {
		chain := a.ChainType()
		if _, ok := im.adapters[chain]; !ok {
			im.chains = append(im.chains, chain)
		}
		im.adapters[chain] = a
	}
	return im
}

func (im *impl) adapter(chain domain.ChainType) (domain.ChainAdapter, error) {
	if a, ok := im.adapters[chain]; ok {
		return a, nil
	}
	return nil, domain.NewUnsupportedChainError(chain)
}

func (im *impl) SupportedChains() []domain.ChainType {
	chains := make([]domain.ChainType, len(im.chains))
	copy(chains, im.chains)
	return chains
}

func (im *impl) GetNFTs(c ctx.Ctx, chain domain.ChainType, walletAddress string) ([]*domain.NFT, error) {
	a, err := im.adapter(chain)
	if err != nil {
		return nil, err
	}
	nfts, err := a.GetNFTs(c, walletAddress)
	if err != nil {
		c.WithFields(log.Fields{
			"chain":  chain,
			"wallet": walletAddress,
			"err":    err,
		}).Error("adapter.GetNFTs failed")
		return nil, err
	}
	return nfts, nil
}

func (im *impl) GetMarketData(c ctx.Ctx, nft *domain.NFT) (domain.MarketData, error) {
	if nft == nil {
		return domain.MarketData{}, domain.ErrMissingTokenIdentity
	}
	a, err := im.adapter(nft.ChainType)
	if err != nil {
		return domain.MarketData{}, err
	}
	return a.GetMarketData(c, nft)
}

type batchResult struct {
	idx  int
	data domain.MarketData
}

// GetMarketDataBatch answers in input order. A token whose lookup fails gets
// the default answer of its chain, only a done ctx fails the batch.
func (im *impl) GetMarketDataBatch(c ctx.Ctx, nfts []*domain.NFT) ([]domain.MarketData, error) {
	res := make([]domain.MarketData, len(nfts))
	if len(nfts) == 0 {
		return res, nil
	}
	for i, nft := range nfts {
		res[i] = im.defaultMarketData(nft)
	}

	b := goroutines.NewBatch(im.batchWorkers, goroutines.WithBatchSize(len(nfts)))
	defer b.Close()
	for i := range nfts {
		idx := i
		b.Queue(func() (interface{}, error) {
			nft := nfts[idx]
			data, err := im.GetMarketData(c, nft)
			if err != nil {
				c.WithFields(log.Fields{
					"idx": idx,
					"err": err,
				}).Warn("im.GetMarketData failed")
				data = im.defaultMarketData(nft)
			}
			return batchResult{idx: idx, data: data}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("batch result failed")
			continue
		}
		r := ret.Value().(batchResult)
		res[r.idx] = r.data
	}
	if err := c.Err(); err != nil {
		return nil, domain.NewFetchError("market data lookup canceled", err)
	}
	return res, nil
}

func (im *impl) defaultMarketData(nft *domain.NFT) domain.MarketData {
	if nft != nil {
		if a, ok := im.adapters[nft.ChainType]; ok {
			return domain.DefaultMarketData(a.Currency())
		}
		if info, err := domain.GetChainInfo(nft.ChainType); err == nil {
			return domain.DefaultMarketData(info.Currency)
		}
	}
	return domain.DefaultMarketData("")
}

func (im *impl) ListNFT(c ctx.Ctx, nft *domain.NFT, price decimal.Decimal) (bool, error) {
	if nft == nil {
		return false, domain.ErrMissingTokenIdentity
	}
	a, err := im.adapter(nft.ChainType)
	if err != nil {
		return false, err
	}
	return a.ListNFT(c, nft, price)
}

func (im *impl) BurnNFT(c ctx.Ctx, nft *domain.NFT) error {
	if nft == nil {
		return domain.ErrMissingTokenIdentity
	}
	a, err := im.adapter(nft.ChainType)
	if err != nil {
		return err
	}
	return a.BurnNFT(c, nft)
}
