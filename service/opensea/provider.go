package opensea

import (
	bCtx "github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/ptr"
	"github.com/x-xyz/nftlister/domain"
)

const ProviderName = "opensea"

type provider struct {
	client Client
}

// NewMarketDataProvider reads floor, last sale and listing count from the
// asset endpoint. Failures are reported as no data.
func NewMarketDataProvider(client Client) domain.MarketDataProvider {
	return &provider{client: client}
}

func (p *provider) Name() string {
	return ProviderName
}

func (p *provider) Fetch(ctx bCtx.Ctx, nft *domain.NFT) (*domain.MarketData, error) {
	if !nft.IsListable() {
		return nil, nil
	}
	asset, err := p.client.GetAsset(ctx, nft.Attributes.ContractAddress, nft.Attributes.TokenId)
	if err != nil {
		ctx.WithField("err", err).Warn("client.GetAsset failed")
		return nil, nil
	}

	res := &domain.MarketData{
		Currency: "ETH",
		Source:   ProviderName,
	}
	if asset.Collection.Stats != nil && asset.Collection.Stats.FloorPrice != nil {
		res.FloorPrice = ptr.Float64(*asset.Collection.Stats.FloorPrice)
	}
	if asset.LastSale != nil {
		if price, err := asset.LastSale.GetPrice(); err == nil {
			res.LastSalePrice = ptr.Float64(price.InexactFloat64())
		}
	}
	if asset.SeaportSellOrders != nil {
		res.CurrentListings = ptr.Float64(float64(len(asset.SeaportSellOrders)))
	}
	return res, nil
}
