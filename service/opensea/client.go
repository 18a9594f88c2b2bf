package opensea

import (
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/nftlister/base/ctx"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrParseTotalPrice = errors.New("parse opensea total price error")
)

const (
	SchemaERC721  = "ERC721"
	SchemaERC1155 = "ERC1155"
)

type Client interface {
	GetAsset(ctx bCtx.Ctx, contract string, tokenId string) (*Asset, error)
	GetAssetsByOwner(ctx bCtx.Ctx, owner string, cursor string) (*AssetsResp, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	// BaseUrl defaults to the public v1 api
	BaseUrl string
}

type AssetsResp struct {
	Next     string  `json:"next"`
	Assets   []Asset `json:"assets"`
	Previous string  `json:"previous"`
}

type AssetContract struct {
	Address    string `json:"address"`
	Name       string `json:"name"`
	SchemaName string `json:"schema_name"`
	Symbol     string `json:"symbol"`
}

type CollectionStats struct {
	FloorPrice *float64 `json:"floor_price"`
}

type Collection struct {
	Name  string           `json:"name"`
	Slug  string           `json:"slug"`
	Stats *CollectionStats `json:"stats"`
}

type Trait struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

type PaymentToken struct {
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

type LastSale struct {
	TotalPrice   string       `json:"total_price"`
	PaymentToken PaymentToken `json:"payment_token"`
}

// GetPrice returns the sale price in display units of its payment token
func (l LastSale) GetPrice() (decimal.Decimal, error) {
	n, ok := new(big.Int).SetString(l.TotalPrice, 10)
	if !ok {
		return decimal.Zero, ErrParseTotalPrice
	}
	decimals := l.PaymentToken.Decimals
	if decimals == 0 {
		decimals = 18
	}
	return decimal.NewFromBigInt(n, -decimals), nil
}

type SeaportSellOrder struct {
	OrderHash    string `json:"order_hash"`
	CurrentPrice string `json:"current_price"`
}

type Owner struct {
	Address string `json:"address"`
}

type Asset struct {
	TokenId           string             `json:"token_id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	ImageUrl          string             `json:"image_url"`
	ImageOriginalUrl  string             `json:"image_original_url"`
	ImageThumbnailUrl string             `json:"image_thumbnail_url"`
	Owner             Owner              `json:"owner"`
	AssetContract     AssetContract      `json:"asset_contract"`
	Collection        Collection         `json:"collection"`
	Traits            []Trait            `json:"traits"`
	LastSale          *LastSale          `json:"last_sale"`
	SeaportSellOrders []SeaportSellOrder `json:"seaport_sell_orders"`
}
