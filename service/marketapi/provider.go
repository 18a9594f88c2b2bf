package marketapi

import (
	"net/http"
	"time"
)

const (
	placeholderContract = "{contractAddress}"
	placeholderTokenId  = "{tokenId}"
)

// FieldMapping names the response fields, nested fields use dotted paths
// such as "stats.floor"
type FieldMapping struct {
	FloorPrice      string
	LastSalePrice   string
	CurrentListings string
}

type ProviderCfg struct {
	Name       string
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
	// PathTemplate contains {contractAddress} and {tokenId}
	PathTemplate string
	Fields       FieldMapping
	Currency     string
	// PriceDecimals scales reported prices down when the source answers in
	// the smallest unit, listings are never scaled
	PriceDecimals int32
	ApikeyHeader  string
	Apikey        string
}

// ObjktCfg reads the objkt marketplace summary of a token
func ObjktCfg(baseUrl string) ProviderCfg {
	return ProviderCfg{
		Name:         "objkt",
		BaseUrl:      baseUrl,
		PathTemplate: "/v1/token/{contractAddress}/{tokenId}/marketplace",
		Fields: FieldMapping{
			FloorPrice:      "floor_price",
			LastSalePrice:   "last_sale_price",
			CurrentListings: "active_listings_count",
		},
		Currency: "XTZ",
	}
}

// TeiaCfg reads the teia token summary
func TeiaCfg(baseUrl string) ProviderCfg {
	return ProviderCfg{
		Name:         "teia",
		BaseUrl:      baseUrl,
		PathTemplate: "/tokens/{contractAddress}/{tokenId}",
		Fields: FieldMapping{
			FloorPrice:      "lowest_price",
			LastSalePrice:   "last_sale_price",
			CurrentListings: "active_listings",
		},
		Currency: "XTZ",
	}
}

// StargazeCfg reads the stargaze marketplace api
func StargazeCfg(baseUrl string) ProviderCfg {
	return ProviderCfg{
		Name:         "stargaze",
		BaseUrl:      baseUrl,
		PathTemplate: "/api/v1/tokens/{contractAddress}/{tokenId}/market",
		Fields: FieldMapping{
			FloorPrice:      "floor_price",
			LastSalePrice:   "last_sale_price",
			CurrentListings: "ask_count",
		},
		Currency: "STARS",
	}
}
