package domain

import (
	"time"

	"github.com/x-xyz/nftlister/base/ctx"
)

// SourceNone marks the default answer when no provider had data
const SourceNone = "none"

// MarketData is the normalized pricing of one token. Numeric fields are
// optional, a nil field means the source did not report it.
type MarketData struct {
	Currency        string   `json:"currency"`
	FloorPrice      *float64 `json:"floorPrice,omitempty"`
	LastSalePrice   *float64 `json:"lastSalePrice,omitempty"`
	CurrentListings *float64 `json:"currentListings,omitempty"`
	Source          string   `json:"source"`
}

// IsInformative reports whether at least one numeric signal is present
func (m *MarketData) IsInformative() bool {
	return m != nil && (m.FloorPrice != nil || m.LastSalePrice != nil || m.CurrentListings != nil)
}

// DefaultMarketData is returned when every provider came back empty
func DefaultMarketData(currency string) MarketData {
	return MarketData{
		Currency: currency,
		Source:   SourceNone,
	}
}

// MarketDataEntry is one cached provider answer
type MarketDataEntry struct {
	Data       MarketData `json:"data"`
	CapturedAt time.Time  `json:"capturedAt"`
}

// Expired is evaluated by the reader against its own clock
func (e *MarketDataEntry) Expired(now time.Time, ttl time.Duration) bool {
	return !now.Before(e.CapturedAt.Add(ttl))
}

// MarketDataProvider queries one pricing source for a single token.
// Implementations are lossy: a missing answer is (nil, nil).
type MarketDataProvider interface {
	Name() string
	Fetch(c ctx.Ctx, nft *NFT) (*MarketData, error)
}

// MarketDataCacheRepo stores entries keyed by contractAddress|tokenId
type MarketDataCacheRepo interface {
	Get(c ctx.Ctx, contractAddress, tokenId string) (*MarketDataEntry, error)
	Set(c ctx.Ctx, contractAddress, tokenId string, entry *MarketDataEntry) error
	Del(c ctx.Ctx, contractAddress, tokenId string) error
	Clear(c ctx.Ctx) error
}

// MarketDataUsecase aggregates providers of one chain
type MarketDataUsecase interface {
	GetMarketData(c ctx.Ctx, nft *NFT) (MarketData, error)
	Invalidate(c ctx.Ctx, nft *NFT) error
	Clear(c ctx.Ctx) error
}
