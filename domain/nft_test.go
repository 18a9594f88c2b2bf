package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftlister/base/ptr"
)

type nftSuite struct {
	suite.Suite
}

func TestNFT(t *testing.T) {
	suite.Run(t, new(nftSuite))
}

func (s *nftSuite) TestIsListable() {
	nft := &NFT{Attributes: Attributes{ContractAddress: "KT1test", TokenId: "1"}}
	s.True(nft.IsListable())
	s.False((&NFT{Attributes: Attributes{ContractAddress: "KT1test"}}).IsListable())
	s.False((&NFT{Attributes: Attributes{TokenId: "1"}}).IsListable())
	var missing *NFT
	s.False(missing.IsListable())
}

func (s *nftSuite) TestAttributesKeepOrder() {
	attrs := Attributes{ContractAddress: "KT1test", TokenId: "1", Symbol: "OBJKT"}
	attrs.Extra.Set("rarity", "rare")
	attrs.Extra.Set("edition", float64(3))
	attrs.Extra.Set("tokenId", "ignored")
	attrs.Extra.Set("artist", "tz1artist")

	data, err := json.Marshal(attrs)
	s.NoError(err)
	s.Equal(`{"contractAddress":"KT1test","tokenId":"1","symbol":"OBJKT","rarity":"rare","edition":3,"artist":"tz1artist"}`, string(data))

	var decoded Attributes
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("KT1test", decoded.ContractAddress)
	s.Equal("1", decoded.TokenId)
	s.Equal([]string{"rarity", "edition", "artist"}, decoded.Extra.Keys())
}

func (s *nftSuite) TestAttributesNumericTokenId() {
	var nft NFT
	s.NoError(json.Unmarshal([]byte(`{"id":"a","chainType":"tezos","name":"n","attributes":{"contractAddress":"KT1","tokenId":42}}`), &nft))
	s.Equal("42", nft.Attributes.TokenId)
	s.True(nft.IsListable())

	s.NoError(json.Unmarshal([]byte(`{"id":"a","chainType":"tezos","name":"n","attributes":null}`), &nft))
	s.False(nft.IsListable())
}

func (s *nftSuite) TestMarketDataInformative() {
	s.False((&MarketData{Currency: "XTZ"}).IsInformative())
	s.True((&MarketData{Currency: "XTZ", CurrentListings: ptr.Float64(0)}).IsInformative())
	s.True((&MarketData{Currency: "XTZ", FloorPrice: ptr.Float64(1)}).IsInformative())
	var missing *MarketData
	s.False(missing.IsInformative())

	def := DefaultMarketData("XTZ")
	s.Equal(SourceNone, def.Source)
	s.False(def.IsInformative())
}

func (s *nftSuite) TestEntryExpired() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := &MarketDataEntry{CapturedAt: now}
	s.False(entry.Expired(now.Add(4*time.Minute), 5*time.Minute))
	s.True(entry.Expired(now.Add(5*time.Minute), 5*time.Minute))
}

func (s *nftSuite) TestBurnMethod() {
	m, ok := ContractCapabilities{NativeBurn: true, TransferToBurnAddress: true}.BurnMethod()
	s.True(ok)
	s.Equal(BurnCapabilityNative, m)
	m, ok = ContractCapabilities{TransferToBurnAddress: true}.BurnMethod()
	s.True(ok)
	s.Equal(BurnCapabilityTransfer, m)
	_, ok = ContractCapabilities{}.BurnMethod()
	s.False(ok)
}
