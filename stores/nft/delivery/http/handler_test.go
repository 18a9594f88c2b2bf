package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/uri"
	"github.com/x-xyz/nftlister/base/validator"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/domain/mocks"
	"github.com/x-xyz/nftlister/middleware"
)

const nftBody = `{"id":"KT1abc-7","chainType":"tezos","name":"Piece","imageUrl":"ipfs://Qm1","attributes":{"contractAddress":"KT1abc","tokenId":"7"}}`

type handlerSuite struct {
	suite.Suite
	e   *echo.Echo
	nft *mocks.NFTUsecase
	// wallet listings behind a response cache
	cached *echo.Echo
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.nft = &mocks.NFTUsecase{}
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, &HandlerCfg{NFT: s.nft, Resolver: uri.NewResolver("", "")})

	httpCache := middleware.NewHttpCache(nil, time.Minute)
	s.cached = echo.New()
	s.cached.Validator = s.e.Validator
	s.cached.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.cached, &HandlerCfg{
		NFT:      s.nft,
		Resolver: uri.NewResolver("", ""),
		Cache:    httpCache.Middleware(),
		Purge:    httpCache.Purge,
	})
}

func (s *handlerSuite) TearDownTest() {
	s.nft.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	return s.serve(s.e, method, target, body)
}

func (s *handlerSuite) serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if len(body) > 0 {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func isPiece(n *domain.NFT) bool {
	return n != nil && n.Attributes.ContractAddress == "KT1abc" && n.Attributes.TokenId == "7"
}

func (s *handlerSuite) TestGetChains() {
	s.nft.On("SupportedChains").Return([]domain.ChainType{domain.ChainTezos, domain.ChainEthereum}).Once()

	rec := s.do(http.MethodGet, "/chains", "")
	s.Equal(http.StatusOK, rec.Code)

	res := struct {
		Data []chainResp `json:"data"`
	}{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal([]chainResp{
		{Chain: domain.ChainTezos, DisplayName: "Tezos", Currency: "XTZ"},
		{Chain: domain.ChainEthereum, DisplayName: "Ethereum", Currency: "ETH"},
	}, res.Data)
}

func (s *handlerSuite) TestGetNFTsWithMarketData() {
	nft := &domain.NFT{}
	s.NoError(json.Unmarshal([]byte(nftBody), nft))
	floor := 2.5
	s.nft.On("GetNFTs", mock.Anything, domain.ChainTezos, "tz1owner").Return([]*domain.NFT{nft}, nil).Once()
	s.nft.On("GetMarketDataBatch", mock.Anything, []*domain.NFT{nft}).Return([]domain.MarketData{
		{Currency: "XTZ", FloorPrice: &floor, Source: "objkt"},
	}, nil).Once()

	rec := s.do(http.MethodGet, "/nfts/tezos/tz1owner?withMarketData=true", "")
	s.Equal(http.StatusOK, rec.Code)

	res := struct {
		Data []map[string]interface{} `json:"data"`
	}{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Len(res.Data, 1)
	s.Equal("KT1abc-7", res.Data[0]["id"])
	s.Equal("https://ipfs.io/ipfs/Qm1", res.Data[0]["displayImageUrl"])
	s.Equal("ipfs://Qm1", res.Data[0]["imageUrl"])
	md := res.Data[0]["marketData"].(map[string]interface{})
	s.Equal(2.5, md["floorPrice"])
	s.Equal("objkt", md["source"])
}

func (s *handlerSuite) TestGetNFTsUnsupportedChain() {
	s.nft.On("GetNFTs", mock.Anything, domain.ChainType("solana"), "abc").Return(nil, domain.NewUnsupportedChainError("solana")).Once()

	rec := s.do(http.MethodGet, "/nfts/solana/abc", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `"kind":"UnsupportedChainError"`)
}

func (s *handlerSuite) TestGetNFTsBadFlag() {
	rec := s.do(http.MethodGet, "/nfts/tezos/tz1owner?withMarketData=maybe", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGetMarketData() {
	s.nft.On("GetMarketData", mock.Anything, mock.MatchedBy(isPiece)).Return(domain.DefaultMarketData("XTZ"), nil).Once()

	rec := s.do(http.MethodPost, "/nfts/market-data", nftBody)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"source":"none"`)
}

func (s *handlerSuite) TestGetMarketDataMissingChain() {
	rec := s.do(http.MethodPost, "/nfts/market-data", `{"id":"x","attributes":{}}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestListNFT() {
	price := decimal.RequireFromString("1.5")
	s.nft.On("ListNFT", mock.Anything, mock.MatchedBy(isPiece), mock.MatchedBy(func(p decimal.Decimal) bool {
		return p.Equal(price)
	})).Return(true, nil).Once()

	rec := s.do(http.MethodPost, "/nfts/list", `{"nft":`+nftBody+`,"price":"1.5"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"listed":true`)
}

func (s *handlerSuite) TestListNFTMarketplaceMissing() {
	s.nft.On("ListNFT", mock.Anything, mock.MatchedBy(isPiece), mock.Anything).Return(false, domain.ErrMarketplaceNotConfigured).Once()

	rec := s.do(http.MethodPost, "/nfts/list", `{"nft":`+nftBody+`,"price":"1"}`)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *handlerSuite) TestBurnNFT() {
	s.nft.On("BurnNFT", mock.Anything, mock.MatchedBy(isPiece)).Return(nil).Once()

	rec := s.do(http.MethodPost, "/nfts/burn", `{"nft":`+nftBody+`}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"burned":true`)
}

func (s *handlerSuite) TestBurnNFTUnsupported() {
	s.nft.On("BurnNFT", mock.Anything, mock.MatchedBy(isPiece)).Return(domain.NewUnsupportedOperationError("burn not supported")).Once()

	rec := s.do(http.MethodPost, "/nfts/burn", `{"nft":`+nftBody+`}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *handlerSuite) TestBurnMissingNFT() {
	rec := s.do(http.MethodPost, "/nfts/burn", `{}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestBurnRefreshesCachedWallet() {
	nft := &domain.NFT{}
	s.NoError(json.Unmarshal([]byte(nftBody), nft))
	s.nft.On("GetNFTs", mock.Anything, domain.ChainTezos, "tz1owner").Return([]*domain.NFT{nft}, nil).Once()
	s.nft.On("BurnNFT", mock.Anything, mock.MatchedBy(isPiece)).Return(nil).Once()
	s.nft.On("GetNFTs", mock.Anything, domain.ChainTezos, "tz1owner").Return([]*domain.NFT{}, nil).Once()

	rec := s.serve(s.cached, http.MethodGet, "/nfts/tezos/tz1owner", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "KT1abc-7")

	rec = s.serve(s.cached, http.MethodPost, "/nfts/burn", `{"nft":`+nftBody+`}`)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.serve(s.cached, http.MethodGet, "/nfts/tezos/tz1owner", "")
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "KT1abc-7")
}

func (s *handlerSuite) TestListRefreshesCachedWallet() {
	s.nft.On("GetNFTs", mock.Anything, domain.ChainTezos, "tz1other").Return([]*domain.NFT{}, nil).Twice()
	s.nft.On("ListNFT", mock.Anything, mock.MatchedBy(isPiece), mock.Anything).Return(true, nil).Once()

	s.serve(s.cached, http.MethodGet, "/nfts/tezos/tz1other", "")
	rec := s.serve(s.cached, http.MethodPost, "/nfts/list", `{"nft":`+nftBody+`,"price":"1.5"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.serve(s.cached, http.MethodGet, "/nfts/tezos/tz1other", "")
}

func (s *handlerSuite) TestFailedBurnKeepsCachedWallet() {
	nft := &domain.NFT{}
	s.NoError(json.Unmarshal([]byte(nftBody), nft))
	s.nft.On("GetNFTs", mock.Anything, domain.ChainTezos, "tz1keep").Return([]*domain.NFT{nft}, nil).Once()
	s.nft.On("BurnNFT", mock.Anything, mock.MatchedBy(isPiece)).Return(domain.NewBurnError("rejected", nil)).Once()

	s.serve(s.cached, http.MethodGet, "/nfts/tezos/tz1keep", "")
	rec := s.serve(s.cached, http.MethodPost, "/nfts/burn", `{"nft":`+nftBody+`}`)
	s.Equal(http.StatusBadGateway, rec.Code)

	rec = s.serve(s.cached, http.MethodGet, "/nfts/tezos/tz1keep", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "KT1abc-7")
}
