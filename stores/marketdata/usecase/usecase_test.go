package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/ptr"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/domain/mocks"
	"github.com/x-xyz/nftlister/stores/marketdata/repository"
)

var (
	mockCtx = ctx.Background()
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

type marketDataSuite struct {
	suite.Suite

	clock *fakeClock
	repo  domain.MarketDataCacheRepo
	provA *mocks.MarketDataProvider
	provB *mocks.MarketDataProvider
	im    domain.MarketDataUsecase
	nft   *domain.NFT
}

func (s *marketDataSuite) SetupTest() {
	s.clock = &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.repo = repository.New(&repository.RepoCfg{Chain: domain.ChainTezos, SizeMB: 1, StorageTtl: time.Hour})
	s.provA = &mocks.MarketDataProvider{}
	s.provA.On("Name").Return("A").Maybe()
	s.provB = &mocks.MarketDataProvider{}
	s.provB.On("Name").Return("B").Maybe()
	s.im = New(&MarketDataUseCaseCfg{
		Chain:     domain.ChainTezos,
		Currency:  "XTZ",
		Providers: []domain.MarketDataProvider{s.provA, s.provB},
		Repo:      s.repo,
		Now:       s.clock.Now,
	})
	s.nft = &domain.NFT{
		Id:         domain.NFTId("KT1NFTContract", "1"),
		ChainType:  domain.ChainTezos,
		Name:       "token",
		Attributes: domain.Attributes{ContractAddress: "KT1NFTContract", TokenId: "1"},
	}
}

func (s *marketDataSuite) TearDownTest() {
	s.provA.AssertExpectations(s.T())
	s.provB.AssertExpectations(s.T())
}

func TestMarketData(t *testing.T) {
	suite.Run(t, new(marketDataSuite))
}

func (s *marketDataSuite) TestMissingIdentity() {
	repo := &mocks.MarketDataCacheRepo{}
	im := New(&MarketDataUseCaseCfg{
		Chain:     domain.ChainTezos,
		Currency:  "XTZ",
		Providers: []domain.MarketDataProvider{s.provA},
		Repo:      repo,
	})

	nft := &domain.NFT{Id: "x", ChainType: domain.ChainTezos, Attributes: domain.Attributes{ContractAddress: "KT1NFTContract"}}
	_, err := im.GetMarketData(mockCtx, nft)
	s.True(errors.Is(err, domain.ErrValidation))

	s.provA.AssertNotCalled(s.T(), "Fetch", mock.Anything, mock.Anything)
	repo.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketDataSuite) TestFallbackToSecondProvider() {
	s.provA.On("Fetch", mock.Anything, s.nft).Return(&domain.MarketData{Currency: "XTZ"}, nil).Once()
	s.provB.On("Fetch", mock.Anything, s.nft).Return(&domain.MarketData{
		Currency:        "XTZ",
		FloorPrice:      ptr.Float64(2.5),
		CurrentListings: ptr.Float64(3),
	}, nil).Once()

	res, err := s.im.GetMarketData(mockCtx, s.nft)
	s.NoError(err)
	s.Equal("B", res.Source)
	s.Equal(2.5, *res.FloorPrice)
	s.Equal(3.0, *res.CurrentListings)
	s.Nil(res.LastSalePrice)
	s.provA.AssertNumberOfCalls(s.T(), "Fetch", 1)
	s.provB.AssertNumberOfCalls(s.T(), "Fetch", 1)
}

func (s *marketDataSuite) TestProviderErrorIsSwallowed() {
	s.provA.On("Fetch", mock.Anything, s.nft).Return(nil, errors.New("boom")).Once()
	s.provB.On("Fetch", mock.Anything, s.nft).Return(&domain.MarketData{LastSalePrice: ptr.Float64(1)}, nil).Once()

	res, err := s.im.GetMarketData(mockCtx, s.nft)
	s.NoError(err)
	s.Equal("B", res.Source)
	s.Equal("XTZ", res.Currency)
}

func (s *marketDataSuite) TestCacheWithinTtl() {
	s.provA.On("Fetch", mock.Anything, s.nft).Return(&domain.MarketData{Currency: "XTZ", FloorPrice: ptr.Float64(1)}, nil).Twice()

	first, err := s.im.GetMarketData(mockCtx, s.nft)
	s.NoError(err)
	s.Equal("A", first.Source)

	s.clock.Advance(4 * time.Minute)
	second, err := s.im.GetMarketData(mockCtx, s.nft)
	s.NoError(err)
	s.Equal(first, second)
	s.provA.AssertNumberOfCalls(s.T(), "Fetch", 1)

	s.clock.Advance(time.Minute)
	_, err = s.im.GetMarketData(mockCtx, s.nft)
	s.NoError(err)
	s.provA.AssertNumberOfCalls(s.T(), "Fetch", 2)
	s.provB.AssertNotCalled(s.T(), "Fetch", mock.Anything, mock.Anything)
}

func (s *marketDataSuite) TestDefaultIsNotCached() {
	s.provA.On("Fetch", mock.Anything, s.nft).Return(nil, nil).Twice()
	s.provB.On("Fetch", mock.Anything, s.nft).Return(&domain.MarketData{Currency: "XTZ"}, nil).Twice()

	for i := 0; i < 2; i++ {
		res, err := s.im.GetMarketData(mockCtx, s.nft)
		s.NoError(err)
		s.Equal(domain.DefaultMarketData("XTZ"), res)
	}
	s.provA.AssertNumberOfCalls(s.T(), "Fetch", 2)
	s.provB.AssertNumberOfCalls(s.T(), "Fetch", 2)

	_, err := s.repo.Get(mockCtx, "KT1NFTContract", "1")
	s.Equal(domain.ErrNotFound, err)
}

func (s *marketDataSuite) TestInvalidate() {
	s.provA.On("Fetch", mock.Anything, s.nft).Return(&domain.MarketData{FloorPrice: ptr.Float64(1)}, nil).Twice()

	_, err := s.im.GetMarketData(mockCtx, s.nft)
	s.NoError(err)
	s.NoError(s.im.Invalidate(mockCtx, s.nft))
	_, err = s.im.GetMarketData(mockCtx, s.nft)
	s.NoError(err)
	s.provA.AssertNumberOfCalls(s.T(), "Fetch", 2)

	s.NoError(s.im.Clear(mockCtx))
	_, err = s.repo.Get(mockCtx, "KT1NFTContract", "1")
	s.Equal(domain.ErrNotFound, err)
}

func (s *marketDataSuite) TestCanceled() {
	c, cancel := ctx.WithCancel(mockCtx)
	cancel()

	_, err := s.im.GetMarketData(c, s.nft)
	s.True(errors.Is(err, domain.ErrFetch))
	s.provA.AssertNotCalled(s.T(), "Fetch", mock.Anything, mock.Anything)
}
