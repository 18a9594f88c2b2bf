package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/domain/mocks"
)

var (
	mockCtx = ctx.Background()
)

const (
	marketplace = "KT1MarketPlace"
)

type listingSuite struct {
	suite.Suite

	backend *mocks.ListingBackend
	burner  *mocks.BurnBackend
	im      domain.ListingUsecase
	req     domain.ListingRequest
	nft     *domain.NFT
}

func (s *listingSuite) SetupTest() {
	s.backend = &mocks.ListingBackend{}
	s.burner = &mocks.BurnBackend{}
	s.im = New(&ListingUseCaseCfg{Confirmations: 2})
	s.req = domain.ListingRequest{
		AssetContract: "KT1NFTContract",
		TokenId:       "1",
		Price:         big.NewInt(1500000),
		Seller:        "tz1Owner",
	}
	s.nft = &domain.NFT{
		Id:         domain.NFTId("KT1NFTContract", "1"),
		ChainType:  domain.ChainTezos,
		Name:       "token",
		Attributes: domain.Attributes{ContractAddress: "KT1NFTContract", TokenId: "1"},
	}
}

func (s *listingSuite) TearDownTest() {
	s.backend.AssertExpectations(s.T())
	s.burner.AssertExpectations(s.T())
}

func TestListing(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) TestApproveThenList() {
	s.backend.On("IsOperator", mock.Anything, s.req, marketplace).Return(false, nil).Once()
	s.backend.On("AddOperator", mock.Anything, s.req, marketplace).Return(domain.OperationHash("opApprove"), nil).Once()
	s.backend.On("WaitConfirmation", mock.Anything, domain.OperationHash("opApprove"), 2).Return(nil).Once()
	s.backend.On("CreateListing", mock.Anything, marketplace, s.req).Return(domain.OperationHash("opList"), nil).Once()
	s.backend.On("WaitConfirmation", mock.Anything, domain.OperationHash("opList"), 2).Return(nil).Once()

	receipt, err := s.im.List(mockCtx, s.backend, marketplace, s.req)
	s.NoError(err)
	s.NotEmpty(receipt.Id)
	s.Equal(domain.ListingStateConfirmed, receipt.State)
	s.Equal([]domain.ListingState{
		domain.ListingStateIdle,
		domain.ListingStateCheckingOperator,
		domain.ListingStateApprovingOperator,
		domain.ListingStateCreatingListing,
		domain.ListingStateConfirmed,
	}, receipt.Transitions)
	s.Equal(domain.OperationHash("opApprove"), receipt.ApprovalTx)
	s.Equal(domain.OperationHash("opList"), receipt.ListingTx)
}

func (s *listingSuite) TestListingWaitsForApprovalConfirmation() {
	calls := []string{}
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { calls = append(calls, name) }
	}
	s.backend.On("IsOperator", mock.Anything, s.req, marketplace).Return(false, nil).Run(record("isOperator")).Once()
	s.backend.On("AddOperator", mock.Anything, s.req, marketplace).Return(domain.OperationHash("opApprove"), nil).Run(record("addOperator")).Once()
	s.backend.On("WaitConfirmation", mock.Anything, domain.OperationHash("opApprove"), 2).Return(nil).Run(func(mock.Arguments) {
		time.Sleep(20 * time.Millisecond)
		calls = append(calls, "approvalConfirmed")
	}).Once()
	s.backend.On("CreateListing", mock.Anything, marketplace, mock.MatchedBy(func(req domain.ListingRequest) bool {
		return req.AssetContract == "KT1NFTContract" && req.TokenId == "1" && req.Price.Cmp(big.NewInt(1500000)) == 0
	})).Return(domain.OperationHash("opList"), nil).Run(record("createListing")).Once()
	s.backend.On("WaitConfirmation", mock.Anything, domain.OperationHash("opList"), 2).Return(nil).Run(record("listingConfirmed")).Once()

	_, err := s.im.List(mockCtx, s.backend, marketplace, s.req)
	s.NoError(err)
	s.Equal([]string{"isOperator", "addOperator", "approvalConfirmed", "createListing", "listingConfirmed"}, calls)
}

func (s *listingSuite) TestSkipApprovalWhenAuthorized() {
	s.backend.On("IsOperator", mock.Anything, s.req, marketplace).Return(true, nil).Once()
	s.backend.On("CreateListing", mock.Anything, marketplace, s.req).Return(domain.OperationHash("opList"), nil).Once()
	s.backend.On("WaitConfirmation", mock.Anything, domain.OperationHash("opList"), 2).Return(nil).Once()

	receipt, err := s.im.List(mockCtx, s.backend, marketplace, s.req)
	s.NoError(err)
	s.Equal(domain.ListingStateConfirmed, receipt.State)
	s.Empty(receipt.ApprovalTx)
	s.NotContains(receipt.Transitions, domain.ListingStateApprovingOperator)
	s.backend.AssertNotCalled(s.T(), "AddOperator", mock.Anything, mock.Anything, mock.Anything)
	s.backend.AssertNumberOfCalls(s.T(), "CreateListing", 1)
}

func (s *listingSuite) TestApprovalFailureAbortsListing() {
	s.backend.On("IsOperator", mock.Anything, s.req, marketplace).Return(false, nil).Once()
	s.backend.On("AddOperator", mock.Anything, s.req, marketplace).Return(domain.OperationHash(""), errors.New("rejected")).Once()

	receipt, err := s.im.List(mockCtx, s.backend, marketplace, s.req)
	s.True(errors.Is(err, domain.ErrApproval))
	s.Equal("Failed to approve marketplace operator", domain.MessageOf(err))
	s.Equal(domain.ListingStateFailed, receipt.State)
	s.backend.AssertNotCalled(s.T(), "CreateListing", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestOperatorReadFailure() {
	s.backend.On("IsOperator", mock.Anything, s.req, marketplace).Return(false, errors.New("indexer down")).Once()

	_, err := s.im.List(mockCtx, s.backend, marketplace, s.req)
	s.True(errors.Is(err, domain.ErrApproval))
	s.backend.AssertNotCalled(s.T(), "AddOperator", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestApprovalConfirmationCanceled() {
	s.backend.On("IsOperator", mock.Anything, s.req, marketplace).Return(false, nil).Once()
	s.backend.On("AddOperator", mock.Anything, s.req, marketplace).Return(domain.OperationHash("opApprove"), nil).Once()
	s.backend.On("WaitConfirmation", mock.Anything, domain.OperationHash("opApprove"), 2).Return(context.DeadlineExceeded).Once()

	receipt, err := s.im.List(mockCtx, s.backend, marketplace, s.req)
	s.True(errors.Is(err, domain.ErrApproval))
	s.True(errors.Is(err, context.DeadlineExceeded))
	s.Equal(domain.OperationHash("opApprove"), receipt.ApprovalTx)
	s.backend.AssertNotCalled(s.T(), "CreateListing", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestListingFailure() {
	s.backend.On("IsOperator", mock.Anything, s.req, marketplace).Return(true, nil).Once()
	s.backend.On("CreateListing", mock.Anything, marketplace, s.req).Return(domain.OperationHash(""), errors.New("out of gas")).Once()

	receipt, err := s.im.List(mockCtx, s.backend, marketplace, s.req)
	s.True(errors.Is(err, domain.ErrListing))
	s.Equal("Failed to create listing on marketplace", domain.MessageOf(err))
	s.Equal(domain.ListingStateFailed, receipt.State)
}

func (s *listingSuite) TestPreconditions() {
	_, err := s.im.List(mockCtx, s.backend, "", s.req)
	s.True(err == domain.ErrMarketplaceNotConfigured)

	req := s.req
	req.TokenId = ""
	_, err = s.im.List(mockCtx, s.backend, marketplace, req)
	s.True(errors.Is(err, domain.ErrValidation))

	req = s.req
	req.Price = big.NewInt(0)
	_, err = s.im.List(mockCtx, s.backend, marketplace, req)
	s.True(errors.Is(err, domain.ErrValidation))

	s.backend.AssertNotCalled(s.T(), "IsOperator", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestBurnPrefersNative() {
	s.burner.On("Capabilities", mock.Anything, "KT1NFTContract").Return(domain.ContractCapabilities{NativeBurn: true, TransferToBurnAddress: true}, nil).Once()
	s.burner.On("Burn", mock.Anything, s.nft, "tz1Owner", domain.BurnCapabilityNative).Return(domain.OperationHash("opBurn"), nil).Once()
	s.burner.On("WaitConfirmation", mock.Anything, domain.OperationHash("opBurn"), 2).Return(nil).Once()

	hash, err := s.im.Burn(mockCtx, s.burner, s.nft, "tz1Owner")
	s.NoError(err)
	s.Equal(domain.OperationHash("opBurn"), hash)
}

func (s *listingSuite) TestBurnFallsBackToTransfer() {
	s.burner.On("Capabilities", mock.Anything, "KT1NFTContract").Return(domain.ContractCapabilities{TransferToBurnAddress: true}, nil).Once()
	s.burner.On("Burn", mock.Anything, s.nft, "tz1Owner", domain.BurnCapabilityTransfer).Return(domain.OperationHash("opTransfer"), nil).Once()
	s.burner.On("WaitConfirmation", mock.Anything, domain.OperationHash("opTransfer"), 2).Return(nil).Once()

	_, err := s.im.Burn(mockCtx, s.burner, s.nft, "tz1Owner")
	s.NoError(err)
}

func (s *listingSuite) TestBurnUnsupported() {
	s.burner.On("Capabilities", mock.Anything, "KT1NFTContract").Return(domain.ContractCapabilities{}, nil).Once()

	_, err := s.im.Burn(mockCtx, s.burner, s.nft, "tz1Owner")
	s.True(errors.Is(err, domain.ErrUnsupportedOperation))
	s.burner.AssertNotCalled(s.T(), "Burn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestBurnFailure() {
	s.burner.On("Capabilities", mock.Anything, "KT1NFTContract").Return(domain.ContractCapabilities{NativeBurn: true}, nil).Once()
	s.burner.On("Burn", mock.Anything, s.nft, "tz1Owner", domain.BurnCapabilityNative).Return(domain.OperationHash(""), errors.New("not owner")).Once()

	_, err := s.im.Burn(mockCtx, s.burner, s.nft, "tz1Owner")
	s.True(errors.Is(err, domain.ErrBurn))
}
