package domain

import (
	"math/big"

	"github.com/x-xyz/nftlister/base/ctx"
)

// OperationHash identifies a submitted on-chain operation
type OperationHash string

// ListingRequest lives for one listing attempt only
type ListingRequest struct {
	AssetContract string
	TokenId       string
	// Price is expressed in the chain's smallest unit
	Price  *big.Int
	Seller string
}

type ListingState int

const (
	ListingStateIdle ListingState = iota
	ListingStateCheckingOperator
	ListingStateApprovingOperator
	ListingStateCreatingListing
	ListingStateConfirmed
	ListingStateFailed
)

var listingStateNames = map[ListingState]string{
	ListingStateIdle:              "Idle",
	ListingStateCheckingOperator:  "CheckingOperator",
	ListingStateApprovingOperator: "ApprovingOperator",
	ListingStateCreatingListing:   "CreatingListing",
	ListingStateConfirmed:         "Confirmed",
	ListingStateFailed:            "Failed",
}

func (s ListingState) String() string {
	if n, ok := listingStateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// ListingReceipt records how far one listing attempt went
type ListingReceipt struct {
	Id          string
	State       ListingState
	Transitions []ListingState
	ApprovalTx  OperationHash
	ListingTx   OperationHash
}

// ListingBackend is the chain specific half of the two-phase listing protocol
type ListingBackend interface {
	IsOperator(c ctx.Ctx, req ListingRequest, operator string) (bool, error)
	AddOperator(c ctx.Ctx, req ListingRequest, operator string) (OperationHash, error)
	CreateListing(c ctx.Ctx, marketplace string, req ListingRequest) (OperationHash, error)
	WaitConfirmation(c ctx.Ctx, hash OperationHash, confirmations int) error
}

// BurnBackend is the chain specific half of burning a token
type BurnBackend interface {
	Capabilities(c ctx.Ctx, contractAddress string) (ContractCapabilities, error)
	Burn(c ctx.Ctx, nft *NFT, owner string, capability BurnCapability) (OperationHash, error)
	WaitConfirmation(c ctx.Ctx, hash OperationHash, confirmations int) error
}

// ListingUsecase drives listing and burning on top of chain backends
type ListingUsecase interface {
	List(c ctx.Ctx, backend ListingBackend, marketplace string, req ListingRequest) (*ListingReceipt, error)
	Burn(c ctx.Ctx, backend BurnBackend, nft *NFT, owner string) (OperationHash, error)
}

type BurnCapability string

const (
	BurnCapabilityNative   BurnCapability = "native_burn"
	BurnCapabilityTransfer BurnCapability = "transfer_to_burn_address"
)

// ContractCapabilities is the closed set of write capabilities a token
// contract exposes, resolved from queried contract metadata.
type ContractCapabilities struct {
	NativeBurn            bool
	TransferToBurnAddress bool
}

// BurnMethod prefers a native burn entry point
func (c ContractCapabilities) BurnMethod() (BurnCapability, bool) {
	switch {
	case c.NativeBurn:
		return BurnCapabilityNative, true
	case c.TransferToBurnAddress:
		return BurnCapabilityTransfer, true
	default:
		return "", false
	}
}
