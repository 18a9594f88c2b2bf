package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound          = errors.New("Your requested Item is not found")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidAddress    = errors.New("Invalid address")
)

// ErrorKind classifies the failures surfaced to callers of the core
type ErrorKind string

const (
	KindFetch                ErrorKind = "FetchError"
	KindValidation           ErrorKind = "ValidationError"
	KindConfig               ErrorKind = "ConfigError"
	KindApproval             ErrorKind = "ApprovalError"
	KindListing              ErrorKind = "ListingError"
	KindBurn                 ErrorKind = "BurnError"
	KindUnsupportedOperation ErrorKind = "UnsupportedOperationError"
	KindUnsupportedChain     ErrorKind = "UnsupportedChainError"
)

// Error is a classified failure. Message is meant for end users, Err keeps
// the underlying cause for logs and errors.Is/As.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches kind sentinels (an *Error without message) by kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && len(t.Message) == 0
}

// kind sentinels, use with errors.Is
var (
	ErrFetch                = &Error{Kind: KindFetch}
	ErrValidation           = &Error{Kind: KindValidation}
	ErrConfig               = &Error{Kind: KindConfig}
	ErrApproval             = &Error{Kind: KindApproval}
	ErrListing              = &Error{Kind: KindListing}
	ErrBurn                 = &Error{Kind: KindBurn}
	ErrUnsupportedOperation = &Error{Kind: KindUnsupportedOperation}
	ErrUnsupportedChain     = &Error{Kind: KindUnsupportedChain}
)

var (
	// ErrMarketplaceNotConfigured is returned as is by every ListNFT, never wrapped
	ErrMarketplaceNotConfigured = NewConfigError("Marketplace contract address not configured", nil)
	// ErrWalletNotConfigured is returned when no seller address is available
	ErrWalletNotConfigured = NewConfigError("No wallet address available", nil)
	// ErrMissingTokenIdentity is returned when contractAddress or tokenId is absent
	ErrMissingTokenIdentity = NewValidationError("Missing contract address or token ID", nil)
)

func NewFetchError(msg string, err error) *Error {
	return &Error{Kind: KindFetch, Message: msg, Err: err}
}

func NewValidationError(msg string, err error) *Error {
	return &Error{Kind: KindValidation, Message: msg, Err: err}
}

func NewConfigError(msg string, err error) *Error {
	return &Error{Kind: KindConfig, Message: msg, Err: err}
}

func NewApprovalError(msg string, err error) *Error {
	return &Error{Kind: KindApproval, Message: msg, Err: err}
}

func NewListingError(msg string, err error) *Error {
	return &Error{Kind: KindListing, Message: msg, Err: err}
}

func NewBurnError(msg string, err error) *Error {
	return &Error{Kind: KindBurn, Message: msg, Err: err}
}

func NewUnsupportedOperationError(msg string) *Error {
	return &Error{Kind: KindUnsupportedOperation, Message: msg}
}

func NewUnsupportedChainError(chain ChainType) *Error {
	return &Error{Kind: KindUnsupportedChain, Message: fmt.Sprintf("Unsupported chain: %s", chain)}
}

// KindOf returns the kind of the first classified error in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// MessageOf returns the user facing message of a classified error, err.Error() otherwise
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
