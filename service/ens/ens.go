package ens

import (
	"github.com/x-xyz/nftlister/base/ctx"
)

// ENS turns ethereum wallet input into an address
type ENS interface {
	// Resolve returns an empty address for unregistered names
	Resolve(ctx ctx.Ctx, name string) (string, error)
	// ResolveWallet accepts a hex address or an ENS name
	ResolveWallet(ctx ctx.Ctx, wallet string) (string, error)
}
