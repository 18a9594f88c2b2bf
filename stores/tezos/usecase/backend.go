package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/x-xyz/nftlister/base/backoff"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/service/tzkt"
)

const (
	entrypointUpdateOperators = "update_operators"
	entrypointListToken       = "list_token"
	entrypointBurn            = "burn"
	entrypointTransfer        = "transfer"
)

// backend implements the FA2 side of listing and burning
type backend struct {
	tzkt         tzkt.Client
	wallet       domain.WalletSession
	pollInterval time.Duration

	capsMu sync.Mutex
	caps   map[string]domain.ContractCapabilities
}

func newBackend(client tzkt.Client, wallet domain.WalletSession, pollInterval time.Duration) *backend {
	return &backend{
		tzkt:         client,
		wallet:       wallet,
		pollInterval: pollInterval,
		caps:         make(map[string]domain.ContractCapabilities),
	}
}

func (b *backend) IsOperator(c ctx.Ctx, req domain.ListingRequest, operator string) (bool, error) {
	keys, err := b.tzkt.GetOperatorKeys(c, req.AssetContract, tzkt.OperatorKey{
		Owner:    req.Seller,
		Operator: operator,
		TokenId:  req.TokenId,
	})
	if err != nil {
		c.WithField("err", err).Error("tzkt.GetOperatorKeys failed")
		return false, err
	}
	for _, k := range keys {
		if k.Active {
			return true, nil
		}
	}
	return false, nil
}

func (b *backend) AddOperator(c ctx.Ctx, req domain.ListingRequest, operator string) (domain.OperationHash, error) {
	return b.wallet.Submit(c, domain.ContractCall{
		Chain:      domain.ChainTezos,
		Contract:   req.AssetContract,
		Entrypoint: entrypointUpdateOperators,
		Params: []interface{}{
			map[string]interface{}{
				"add_operator": map[string]interface{}{
					"owner":    req.Seller,
					"operator": operator,
					"token_id": req.TokenId,
				},
			},
		},
	})
}

func (b *backend) CreateListing(c ctx.Ctx, marketplace string, req domain.ListingRequest) (domain.OperationHash, error) {
	return b.wallet.Submit(c, domain.ContractCall{
		Chain:      domain.ChainTezos,
		Contract:   marketplace,
		Entrypoint: entrypointListToken,
		Params: map[string]interface{}{
			"fa2_address": req.AssetContract,
			"token_id":    req.TokenId,
			"price":       req.Price.String(),
			"seller":      req.Seller,
		},
	})
}

// WaitConfirmation polls until the operation is applied and buried under
// enough blocks. It only returns early on failure status or ctx done.
func (b *backend) WaitConfirmation(c ctx.Ctx, hash domain.OperationHash, confirmations int) error {
	c = ctx.WithFields(c, log.Fields{"hash": hash})
	bo := backoff.NewConstant(b.pollInterval)
	for {
		done, err := b.confirmed(c, hash, confirmations)
		if err != nil || done {
			return err
		}
		if err := bo.Backoff(c); err != nil {
			c.WithField("err", err).Warn("confirmation wait canceled")
			return err
		}
	}
}

func (b *backend) confirmed(c ctx.Ctx, hash domain.OperationHash, confirmations int) (bool, error) {
	ops, err := b.tzkt.GetOperations(c, string(hash))
	if err != nil {
		c.WithField("err", err).Error("tzkt.GetOperations failed")
		return false, err
	}
	if len(ops) == 0 {
		// not indexed yet
		return false, nil
	}
	level := ops[0].Level
	for _, op := range ops {
		if op.Status != tzkt.OperationStatusApplied {
			return false, fmt.Errorf("operation %s is %s", hash, op.Status)
		}
		if op.Level > level {
			level = op.Level
		}
	}
	head, err := b.tzkt.GetHead(c)
	if err != nil {
		c.WithField("err", err).Error("tzkt.GetHead failed")
		return false, err
	}
	c.WithFields(log.Fields{"level": level, "head": head.Level}).Debug("operation included")
	return head.Level-level+1 >= int64(confirmations), nil
}

func (b *backend) Capabilities(c ctx.Ctx, contractAddress string) (domain.ContractCapabilities, error) {
	b.capsMu.Lock()
	caps, ok := b.caps[contractAddress]
	b.capsMu.Unlock()
	if ok {
		return caps, nil
	}

	entrypoints, err := b.tzkt.GetEntrypoints(c, contractAddress)
	if err != nil {
		c.WithField("err", err).Error("tzkt.GetEntrypoints failed")
		return domain.ContractCapabilities{}, err
	}
	for _, e := range entrypoints {
		switch e.Name {
		case entrypointBurn:
			caps.NativeBurn = true
		case entrypointTransfer:
			caps.TransferToBurnAddress = true
		}
	}

	b.capsMu.Lock()
	b.caps[contractAddress] = caps
	b.capsMu.Unlock()
	return caps, nil
}

func (b *backend) Burn(c ctx.Ctx, nft *domain.NFT, owner string, capability domain.BurnCapability) (domain.OperationHash, error) {
	call := domain.ContractCall{
		Chain:    domain.ChainTezos,
		Contract: nft.Attributes.ContractAddress,
	}
	switch capability {
	case domain.BurnCapabilityNative:
		call.Entrypoint = entrypointBurn
		call.Params = []interface{}{
			map[string]interface{}{
				"from_":    owner,
				"token_id": nft.Attributes.TokenId,
				"amount":   1,
			},
		}
	case domain.BurnCapabilityTransfer:
		call.Entrypoint = entrypointTransfer
		call.Params = []interface{}{
			map[string]interface{}{
				"from_": owner,
				"txs": []interface{}{
					map[string]interface{}{
						"to_":      BurnAddress,
						"token_id": nft.Attributes.TokenId,
						"amount":   1,
					},
				},
			},
		}
	default:
		return "", domain.NewUnsupportedOperationError(fmt.Sprintf("Unknown burn capability: %s", capability))
	}
	return b.wallet.Submit(c, call)
}
