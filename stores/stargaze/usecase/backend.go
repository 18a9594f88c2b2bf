package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/x-xyz/nftlister/base/backoff"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/service/stargaze"
)

const (
	denom             = "ustars"
	saleTypeFixed     = "fixed_price"
	contractInfoKey   = "contract_info"
	msgApprove        = "approve"
	msgSetAsk         = "set_ask"
	msgBurn           = "burn"
	msgTransferNft    = "transfer_nft"
	contractSg721     = "sg721"
	contractCw721Base = "cw721-base"
)

type approvalsResp struct {
	Approvals []struct {
		Spender string `json:"spender"`
	} `json:"approvals"`
}

// contractInfo is the cw2 state every cosmwasm contract stores
type contractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// backend implements the cw721 side of listing and burning
type backend struct {
	client       stargaze.Client
	wallet       domain.WalletSession
	burnAddress  string
	pollInterval time.Duration

	capsMu sync.Mutex
	caps   map[string]domain.ContractCapabilities
}

func newBackend(client stargaze.Client, wallet domain.WalletSession, burnAddress string, pollInterval time.Duration) *backend {
	return &backend{
		client:       client,
		wallet:       wallet,
		burnAddress:  burnAddress,
		pollInterval: pollInterval,
		caps:         make(map[string]domain.ContractCapabilities),
	}
}

func (b *backend) IsOperator(c ctx.Ctx, req domain.ListingRequest, operator string) (bool, error) {
	query := map[string]interface{}{
		"approvals": map[string]interface{}{"token_id": req.TokenId},
	}
	res := approvalsResp{}
	if err := b.client.SmartQuery(c, req.AssetContract, query, &res); err != nil {
		c.WithField("err", err).Error("client.SmartQuery failed")
		return false, err
	}
	for _, a := range res.Approvals {
		if a.Spender == operator {
			return true, nil
		}
	}
	return false, nil
}

func (b *backend) AddOperator(c ctx.Ctx, req domain.ListingRequest, operator string) (domain.OperationHash, error) {
	return b.wallet.Submit(c, domain.ContractCall{
		Chain:      domain.ChainStargaze,
		Contract:   req.AssetContract,
		Entrypoint: msgApprove,
		Params: map[string]interface{}{
			"spender":  operator,
			"token_id": req.TokenId,
		},
	})
}

func (b *backend) CreateListing(c ctx.Ctx, marketplace string, req domain.ListingRequest) (domain.OperationHash, error) {
	return b.wallet.Submit(c, domain.ContractCall{
		Chain:      domain.ChainStargaze,
		Contract:   marketplace,
		Entrypoint: msgSetAsk,
		Params: map[string]interface{}{
			"sale_type":  saleTypeFixed,
			"collection": req.AssetContract,
			"token_id":   req.TokenId,
			"price": map[string]interface{}{
				"amount": req.Price.String(),
				"denom":  denom,
			},
		},
	})
}

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
	tx, err := b.client.GetTx(c, string(hash))
	if errors.Is(err, stargaze.ErrTxNotFound) {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("client.GetTx failed")
		return false, err
	}
	if tx.Code != 0 {
		return false, fmt.Errorf("tx %s failed with code %d: %s", hash, tx.Code, tx.RawLog)
	}
	height, err := b.client.GetLatestHeight(c)
	if err != nil {
		c.WithField("err", err).Error("client.GetLatestHeight failed")
		return false, err
	}
	return height-tx.Height+1 >= int64(confirmations), nil
}

func (b *backend) Capabilities(c ctx.Ctx, contractAddress string) (domain.ContractCapabilities, error) {
	b.capsMu.Lock()
	caps, ok := b.caps[contractAddress]
	b.capsMu.Unlock()
	if ok {
		return caps, nil
	}

	raw, err := b.client.RawQuery(c, contractAddress, []byte(contractInfoKey))
	if err != nil {
		c.WithField("err", err).Error("client.RawQuery failed")
		return domain.ContractCapabilities{}, err
	}
	info := contractInfo{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &info); err != nil {
			c.WithField("err", err).Warn("unparsable contract_info")
		}
	}
	caps.NativeBurn = strings.Contains(info.Contract, contractSg721) || strings.Contains(info.Contract, contractCw721Base)
	caps.TransferToBurnAddress = len(b.burnAddress) > 0

	b.capsMu.Lock()
	b.caps[contractAddress] = caps
	b.capsMu.Unlock()
	return caps, nil
}

func (b *backend) Burn(c ctx.Ctx, nft *domain.NFT, owner string, capability domain.BurnCapability) (domain.OperationHash, error) {
	call := domain.ContractCall{
		Chain:    domain.ChainStargaze,
		Contract: nft.Attributes.ContractAddress,
	}
	switch capability {
	case domain.BurnCapabilityNative:
		call.Entrypoint = msgBurn
		call.Params = map[string]interface{}{"token_id": nft.Attributes.TokenId}
	case domain.BurnCapabilityTransfer:
		call.Entrypoint = msgTransferNft
		call.Params = map[string]interface{}{
			"recipient": b.burnAddress,
			"token_id":  nft.Attributes.TokenId,
		}
	default:
		return "", domain.NewUnsupportedOperationError(fmt.Sprintf("Unknown burn capability: %s", capability))
	}
	return b.wallet.Submit(c, call)
}
