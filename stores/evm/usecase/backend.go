package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/x-xyz/nftlister/base/abi"
	"github.com/x-xyz/nftlister/base/backoff"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/service/chain"
)

// DeadAddress receives tokens of contracts without a burn function
var DeadAddress = common.HexToAddress("0x000000000000000000000000000000000000dEaD")

var errNoCode = errors.New("no contract code at address")

// backend implements the ERC721 side of listing and burning
type backend struct {
	chain        chain.Client
	pollInterval time.Duration

	capsMu sync.Mutex
	caps   map[common.Address]domain.ContractCapabilities
}

func newBackend(client chain.Client, pollInterval time.Duration) *backend {
	return &backend{
		chain:        client,
		pollInterval: pollInterval,
		caps:         make(map[common.Address]domain.ContractCapabilities),
	}
}

func (b *backend) IsOperator(c ctx.Ctx, req domain.ListingRequest, operator string) (bool, error) {
	tokenId, err := chain.ParseTokenId(req.TokenId)
	if err != nil {
		return false, err
	}
	asset := common.HexToAddress(req.AssetContract)
	op := common.HexToAddress(operator)

	res, err := b.chain.Call(c, asset, baseabi.ERC721TokenABI, "getApproved", tokenId)
	if err != nil {
		return false, err
	}
	if approved, ok := res[0].(common.Address); ok && approved == op {
		return true, nil
	}

	res, err = b.chain.Call(c, asset, baseabi.ERC721TokenABI, "isApprovedForAll", common.HexToAddress(req.Seller), op)
	if err != nil {
		return false, err
	}
	all, _ := res[0].(bool)
	return all, nil
}

func (b *backend) AddOperator(c ctx.Ctx, req domain.ListingRequest, operator string) (domain.OperationHash, error) {
	tokenId, err := chain.ParseTokenId(req.TokenId)
	if err != nil {
		return "", err
	}
	hash, err := b.chain.Transact(c, common.HexToAddress(req.AssetContract), baseabi.ERC721TokenABI, "approve", common.HexToAddress(operator), tokenId)
	if err != nil {
		return "", err
	}
	return domain.OperationHash(hash.Hex()), nil
}

func (b *backend) CreateListing(c ctx.Ctx, marketplace string, req domain.ListingRequest) (domain.OperationHash, error) {
	tokenId, err := chain.ParseTokenId(req.TokenId)
	if err != nil {
		return "", err
	}
	hash, err := b.chain.Transact(c, common.HexToAddress(marketplace), baseabi.MarketplaceABI, "listToken",
		common.HexToAddress(req.AssetContract), tokenId, req.Price, common.HexToAddress(req.Seller))
	if err != nil {
		return "", err
	}
	return domain.OperationHash(hash.Hex()), nil
}

func (b *backend) WaitConfirmation(c ctx.Ctx, hash domain.OperationHash, confirmations int) error {
	c = ctx.WithFields(c, log.Fields{"hash": hash})
	bo := backoff.NewConstant(b.pollInterval)
	for {
		done, err := b.confirmed(c, common.HexToHash(string(hash)), confirmations)
		if err != nil || done {
			return err
		}
		if err := bo.Backoff(c); err != nil {
			c.WithField("err", err).Warn("confirmation wait canceled")
			return err
		}
	}
}

func (b *backend) confirmed(c ctx.Ctx, hash common.Hash, confirmations int) (bool, error) {
	receipt, err := b.chain.Receipt(c, hash)
	if errors.Is(err, chain.ErrReceiptNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return false, fmt.Errorf("transaction %s reverted", hash.Hex())
	}
	head, err := b.chain.BlockNumber(c)
	if err != nil {
		return false, err
	}
	return int64(head)-receipt.BlockNumber.Int64()+1 >= int64(confirmations), nil
}

// Capabilities looks for function selectors in the dispatcher of the
// deployed bytecode. Proxies report no capability.
func (b *backend) Capabilities(c ctx.Ctx, contractAddress string) (domain.ContractCapabilities, error) {
	addr := common.HexToAddress(contractAddress)
	b.capsMu.Lock()
	caps, ok := b.caps[addr]
	b.capsMu.Unlock()
	if ok {
		return caps, nil
	}

	code, err := b.chain.Code(c, addr)
	if err != nil {
		return domain.ContractCapabilities{}, err
	}
	if len(code) == 0 {
		return domain.ContractCapabilities{}, errNoCode
	}
	caps.NativeBurn = bytes.Contains(code, baseabi.ERC721TokenABI.Methods["burn"].ID)
	caps.TransferToBurnAddress = bytes.Contains(code, baseabi.ERC721TokenABI.Methods["safeTransferFrom"].ID)

	b.capsMu.Lock()
	b.caps[addr] = caps
	b.capsMu.Unlock()
	return caps, nil
}

func (b *backend) Burn(c ctx.Ctx, nft *domain.NFT, owner string, capability domain.BurnCapability) (domain.OperationHash, error) {
	tokenId, err := chain.ParseTokenId(nft.Attributes.TokenId)
	if err != nil {
		return "", err
	}
	contract := common.HexToAddress(nft.Attributes.ContractAddress)
	var hash common.Hash
	switch capability {
	case domain.BurnCapabilityNative:
		hash, err = b.chain.Transact(c, contract, baseabi.ERC721TokenABI, "burn", tokenId)
	case domain.BurnCapabilityTransfer:
		hash, err = b.chain.Transact(c, contract, baseabi.ERC721TokenABI, "safeTransferFrom", common.HexToAddress(owner), DeadAddress, tokenId)
	default:
		return "", domain.NewUnsupportedOperationError(fmt.Sprintf("Unknown burn capability: %s", capability))
	}
	if err != nil {
		return "", err
	}
	return domain.OperationHash(hash.Hex()), nil
}
