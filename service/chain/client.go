package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/nftlister/base/ctx"
	bEth "github.com/x-xyz/nftlister/base/ethereum"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
)

var (
	ErrNoSigner = errors.New("no signing key configured")
	// ErrReceiptNotFound is returned while a transaction is still pending
	ErrReceiptNotFound = ethereum.NotFound
)

// Backend is the rpc surface the client needs, satisfied by
// *ethclient.Client and the throttled client
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

type ClientCfg struct {
	RpcUrl  string
	ChainId int64
	// PrivateKey in hex, optional for read only clients
	PrivateKey string
	// Throttle bounds concurrent rpc requests, 0 disables throttling
	Throttle int
}

type Client interface {
	// From is the signer address, zero when no key is configured
	From() common.Address
	Call(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Transact(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (common.Hash, error)
	Code(c bCtx.Ctx, addr common.Address) ([]byte, error)
	Receipt(c bCtx.Ctx, hash common.Hash) (*types.Receipt, error)
	BlockNumber(c bCtx.Ctx) (uint64, error)
}

type clientImpl struct {
	backend Backend
	chainId *big.Int
	key     *ecdsa.PrivateKey
	from    common.Address
	met     metrics.Service
}

// DialBackend connects to the rpc endpoint, other EVM services may share it
func DialBackend(ctx bCtx.Ctx, cfg *ClientCfg) (Backend, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
			"url":     cfg.RpcUrl,
		}).Error("ethclient.DialContext failed")
		return nil, err
	}
	if cfg.Throttle > 0 {
		return bEth.NewThrottledClient(client, cfg.Throttle), nil
	}
	return client, nil
}

func Dial(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	backend, err := DialBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewKeyedClient(ctx, backend, cfg)
}

// NewKeyedClient parses the optional signer key of cfg
func NewKeyedClient(ctx bCtx.Ctx, backend Backend, cfg *ClientCfg) (Client, error) {
	var key *ecdsa.PrivateKey
	if len(cfg.PrivateKey) > 0 {
		k, err := bEth.ParsePrivateKey(cfg.PrivateKey)
		if err != nil {
			ctx.WithField("err", err).Error("bEth.ParsePrivateKey failed")
			return nil, err
		}
		key = k
	}
	return NewClient(backend, cfg.ChainId, key), nil
}

// NewClient wraps an already connected backend
func NewClient(backend Backend, chainId int64, key *ecdsa.PrivateKey) Client {
	im := &clientImpl{
		backend: backend,
		chainId: big.NewInt(chainId),
		key:     key,
		met:     metrics.New("chain"),
	}
	if key != nil {
		im.from = bEth.AddressOf(key)
	}
	return im
}

func (im *clientImpl) From() common.Address {
	return im.from
}

func (im *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer im.met.BumpTime("call", "method", method).End()
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := im.backend.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("backend.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (im *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (common.Hash, error) {
	if im.key == nil {
		return common.Hash{}, ErrNoSigner
	}
	defer im.met.BumpTime("transact", "method", method).End()
	opts, err := bind.NewKeyedTransactorWithChainID(im.key, im.chainId)
	if err != nil {
		ctx.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return common.Hash{}, err
	}
	opts.Context = ctx
	contract := bind.NewBoundContract(addr, _abi, im.backend, im.backend, im.backend)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"contract": addr.Hex(),
			"method":   method,
			"err":      err,
		}).Error("contract.Transact failed")
		return common.Hash{}, err
	}
	ctx.WithFields(log.Fields{
		"contract": addr.Hex(),
		"method":   method,
		"tx":       tx.Hash().Hex(),
	}).Info("transaction sent")
	return tx.Hash(), nil
}

func (im *clientImpl) Code(ctx bCtx.Ctx, addr common.Address) ([]byte, error) {
	code, err := im.backend.CodeAt(ctx, addr, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"contract": addr.Hex(),
			"err":      err,
		}).Error("backend.CodeAt failed")
		return nil, err
	}
	return code, nil
}

func (im *clientImpl) Receipt(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	receipt, err := im.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, ErrReceiptNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"tx":  hash.Hex(),
			"err": err,
		}).Error("backend.TransactionReceipt failed")
		return nil, err
	}
	return receipt, nil
}

func (im *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	n, err := im.backend.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.BlockNumber failed")
		return 0, err
	}
	return n, nil
}
