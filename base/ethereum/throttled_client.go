package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/semaphore"

	"github.com/x-xyz/nftlister/base/metrics"
)

// Upstream is the rpc surface being throttled, *ethclient.Client satisfies it
type Upstream interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// ThrottledClient bounds the number of in flight rpc requests. A request
// whose context ends while waiting for a slot is never sent.
type ThrottledClient struct {
	up  Upstream
	sem *semaphore.Weighted
	met metrics.Service
}

func NewThrottledClient(up Upstream, n int) *ThrottledClient {
	if n < 1 {
		n = 1
	}
	return &ThrottledClient{
		up:  up,
		sem: semaphore.NewWeighted(int64(n)),
		met: metrics.New("ethereum"),
	}
}

func (c *ThrottledClient) do(ctx context.Context, method string, fn func() error) error {
	t := c.met.BumpTime("throttle.wait", "method", method)
	err := c.sem.Acquire(ctx, 1)
	t.End()
	if err != nil {
		c.met.BumpSum("throttle.canceled", 1, "method", method)
		return err
	}
	defer c.sem.Release(1)
	return fn()
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (n uint64, err error) {
	err = c.do(ctx, "BlockNumber", func() (e error) {
		n, e = c.up.BlockNumber(ctx)
		return
	})
	return
}

func (c *ThrottledClient) HeaderByNumber(ctx context.Context, number *big.Int) (h *types.Header, err error) {
	err = c.do(ctx, "HeaderByNumber", func() (e error) {
		h, e = c.up.HeaderByNumber(ctx, number)
		return
	})
	return
}

func (c *ThrottledClient) CodeAt(ctx context.Context, address common.Address, number *big.Int) (code []byte, err error) {
	err = c.do(ctx, "CodeAt", func() (e error) {
		code, e = c.up.CodeAt(ctx, address, number)
		return
	})
	return
}

func (c *ThrottledClient) PendingCodeAt(ctx context.Context, address common.Address) (code []byte, err error) {
	err = c.do(ctx, "PendingCodeAt", func() (e error) {
		code, e = c.up.PendingCodeAt(ctx, address)
		return
	})
	return
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) (out []byte, err error) {
	err = c.do(ctx, "CallContract", func() (e error) {
		out, e = c.up.CallContract(ctx, msg, number)
		return
	})
	return
}

func (c *ThrottledClient) PendingNonceAt(ctx context.Context, account common.Address) (nonce uint64, err error) {
	err = c.do(ctx, "PendingNonceAt", func() (e error) {
		nonce, e = c.up.PendingNonceAt(ctx, account)
		return
	})
	return
}

func (c *ThrottledClient) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	err = c.do(ctx, "SuggestGasPrice", func() (e error) {
		price, e = c.up.SuggestGasPrice(ctx)
		return
	})
	return
}

func (c *ThrottledClient) SuggestGasTipCap(ctx context.Context) (tip *big.Int, err error) {
	err = c.do(ctx, "SuggestGasTipCap", func() (e error) {
		tip, e = c.up.SuggestGasTipCap(ctx)
		return
	})
	return
}

func (c *ThrottledClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (gas uint64, err error) {
	err = c.do(ctx, "EstimateGas", func() (e error) {
		gas, e = c.up.EstimateGas(ctx, msg)
		return
	})
	return
}

func (c *ThrottledClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.do(ctx, "SendTransaction", func() error {
		return c.up.SendTransaction(ctx, tx)
	})
}

func (c *ThrottledClient) TransactionReceipt(ctx context.Context, hash common.Hash) (r *types.Receipt, err error) {
	err = c.do(ctx, "TransactionReceipt", func() (e error) {
		r, e = c.up.TransactionReceipt(ctx, hash)
		return
	})
	return
}

func (c *ThrottledClient) FilterLogs(ctx context.Context, q ethereum.FilterQuery) (logs []types.Log, err error) {
	err = c.do(ctx, "FilterLogs", func() (e error) {
		logs, e = c.up.FilterLogs(ctx, q)
		return
	})
	return
}

// SubscribeFilterLogs holds a slot only while the subscription is set up
func (c *ThrottledClient) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (sub ethereum.Subscription, err error) {
	err = c.do(ctx, "SubscribeFilterLogs", func() (e error) {
		sub, e = c.up.SubscribeFilterLogs(ctx, q, ch)
		return
	})
	return
}
