package compound

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/service/cache/provider"
	"github.com/x-xyz/nftlister/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
	errDown = errors.New("layer down")
)

// downLayer fails every call, like an unreachable redis
type downLayer struct{}

func (downLayer) Get(ctx.Ctx, string) ([]byte, time.Duration, error) {
	return nil, 0, errDown
}

func (downLayer) Set(ctx.Ctx, string, []byte, time.Duration) error {
	return errDown
}

func (downLayer) Del(ctx.Ctx, string) error {
	return errDown
}

func (downLayer) Clear(ctx.Ctx, string) error {
	return errDown
}

type testsuite struct {
	suite.Suite
	local  provider.Provider
	shared provider.Provider
	im     *impl
}

func (ts *testsuite) SetupTest() {
	ts.local = primitive.NewPrimitive("local", 64)
	ts.shared = primitive.NewPrimitive("shared", 64)
	ts.im = NewCompound([]provider.Provider{ts.local, ts.shared}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetWritesEveryLayer() {
	ts.NoError(ts.im.Set(mockCtx, "tezos:KT1", []byte("floor"), time.Second))
	for _, lyr := range []provider.Provider{ts.local, ts.shared} {
		v, _, err := lyr.Get(mockCtx, "tezos:KT1")
		ts.NoError(err)
		ts.Equal([]byte("floor"), v)
	}

	time.Sleep(time.Second)
	_, _, err := ts.im.Get(mockCtx, "tezos:KT1")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetBackfillsUpperLayer() {
	ts.NoError(ts.shared.Set(mockCtx, "k", []byte("v"), time.Minute))
	_, _, err := ts.local.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)

	v, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
	ts.True(ttl > 0)

	v, _, err = ts.local.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
}

func (ts *testsuite) TestGetMiss() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestFailingLayer() {
	withDownLast := NewCompound([]provider.Provider{ts.local, downLayer{}})
	withDownFirst := NewCompound([]provider.Provider{downLayer{}, ts.local})

	_, _, err := withDownLast.Get(mockCtx, "k")
	ts.True(errors.Is(err, errDown))

	ts.NoError(ts.local.Set(mockCtx, "k", []byte("v"), time.Minute))
	v, _, err := withDownFirst.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)

	err = withDownLast.Set(mockCtx, "k2", []byte("v2"), time.Minute)
	ts.True(errors.Is(err, errDown))
	v, _, err = ts.local.Get(mockCtx, "k2")
	ts.NoError(err)
	ts.Equal([]byte("v2"), v)
}

func (ts *testsuite) TestClear() {
	ts.NoError(ts.im.Set(mockCtx, "pfx:a", []byte("a"), time.Minute))
	ts.NoError(ts.shared.Set(mockCtx, "pfx:b", []byte("b"), time.Minute))
	ts.NoError(ts.im.Set(mockCtx, "other:c", []byte("c"), time.Minute))

	ts.NoError(ts.im.Clear(mockCtx, "pfx"))

	for _, lyr := range []provider.Provider{ts.local, ts.shared} {
		_, _, e := lyr.Get(mockCtx, "pfx:a")
		ts.Equal(provider.ErrNotFound, e)
		_, _, e = lyr.Get(mockCtx, "pfx:b")
		ts.Equal(provider.ErrNotFound, e)
		_, _, e = lyr.Get(mockCtx, "other:c")
		ts.NoError(e)
	}
}
