package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGetExpire() {
	ts.NoError(ts.im.Set(mockCtx, "marketdata:KT1-1", []byte("floor"), time.Second))

	v, ttl, err := ts.im.Get(mockCtx, "marketdata:KT1-1")
	ts.NoError(err)
	ts.Equal([]byte("floor"), v)
	ts.True(ttl <= time.Second)

	time.Sleep(time.Second)
	_, _, err = ts.im.Get(mockCtx, "marketdata:KT1-1")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestZeroTtlNeverExpires() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), 0))
	v, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
	ts.NoError(ts.im.Del(mockCtx, "missing"))
}

func (ts *testsuite) TestClearPrefix() {
	for _, k := range []string{"pfx:a", "pfx:b", "pfx:c", "other:a"} {
		ts.NoError(ts.im.Set(mockCtx, k, []byte(k), time.Minute))
	}

	ts.NoError(ts.im.Clear(mockCtx, "pfx:"))
	for _, k := range []string{"pfx:a", "pfx:b", "pfx:c"} {
		_, _, err := ts.im.Get(mockCtx, k)
		ts.Equal(provider.ErrNotFound, err, k)
	}
	_, _, err := ts.im.Get(mockCtx, "other:a")
	ts.NoError(err)

	ts.NoError(ts.im.Clear(mockCtx, ""))
	_, _, err = ts.im.Get(mockCtx, "other:a")
	ts.Equal(provider.ErrNotFound, err)
}
