package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain/keys"
	"github.com/x-xyz/nftlister/service/cache/provider"
	"github.com/x-xyz/nftlister/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 64)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.cache.Set(mockCtx, keys.RedisKey(ts.im.cfg.Pfx, k), sv, time.Second)
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(time.Second)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.cfg.Pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.cfg.Pfx, k))
	ts.NoError(err)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(time.Second)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.cfg.Pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &v, nil
	}))

	ts.Equal(v, *c)

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.cfg.Pfx, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(time.Second)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.cfg.Pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDelAndClear() {
	c := &value{}

	ts.NoError(ts.im.Set(mockCtx, "a", value{"a"}))
	ts.NoError(ts.im.Set(mockCtx, "b", value{"b"}))
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey("other", "a"), []byte(`{"value":"x"}`), time.Minute))

	ts.NoError(ts.im.Del(mockCtx, "a"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "a", c))
	ts.NoError(ts.im.Get(mockCtx, "b", c))
	ts.Equal(value{"b"}, *c)

	ts.NoError(ts.im.Clear(mockCtx))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "b", c))

	_, _, err := ts.cache.Get(mockCtx, keys.RedisKey("other", "a"))
	ts.NoError(err)
}

func (ts *testsuite) TestGetByFuncSharesConcurrentLoad() {
	var (
		calls int32
		wg    sync.WaitGroup
		start = make(chan struct{})
	)
	getter := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return value{"shared"}, nil
	}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			c := &value{}
			ts.NoError(ts.im.GetByFunc(mockCtx, "shared", c, getter))
			ts.Equal(value{"shared"}, *c)
		}()
	}
	close(start)
	wg.Wait()

	ts.LessOrEqual(atomic.LoadInt32(&calls), int32(2))
}

func (ts *testsuite) TestGetByFuncGetterError() {
	boom := errors.New("boom")
	c := &value{}
	err := ts.im.GetByFunc(mockCtx, "k", c, func() (interface{}, error) {
		return nil, boom
	})
	ts.True(errors.Is(err, boom))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "k", c))
}
