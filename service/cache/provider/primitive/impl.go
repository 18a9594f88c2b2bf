package primitive

import (
	"bytes"
	"time"

	"github.com/coocood/freecache"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process cache of size MB
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

// Get returns the remaining ttl, zero for entries without expiry
func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, 0, err
	}
	if expireAt == 0 {
		return val, 0, nil
	}
	ttl := time.Until(time.Unix(int64(expireAt), 0))
	if ttl < time.Second {
		ttl = time.Second
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

func (im *impl) Clear(c ctx.Ctx, prefix string) error {
	if len(prefix) == 0 {
		im.cache.Clear()
		return nil
	}

	// collect first, deleting while iterating skips entries
	pfx := []byte(prefix)
	matched := [][]byte{}
	it := im.cache.NewIterator()
	for entry := it.Next(); entry != nil; entry = it.Next() {
		if bytes.HasPrefix(entry.Key, pfx) {
			matched = append(matched, entry.Key)
		}
	}
	for _, k := range matched {
		im.cache.Del(k)
	}
	c.WithField("name", im.name).WithField("prefix", prefix).WithField("count", len(matched)).Debug("cache cleared")
	return nil
}
