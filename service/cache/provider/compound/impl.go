package compound

import (
	"errors"
	"time"

	"go.uber.org/multierr"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// NewCompound stacks providers fastest first. Reads stop at the first hit
// and backfill the layers above it.
func NewCompound(layers []provider.Provider) provider.Provider {
	return &impl{layers}
}

// Get treats a failing layer as a miss as long as a lower layer is left to ask.
func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	last := len(im.layers) - 1
	for idx, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		switch {
		case err == nil:
			im.backfill(c, idx, key, val, ttl)
			return val, ttl, nil
		case errors.Is(err, provider.ErrNotFound):
			continue
		case idx < last:
			c.WithFields(log.Fields{"err": err, "key": key, "layer": idx}).Warn("cache layer failed, trying next")
		default:
			return nil, 0, err
		}
	}
	return nil, 0, provider.ErrNotFound
}

func (im *impl) backfill(c ctx.Ctx, hit int, key string, val []byte, ttl time.Duration) {
	for idx := 0; idx < hit; idx++ {
		if err := im.layers[idx].Set(c, key, val, ttl); err != nil {
			c.WithFields(log.Fields{"err": err, "key": key, "layer": idx}).Warn("cache backfill failed")
		}
	}
}

// Set, Del and Clear touch every layer and report all failures together.
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	var err error
	for _, lyr := range im.layers {
		err = multierr.Append(err, lyr.Set(c, key, value, ttl))
	}
	return err
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	var err error
	for _, lyr := range im.layers {
		err = multierr.Append(err, lyr.Del(c, key))
	}
	return err
}

func (im *impl) Clear(c ctx.Ctx, prefix string) error {
	var err error
	for _, lyr := range im.layers {
		err = multierr.Append(err, lyr.Clear(c, prefix))
	}
	return err
}
