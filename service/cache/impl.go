package cache

import (
	"encoding/json"
	"errors"

	"golang.org/x/sync/singleflight"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/domain/keys"
	"github.com/x-xyz/nftlister/service/cache/provider"
)

type impl struct {
	cfg   ServiceConfig
	group singleflight.Group
	met   metrics.Service
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}
	return &impl{
		cfg: config,
		met: metrics.New("cache"),
	}
}

func (im *impl) fullKey(key string) string {
	return keys.RedisKey(im.cfg.Pfx, key)
}

func (im *impl) logger(c ctx.Ctx, key string, err error) log.Logger {
	return c.WithFields(log.Fields{"err": err, "key": key, "pfx": im.cfg.Pfx})
}

// GetByFunc reads key into container, loading and storing it through getter
// on a miss. A failed store still hands the loaded value back.
func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		im.met.BumpSum("hit", 1, "pfx", im.cfg.Pfx)
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	im.met.BumpSum("miss", 1, "pfx", im.cfg.Pfx)

	raw, err, _ := im.group.Do(key, func() (interface{}, error) {
		val, err := getter()
		if err != nil {
			return nil, err
		}
		bs, err := im.cfg.Serialize(val)
		if err != nil {
			return nil, xerrors.Errorf("serialize %s: %w", key, err)
		}
		if err := im.cfg.Cache.Set(c, im.fullKey(key), bs, im.cfg.Ttl); err != nil {
			im.logger(c, key, err).Warn("cache.Set failed, serving uncached value")
		}
		return bs, nil
	})
	if err != nil {
		im.logger(c, key, err).Error("GetByFunc getter failed")
		return err
	}

	if err := im.cfg.Deserialize(raw.([]byte), container); err != nil {
		return xerrors.Errorf("deserialize %s: %w", key, err)
	}
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	val, _, err := im.cfg.Cache.Get(c, im.fullKey(key))
	if errors.Is(err, provider.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		im.logger(c, key, err).Error("cache.Get failed")
		return err
	}
	if err := im.cfg.Deserialize(val, container); err != nil {
		im.logger(c, key, err).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	val, err := im.cfg.Serialize(value)
	if err != nil {
		im.logger(c, key, err).Error("serialize failed")
		return err
	}
	if err := im.cfg.Cache.Set(c, im.fullKey(key), val, im.cfg.Ttl); err != nil {
		im.logger(c, key, err).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if err := im.cfg.Cache.Del(c, im.fullKey(key)); err != nil {
		im.logger(c, key, err).Error("cache.Del failed")
		return err
	}
	return nil
}

func (im *impl) Clear(c ctx.Ctx) error {
	if err := im.cfg.Cache.Clear(c, im.fullKey("")); err != nil {
		im.logger(c, "", err).Error("cache.Clear failed")
		return err
	}
	return nil
}
