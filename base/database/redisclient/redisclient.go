package redisclient

import (
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/nftlister/base/backoff"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second

	defaultMaxIdle   = 200
	defaultMaxActive = 1024
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	// PoolMultiplier sizes the pool per cpu, 0 keeps the defaults
	PoolMultiplier float64
	// Retry dials up to three more times with exponential backoff
	Retry bool
}

func poolSize(param RedisParam) (maxIdle, maxActive int) {
	if param.PoolMultiplier <= 0 {
		return defaultMaxIdle, defaultMaxActive
	}
	cpu := float64(runtime.NumCPU())
	maxActive = int(cpu * param.PoolMultiplier)
	if maxActive < 1 {
		maxActive = 1
	}
	// allowing 25% idle connection
	maxIdle = maxActive / 4
	if maxIdle < 1 {
		maxIdle = 1
	}
	return maxIdle, maxActive
}

func newPool(uri, password string, param RedisParam) *redis.Pool {
	maxIdle, maxActive := poolSize(param)
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	_, err = c.Do("PING")
	return err
}

// ConnectRedis builds a pool for uri and checks it answers PING
func ConnectRedis(c ctx.Ctx, uri, password string, param RedisParam) (*redis.Pool, error) {
	p := newPool(uri, password, param)

	attempts := 1
	if param.Retry {
		attempts = 4
	}
	bo := backoff.NewExponential(time.Second, 8*time.Second)

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if boErr := bo.Backoff(c); boErr != nil {
				return nil, boErr
			}
		}
		if err = ping(p); err == nil {
			c.WithField("redisURI", uri).Info("redis connected")
			return p, nil
		}
		c.WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  i + 1,
		}).Error("fail to dial Redis")
	}
	p.Close()
	return nil, err
}
