package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftlister/base/log"
)

const (
	// needs to be 2^n
	poolSize = 16
	poolMask = poolSize - 1

	defaultDdPort = 8125
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// clientPool hands out statsd clients round robin so buffers are not shared
type clientPool struct {
	clients []statsCli
	idx     uint32
}

func (p *clientPool) next() statsCli {
	i := atomic.AddUint32(&p.idx, 1) & poolMask
	return p.clients[int(i)%len(p.clients)]
}

var (
	poolOnce sync.Once
	pool     *clientPool
)

func getPool() *clientPool {
	poolOnce.Do(func() {
		pool = newClientPool(viper.GetString("datadog_host"), viper.GetInt("datadog_port"))
	})
	return pool
}

// newClientPool falls back to debug logging when no agent host is set
func newClientPool(host string, port int) *clientPool {
	p := &clientPool{clients: make([]statsCli, poolSize)}
	if len(host) == 0 {
		for i := range p.clients {
			p.clients[i] = logClient{}
		}
		return p
	}
	if port == 0 {
		port = defaultDdPort
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	for i := range p.clients {
		cli, err := statsd.New(addr, statsd.WithMaxMessagesPerPayload(bufferMetrics))
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, metrics go to logs")
			p.clients[i] = logClient{}
			continue
		}
		p.clients[i] = cli
	}
	return p
}

// ddSink tags and forwards values to the client pool
type ddSink struct {
	tags []string
	pool func() *clientPool
}

func (s *ddSink) report(fn string, key string, val float64, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": fn}).Error("Bump fail")
	}
}

func (s *ddSink) gauge(key string, val float64, tags []string) {
	s.report("BumpAvg", key, val, s.pool().next().Gauge(key, val, s.withTags(tags), 1))
}

func (s *ddSink) count(key string, val float64, tags []string) {
	s.report("BumpSum", key, val, s.pool().next().Count(key, int64(val), s.withTags(tags), 1))
}

func (s *ddSink) histogram(key string, val float64, tags []string) {
	s.report("BumpHistogram", key, val, s.pool().next().Histogram(key, val, s.withTags(tags), 1))
}

func (s *ddSink) timer(key string, tags []string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   key,
		tags:  s.withTags(tags),
		sink:  s,
	}
}

func (s *ddSink) withTags(kvs []string) []string {
	tags := make([]string, 0, len(s.tags)+len(kvs)/2)
	tags = append(tags, s.tags...)
	return append(tags, parseTag(kvs)...)
}

// parseTag turns k/v pairs into datadog "k:v" tags
func parseTag(kvs []string) []string {
	if len(kvs)%2 != 0 {
		log.Log().WithField("tags", kvs).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		arr[i/2] = kvs[i] + ":" + kvs[i+1]
	}
	return arr
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
	sink  *ddSink
}

func (t *timeTracker) End() {
	ms := float64(time.Since(t.start)) / float64(time.Millisecond)
	t.sink.report("BumpTime", t.key, ms, t.sink.pool().next().TimeInMilliseconds(t.key, ms, t.tags, 1))
}
