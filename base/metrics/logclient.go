package metrics

import (
	"github.com/x-xyz/nftlister/base/log"
)

// logClient writes metrics to the debug log when no agent is configured
type logClient struct{}

func (logClient) emit(kind, name string, value interface{}, tags []string) {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric " + kind)
}

func (c logClient) Gauge(name string, value float64, tags []string, rate float64) error {
	c.emit("gauge", name, value, tags)
	return nil
}

func (c logClient) Count(name string, value int64, tags []string, rate float64) error {
	c.emit("count", name, value, tags)
	return nil
}

func (c logClient) Histogram(name string, value float64, tags []string, rate float64) error {
	c.emit("histogram", name, value, tags)
	return nil
}

func (c logClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	c.emit("time", name, value, tags)
	return nil
}
