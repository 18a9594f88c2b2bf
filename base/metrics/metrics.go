// Package metrics wraps datadog-go to faciliate metric recording.
// Following are naming convention of metric:
//   - Internal process time: *.time
//   - External latency: *.latency
//   - Error: *.err
//   - Miss / fallback: *.miss
package metrics

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/x-xyz/nftlister/base/env"
)

// TagValueNA marks a tag whose value does not apply
const TagValueNA = "N/A"

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

func globalTags() []string {
	tags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	if pod := env.PodName(); len(pod) > 0 {
		tags = append(tags, "pod:"+pod)
	}
	return tags
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		sink:    &ddSink{tags: globalTags(), pool: getPool},
	}
}

// Metrics prefixes every key with the package name and guards the
// datadog client against panics.
type Metrics struct {
	pkgName string
	sink    *ddSink
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// recoverPanic counts panics raised while tagging, usually an odd tag list
func (mt *Metrics) recoverPanic(key string, tags []string) {
	if err := recover(); err != nil {
		mt.sink.count(mt.key(key), 1, []string{"tag", strings.Join(tags, "#")})
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpavg.panic", tags)
	mt.sink.gauge(mt.key(key), val, tags)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpsum.panic", tags)
	mt.sink.count(mt.key(key), val, tags)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumphistogram.panic", tags)
	mt.sink.histogram(mt.key(key), val, tags)
}

type nopEnder struct{}

func (nopEnder) End() {}

// BumpTime starts a timer, End() records the elapsed time:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) (e Ender) {
	defer func() {
		if err := recover(); err != nil {
			mt.sink.count(mt.key("bumptime.panic"), 1, []string{"tag", strings.Join(tags, "#")})
			e = nopEnder{}
		}
	}()
	return mt.sink.timer(mt.key(key), tags)
}
