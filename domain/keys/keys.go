package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxMarketData is used for prefixing cached market data
	PfxMarketData = "marketData"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// MarketDataKey identifies one token inside a chain's market data cache
func MarketDataKey(contractAddress, tokenId string) string {
	return CustomKey("|", contractAddress, tokenId)
}

// MarketDataPrefix scopes market data entries per chain
func MarketDataPrefix(chain string) string {
	return RedisKey(PfxMarketData, chain)
}

// GetPrefix extracts the prefix of a key, at most two components are kept
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
