package env

import (
	"os"
)

const (
	// EnvPrefix is the prefix of every environment override read by viper
	EnvPrefix = "NFTLISTER"

	defaultConfigPath = "infra/configs/config.yaml"
)

// PodName example: k8ssta-nftlister-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// ConfigPath returns NFTLISTER_CONFIG or the default config location
func ConfigPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); len(p) > 0 {
		return p
	}
	return defaultConfigPath
}
