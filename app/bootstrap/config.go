package bootstrap

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/nftlister/base/env"
	bValidator "github.com/x-xyz/nftlister/base/validator"
	"github.com/x-xyz/nftlister/domain"
)

type HttpConfig struct {
	Port     string        `mapstructure:"port"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTtl time.Duration `mapstructure:"cacheTtl"`
}

type AuthConfig struct {
	JwtSecret string        `mapstructure:"jwtSecret"`
	TokenTtl  time.Duration `mapstructure:"tokenTtl"`
}

type CacheConfig struct {
	Ttl    time.Duration `mapstructure:"ttl"`
	SizeMB int           `mapstructure:"sizeMB"`
}

type RedisConfig struct {
	Uri            string  `mapstructure:"uri"`
	Password       string  `mapstructure:"password"`
	PoolMultiplier float64 `mapstructure:"poolMultiplier"`
}

type GatewayConfig struct {
	Ipfs    string `mapstructure:"ipfs"`
	Arweave string `mapstructure:"arweave"`
}

type ConfirmationConfig struct {
	Count        int           `mapstructure:"count" validate:"gte=0"`
	PollInterval time.Duration `mapstructure:"pollInterval"`
	// Timeout bounds a single confirmation wait, 0 waits until the client leaves
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// WriteTimeout is the request deadline of the listing and burn routes.
// Listing waits for two confirmations, approval then listing.
func (c ConfirmationConfig) WriteTimeout() time.Duration {
	return 2 * c.Timeout
}

type TezosConfig struct {
	TzktUrl             string `mapstructure:"tzktUrl" validate:"required,url"`
	MarketplaceContract string `mapstructure:"marketplaceContract"`
	WalletAddress       string `mapstructure:"walletAddress"`
	WalletBridgeUrl     string `mapstructure:"walletBridgeUrl" validate:"omitempty,url"`
	WalletBridgeToken   string `mapstructure:"walletBridgeToken"`
	ObjktUrl            string `mapstructure:"objktUrl" validate:"omitempty,url"`
	TeiaUrl             string `mapstructure:"teiaUrl" validate:"omitempty,url"`
}

type StargazeConfig struct {
	LcdUrl              string `mapstructure:"lcdUrl" validate:"required,url"`
	GraphqlUrl          string `mapstructure:"graphqlUrl" validate:"required,url"`
	MarketplaceContract string `mapstructure:"marketplaceContract"`
	WalletAddress       string `mapstructure:"walletAddress"`
	WalletBridgeUrl     string `mapstructure:"walletBridgeUrl" validate:"omitempty,url"`
	WalletBridgeToken   string `mapstructure:"walletBridgeToken"`
	MarketUrl           string `mapstructure:"marketUrl" validate:"omitempty,url"`
	BurnAddress         string `mapstructure:"burnAddress"`
}

type EthereumConfig struct {
	RpcUrl              string `mapstructure:"rpcUrl" validate:"required,url"`
	ChainId             int64  `mapstructure:"chainId" validate:"required"`
	Throttle            int    `mapstructure:"throttle"`
	OpenseaUrl          string `mapstructure:"openseaUrl" validate:"omitempty,url"`
	OpenseaApiKey       string `mapstructure:"openseaApiKey"`
	MarketplaceContract string `mapstructure:"marketplaceContract"`
	PrivateKey          string `mapstructure:"privateKey"`
	EnableEns           bool   `mapstructure:"enableEns"`
}

type DiscordConfig struct {
	BotKey    string `mapstructure:"botKey"`
	ChannelId string `mapstructure:"channelId"`
}

// Config mirrors infra/configs/config.yaml. A chain section left out of the
// file disables that chain.
type Config struct {
	Debug        bool               `mapstructure:"debug"`
	EnvName      string             `mapstructure:"env_name"`
	AppName      string             `mapstructure:"app_name"`
	Http         HttpConfig         `mapstructure:"http"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Cache        CacheConfig        `mapstructure:"cache"`
	RedisCache   RedisConfig        `mapstructure:"redis_cache"`
	Gateway      GatewayConfig      `mapstructure:"gateway"`
	Confirmation ConfirmationConfig `mapstructure:"confirmation"`
	BatchWorkers int                `mapstructure:"batchWorkers"`
	Tezos        *TezosConfig       `mapstructure:"tezos"`
	Stargaze     *StargazeConfig    `mapstructure:"stargaze"`
	Ethereum     *EthereumConfig    `mapstructure:"ethereum"`
	Discord      DiscordConfig      `mapstructure:"discord"`
}

func setDefaults() {
	viper.SetDefault("http.port", ":8080")
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.cacheTtl", 30*time.Second)
	viper.SetDefault("auth.tokenTtl", 24*time.Hour)
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("cache.sizeMB", 16)
	viper.SetDefault("redis_cache.poolMultiplier", 20)
	viper.SetDefault("confirmation.count", 1)
	viper.SetDefault("confirmation.pollInterval", 5*time.Second)
	viper.SetDefault("confirmation.timeout", 10*time.Minute)
	viper.SetDefault("batchWorkers", 8)
}

// LoadConfig reads path into the global viper, environment variables
// prefixed with NFTLISTER_ override file values.
func LoadConfig(path string) (*Config, error) {
	if len(path) == 0 {
		path = env.ConfigPath()
	}
	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvPrefix(env.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, domain.NewConfigError("failed to read config "+path, err)
	}
	return decodeConfig()
}

func decodeConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, domain.NewConfigError("failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the wired chain sections
func (c *Config) Validate() error {
	v := bValidator.New()
	if err := v.Struct(c); err != nil {
		return domain.NewConfigError(err.Error(), err)
	}
	return nil
}
