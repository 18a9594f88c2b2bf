package bootstrap

import (
	"time"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/database/redisclient"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/base/uri"
	"github.com/x-xyz/nftlister/domain"
	"github.com/x-xyz/nftlister/service/chain"
	"github.com/x-xyz/nftlister/service/ens"
	"github.com/x-xyz/nftlister/service/marketapi"
	"github.com/x-xyz/nftlister/service/notifier"
	"github.com/x-xyz/nftlister/service/opensea"
	"github.com/x-xyz/nftlister/service/redis"
	"github.com/x-xyz/nftlister/service/stargaze"
	"github.com/x-xyz/nftlister/service/tzkt"
	"github.com/x-xyz/nftlister/service/wallet"
	auth_usecase "github.com/x-xyz/nftlister/stores/auth/usecase"
	evm_usecase "github.com/x-xyz/nftlister/stores/evm/usecase"
	listing_usecase "github.com/x-xyz/nftlister/stores/listing/usecase"
	marketdata_repository "github.com/x-xyz/nftlister/stores/marketdata/repository"
	marketdata_usecase "github.com/x-xyz/nftlister/stores/marketdata/usecase"
	nft_usecase "github.com/x-xyz/nftlister/stores/nft/usecase"
	stargaze_usecase "github.com/x-xyz/nftlister/stores/stargaze/usecase"
	tezos_usecase "github.com/x-xyz/nftlister/stores/tezos/usecase"
)

const redisCacheName = "cache"

// App holds the wired collaborators shared by the api and the cli
type App struct {
	Config   *Config
	NFT      domain.NFTUsecase
	Auth     domain.AuthUsecase
	Redis    redis.Service
	Resolver *uri.Resolver
}

// Build wires one adapter per configured chain section
func Build(c ctx.Ctx, cfg *Config) (*App, error) {
	app := &App{
		Config:   cfg,
		Resolver: uri.NewResolver(cfg.Gateway.Ipfs, cfg.Gateway.Arweave),
	}

	if len(cfg.RedisCache.Uri) > 0 {
		c.Info("init redis cache")
		pool, err := redisclient.ConnectRedis(c, cfg.RedisCache.Uri, cfg.RedisCache.Password, redisclient.RedisParam{
			PoolMultiplier: cfg.RedisCache.PoolMultiplier,
			Retry:          true,
		})
		if err != nil {
			c.WithField("err", err).Error("redisclient.ConnectRedis failed")
			return nil, domain.NewConfigError("failed to connect redis", err)
		}
		app.Redis = redis.New(redisCacheName, metrics.New(redisCacheName), pool)
	}

	if len(cfg.Auth.JwtSecret) > 0 {
		app.Auth = auth_usecase.New(&domain.AuthUseCaseCfg{
			JwtSecret: cfg.Auth.JwtSecret,
			TokenTtl:  cfg.Auth.TokenTtl,
		})
	}

	ntf, err := notifier.NewDiscord(&notifier.DiscordCfg{
		BotKey:    cfg.Discord.BotKey,
		ChannelId: cfg.Discord.ChannelId,
		Resolve:   app.Resolver.Resolve,
	})
	if err != nil {
		c.WithField("err", err).Error("notifier.NewDiscord failed")
		return nil, domain.NewConfigError("failed to init discord notifier", err)
	}

	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Confirmations: cfg.Confirmation.Count,
	})

	adapters := []domain.ChainAdapter{}
	if cfg.Tezos != nil {
		adapters = append(adapters, buildTezos(cfg, app.Redis, listing, ntf))
	}
	if cfg.Stargaze != nil {
		adapters = append(adapters, buildStargaze(cfg, app.Redis, listing, ntf))
	}
	if cfg.Ethereum != nil {
		adapter, err := buildEthereum(c, cfg, app.Redis, listing, ntf)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}

	for _, a := range adapters {
		c.WithField("chain", a.ChainType()).Info("chain adapter ready")
	}

	app.NFT = nft_usecase.New(&nft_usecase.NFTUseCaseCfg{
		Adapters:     adapters,
		BatchWorkers: cfg.BatchWorkers,
	})
	return app, nil
}

func buildMarketData(cfg *Config, chain domain.ChainType, rds redis.Service, providers []domain.MarketDataProvider) domain.MarketDataUsecase {
	info, _ := domain.GetChainInfo(chain)
	return marketdata_usecase.New(&marketdata_usecase.MarketDataUseCaseCfg{
		Chain:     chain,
		Currency:  info.Currency,
		Providers: providers,
		Repo: marketdata_repository.New(&marketdata_repository.RepoCfg{
			Chain:  chain,
			SizeMB: cfg.Cache.SizeMB,
			// freshness is judged by the reader, storage only bounds eviction
			StorageTtl: 2 * cfg.Cache.Ttl,
			Redis:      rds,
		}),
		Ttl: cfg.Cache.Ttl,
	})
}

func buildTezos(cfg *Config, rds redis.Service, listing domain.ListingUsecase, ntf domain.Notifier) domain.ChainAdapter {
	tc := cfg.Tezos
	providers := []domain.MarketDataProvider{}
	if len(tc.ObjktUrl) > 0 {
		providers = append(providers, marketapi.NewProvider(withTimeout(marketapi.ObjktCfg(tc.ObjktUrl), cfg.Http.Timeout)))
	}
	if len(tc.TeiaUrl) > 0 {
		providers = append(providers, marketapi.NewProvider(withTimeout(marketapi.TeiaCfg(tc.TeiaUrl), cfg.Http.Timeout)))
	}

	return tezos_usecase.New(&tezos_usecase.TezosUseCaseCfg{
		Tzkt: tzkt.NewClient(&tzkt.ClientCfg{
			Timeout: cfg.Http.Timeout,
			BaseUrl: tc.TzktUrl,
		}),
		Wallet: wallet.NewBridge(&wallet.BridgeCfg{
			Timeout:   cfg.Http.Timeout,
			BaseUrl:   tc.WalletBridgeUrl,
			Address:   tc.WalletAddress,
			AuthToken: tc.WalletBridgeToken,
		}),
		MarketData:          buildMarketData(cfg, domain.ChainTezos, rds, providers),
		Listing:             listing,
		Notifier:            ntf,
		MarketplaceContract: tc.MarketplaceContract,
		PollInterval:        cfg.Confirmation.PollInterval,
	})
}

func buildStargaze(cfg *Config, rds redis.Service, listing domain.ListingUsecase, ntf domain.Notifier) domain.ChainAdapter {
	sc := cfg.Stargaze
	providers := []domain.MarketDataProvider{}
	if len(sc.MarketUrl) > 0 {
		providers = append(providers, marketapi.NewProvider(withTimeout(marketapi.StargazeCfg(sc.MarketUrl), cfg.Http.Timeout)))
	}

	return stargaze_usecase.New(&stargaze_usecase.StargazeUseCaseCfg{
		Client: stargaze.NewClient(&stargaze.ClientCfg{
			Timeout:    cfg.Http.Timeout,
			GraphqlUrl: sc.GraphqlUrl,
			LcdUrl:     sc.LcdUrl,
		}),
		Wallet: wallet.NewBridge(&wallet.BridgeCfg{
			Timeout:   cfg.Http.Timeout,
			BaseUrl:   sc.WalletBridgeUrl,
			Address:   sc.WalletAddress,
			AuthToken: sc.WalletBridgeToken,
		}),
		MarketData:          buildMarketData(cfg, domain.ChainStargaze, rds, providers),
		Listing:             listing,
		Notifier:            ntf,
		MarketplaceContract: sc.MarketplaceContract,
		BurnAddress:         sc.BurnAddress,
		PollInterval:        cfg.Confirmation.PollInterval,
	})
}

func buildEthereum(c ctx.Ctx, cfg *Config, rds redis.Service, listing domain.ListingUsecase, ntf domain.Notifier) (domain.ChainAdapter, error) {
	ec := cfg.Ethereum
	chainCfg := &chain.ClientCfg{
		RpcUrl:     ec.RpcUrl,
		ChainId:    ec.ChainId,
		PrivateKey: ec.PrivateKey,
		Throttle:   ec.Throttle,
	}
	backend, err := chain.DialBackend(c, chainCfg)
	if err != nil {
		return nil, domain.NewConfigError("failed to dial ethereum rpc", err)
	}
	client, err := chain.NewKeyedClient(c, backend, chainCfg)
	if err != nil {
		return nil, domain.NewConfigError("invalid ethereum private key", err)
	}

	osClient := opensea.NewClient(&opensea.ClientCfg{
		Timeout: cfg.Http.Timeout,
		Apikey:  ec.OpenseaApiKey,
		BaseUrl: ec.OpenseaUrl,
	})

	var ensService ens.ENS
	if ec.EnableEns {
		ensService = ens.New(backend, rds)
	}

	c.WithFields(log.Fields{"chainId": ec.ChainId, "signer": client.From().Hex()}).Info("ethereum client ready")

	return evm_usecase.New(&evm_usecase.EvmUseCaseCfg{
		OpenSea:             osClient,
		Ens:                 ensService,
		Chain:               client,
		MarketData:          buildMarketData(cfg, domain.ChainEthereum, rds, []domain.MarketDataProvider{opensea.NewMarketDataProvider(osClient)}),
		Listing:             listing,
		Notifier:            ntf,
		MarketplaceContract: ec.MarketplaceContract,
		PollInterval:        cfg.Confirmation.PollInterval,
	}), nil
}

func withTimeout(cfg marketapi.ProviderCfg, timeout time.Duration) marketapi.ProviderCfg {
	cfg.Timeout = timeout
	return cfg
}
