package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/nftlister/app/bootstrap"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/goroutine"
	"github.com/x-xyz/nftlister/base/log"
	bValidator "github.com/x-xyz/nftlister/base/validator"
	mmiddleware "github.com/x-xyz/nftlister/middleware"
	auth_middleware "github.com/x-xyz/nftlister/stores/auth/delivery/http/middleware"
	hc_delivery "github.com/x-xyz/nftlister/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftlister/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftlister/stores/healthcheck/usecase"
	nft_delivery "github.com/x-xyz/nftlister/stores/nft/delivery/http"

	_ "github.com/x-xyz/nftlister/app/api/docs"
)

//	@title			NFT Lister API
//	@version		1.0
//	@description	List wallet NFTs across tezos, stargaze and ethereum, with market data, listing and burning.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				issue a token with `cli --sign-token <address>` and apply with `bearer {token}`
func main() {
	configPath := pflag.String("config", "", "path of the yaml config, defaults to NFTLISTER_CONFIG or infra/configs/config.yaml")
	pflag.Parse()

	cfg, err := bootstrap.LoadConfig(*configPath)
	if err != nil {
		log.Log().WithErr(err).Panic("bootstrap.LoadConfig failed")
	}
	if err := log.Init(cfg.Debug); err != nil {
		log.Log().WithErr(err).Panic("log.Init failed")
	}
	defer log.Sync()
	if cfg.Debug {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	context := ctx.Background()
	app, err := bootstrap.Build(context, cfg)
	if err != nil {
		context.WithErr(err).Panic("bootstrap.Build failed")
	}

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(cfg.Http.Timeout).
		WithRouteTimeout(cfg.Confirmation.WriteTimeout(), nft_delivery.ListPath, nft_delivery.BurnPath)
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	httpCache := mmiddleware.NewHttpCache(app.Redis, cfg.Http.CacheTtl)

	handlerCfg := &nft_delivery.HandlerCfg{
		NFT:      app.NFT,
		Resolver: app.Resolver,
		Cache:    httpCache.Middleware(),
		Purge:    httpCache.Purge,
	}
	if app.Auth != nil {
		handlerCfg.Auth = auth_middleware.New(app.Auth).Auth()
	} else {
		context.Warn("auth.jwtSecret is empty, write routes are disabled")
		handlerCfg.Auth = func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusForbidden, "write routes disabled")
			}
		}
	}
	nft_delivery.New(e, handlerCfg)

	hcUsecase := hc_usecase.New(hc_repo.New(app.Redis), app.NFT)
	hc_delivery.New(e, hcUsecase)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	serverDone := goroutine.RecoverableGo(func() {
		if err := e.Start(cfg.Http.Port); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}, goroutine.WithName("http"))

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case <-serverDone:
		log.Log().Warn("server stopped")
	}

	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
