package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/delivery"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/uri"
	"github.com/x-xyz/nftlister/domain"
)

// Write routes, they wait for on-chain confirmations
const (
	ListPath = "/nfts/list"
	BurnPath = "/nfts/burn"
)

type HandlerCfg struct {
	NFT      domain.NFTUsecase
	Resolver *uri.Resolver
	// Auth guards the write routes
	Auth echo.MiddlewareFunc
	// Cache is applied to the wallet listing route when set
	Cache echo.MiddlewareFunc
	// Purge drops cached wallet listings after a successful list or burn
	Purge func(c ctx.Ctx) error
}

type nftHandler struct {
	nft      domain.NFTUsecase
	resolver *uri.Resolver
	purge    func(c ctx.Ctx) error
}

type chainResp struct {
	Chain       domain.ChainType `json:"chain"`
	DisplayName string           `json:"displayName"`
	Currency    string           `json:"currency"`
}

type nftResp struct {
	*domain.NFT
	DisplayImageUrl string             `json:"displayImageUrl,omitempty"`
	MarketData      *domain.MarketData `json:"marketData,omitempty"`
}

func New(e *echo.Echo, cfg *HandlerCfg) {
	h := &nftHandler{
		nft:      cfg.NFT,
		resolver: cfg.Resolver,
		purge:    cfg.Purge,
	}
	if h.resolver == nil {
		h.resolver = uri.NewResolver("", "")
	}

	walletMws := []echo.MiddlewareFunc{}
	if cfg.Cache != nil {
		walletMws = append(walletMws, cfg.Cache)
	}
	writeMws := []echo.MiddlewareFunc{}
	if cfg.Auth != nil {
		writeMws = append(writeMws, cfg.Auth)
	}

	e.GET("/chains", h.getChains)
	g := e.Group("/nfts")
	g.GET("/:chain/:address", h.getNFTs, walletMws...)
	g.POST("/market-data", h.getMarketData)
	e.POST(ListPath, h.listNFT, writeMws...)
	e.POST(BurnPath, h.burnNFT, writeMws...)
}

// getChains
//
//	@Summary		List supported chains
//	@Tags			nft
//	@Produce		json
//	@Success		200	{array}	chainResp
//	@Router			/chains [get]
func (h *nftHandler) getChains(c echo.Context) error {
	res := []chainResp{}
	for _, chain := range h.nft.SupportedChains() {
		info, err := domain.GetChainInfo(chain)
		if err != nil {
			continue
		}
		res = append(res, chainResp{Chain: chain, DisplayName: info.DisplayName, Currency: info.Currency})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getNFTs
//
//	@Summary		List NFTs owned by a wallet
//	@Description	Cached per query string. Market data is fetched for every NFT when withMarketData is set.
//	@Tags			nft
//	@Produce		json
//	@Param			chain			path		string	true	"chain, e.g. `tezos`"	example(tezos)
//	@Param			address			path		string	true	"wallet address"
//	@Param			withMarketData	query		bool	false	"attach market data"
//	@Success		200				{array}		nftResp
//	@Failure		400
//	@Failure		502
//	@Router			/nfts/{chain}/{address} [get]
func (h *nftHandler) getNFTs(c echo.Context) error {
	bCtx := c.Get("ctx").(ctx.Ctx)

	chain := domain.ChainType(c.Param("chain"))
	address := c.Param("address")
	withMarketData := false
	if raw := c.QueryParam("withMarketData"); len(raw) > 0 {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return delivery.MakeErrorResp(c, domain.NewValidationError("withMarketData must be a boolean", err))
		}
		withMarketData = v
	}

	nfts, err := h.nft.GetNFTs(bCtx, chain, address)
	if err != nil {
		bCtx.WithFields(log.Fields{"chain": chain, "address": address}).WithErr(err).Error("nft.GetNFTs failed")
		return delivery.MakeErrorResp(c, err)
	}

	res := make([]nftResp, len(nfts))
	for i, n := range nfts {
		res[i] = h.toResp(n)
	}

	if withMarketData && len(nfts) > 0 {
		data, err := h.nft.GetMarketDataBatch(bCtx, nfts)
		if err != nil {
			bCtx.WithFields(log.Fields{"chain": chain, "address": address}).WithErr(err).Error("nft.GetMarketDataBatch failed")
			return delivery.MakeErrorResp(c, err)
		}
		for i := range res {
			if i < len(data) {
				md := data[i]
				res[i].MarketData = &md
			}
		}
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getMarketData
//
//	@Summary	Get market data of a single NFT
//	@Tags		nft
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.NFT	true	"nft"
//	@Success	200		{object}	domain.MarketData
//	@Failure	400
//	@Router		/nfts/market-data [post]
func (h *nftHandler) getMarketData(c echo.Context) error {
	bCtx := c.Get("ctx").(ctx.Ctx)

	nft := &domain.NFT{}
	if err := bindAndValidate(c, nft); err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	data, err := h.nft.GetMarketData(bCtx, nft)
	if err != nil {
		bCtx.WithField("nft", nft.Id).WithErr(err).Error("nft.GetMarketData failed")
		return delivery.MakeErrorResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, data)
}

type listParams struct {
	NFT   *domain.NFT     `json:"nft" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// listNFT
//
//	@Summary		List an NFT on the chain marketplace
//	@Description	Approves the marketplace then creates the listing. Approval is skipped when already granted.
//	@Tags			nft
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			body	body		listParams				true	"nft and price"
//	@Success		200		{object}	object{listed=bool}
//	@Failure		400
//	@Failure		422
//	@Failure		502
//	@Failure		503
//	@Router			/nfts/list [post]
func (h *nftHandler) listNFT(c echo.Context) error {
	bCtx := c.Get("ctx").(ctx.Ctx)

	p := &listParams{}
	if err := bindAndValidate(c, p); err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	listed, err := h.nft.ListNFT(bCtx, p.NFT, p.Price)
	if err != nil {
		bCtx.WithField("nft", p.NFT.Id).WithErr(err).Error("nft.ListNFT failed")
		return delivery.MakeErrorResp(c, err)
	}
	if listed {
		h.purgeWallets(bCtx)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]bool{"listed": listed})
}

type burnParams struct {
	NFT *domain.NFT `json:"nft" validate:"required"`
}

// burnNFT
//
//	@Summary	Burn an NFT
//	@Tags		nft
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		body	body		burnParams			true	"nft"
//	@Success	200		{object}	object{burned=bool}
//	@Failure	400
//	@Failure	422
//	@Failure	502
//	@Router		/nfts/burn [post]
func (h *nftHandler) burnNFT(c echo.Context) error {
	bCtx := c.Get("ctx").(ctx.Ctx)

	p := &burnParams{}
	if err := bindAndValidate(c, p); err != nil {
		return delivery.MakeErrorResp(c, err)
	}

	if err := h.nft.BurnNFT(bCtx, p.NFT); err != nil {
		bCtx.WithField("nft", p.NFT.Id).WithErr(err).Error("nft.BurnNFT failed")
		return delivery.MakeErrorResp(c, err)
	}
	h.purgeWallets(bCtx)
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]bool{"burned": true})
}

// purgeWallets is best effort, the write already landed on chain
func (h *nftHandler) purgeWallets(c ctx.Ctx) {
	if h.purge == nil {
		return
	}
	if err := h.purge(c); err != nil {
		c.WithErr(err).Warn("purge wallet cache failed")
	}
}

func (h *nftHandler) toResp(n *domain.NFT) nftResp {
	res := nftResp{NFT: n}
	if len(n.ImageUrl) > 0 {
		res.DisplayImageUrl = h.resolver.Resolve(n.ImageUrl)
	}
	return res
}

func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return domain.NewValidationError("malformed request body", err)
	}
	if err := c.Validate(i); err != nil {
		return err
	}
	return nil
}
