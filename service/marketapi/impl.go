package marketapi

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/base/metrics"
	"github.com/x-xyz/nftlister/base/ptr"
	"github.com/x-xyz/nftlister/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

const defaultTimeout = 10 * time.Second

type provider struct {
	cfg     ProviderCfg
	baseUrl string
	met     metrics.Service
}

// NewProvider builds a lossy provider over a JSON pricing endpoint
func NewProvider(cfg ProviderCfg) domain.MarketDataProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &provider{
		cfg:     cfg,
		baseUrl: strings.TrimSuffix(cfg.BaseUrl, "/"),
		met:     metrics.New("marketapi"),
	}
}

func (p *provider) Name() string {
	return p.cfg.Name
}

func (p *provider) Fetch(ctx bCtx.Ctx, nft *domain.NFT) (*domain.MarketData, error) {
	if !nft.IsListable() {
		return nil, nil
	}

	path := strings.NewReplacer(
		placeholderContract, url.PathEscape(nft.Attributes.ContractAddress),
		placeholderTokenId, url.PathEscape(nft.Attributes.TokenId),
	).Replace(p.cfg.PathTemplate)
	u := p.baseUrl + path

	defer p.met.BumpTime("fetch.latency", "provider", p.cfg.Name).End()
	data, err := p.get(ctx, u)
	if err != nil {
		p.met.BumpSum("fetch.err", 1, "provider", p.cfg.Name)
		ctx.WithFields(log.Fields{
			"provider": p.cfg.Name,
			"url":      u,
			"err":      err,
		}).Warn("p.get failed")
		return nil, nil
	}

	var body interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		ctx.WithFields(log.Fields{
			"provider": p.cfg.Name,
			"url":      u,
			"err":      err,
		}).Warn("json.Unmarshal failed")
		return nil, nil
	}

	return &domain.MarketData{
		Currency:        p.cfg.Currency,
		FloorPrice:      p.price(lookup(body, p.cfg.Fields.FloorPrice)),
		LastSalePrice:   p.price(lookup(body, p.cfg.Fields.LastSalePrice)),
		CurrentListings: ParseNumeric(lookup(body, p.cfg.Fields.CurrentListings)),
		Source:          p.cfg.Name,
	}, nil
}

func (p *provider) price(v interface{}) *float64 {
	n := ParseNumeric(v)
	if n == nil || p.cfg.PriceDecimals == 0 {
		return n
	}
	return ptr.Float64(decimal.NewFromFloat(*n).Shift(-p.cfg.PriceDecimals).InexactFloat64())
}

func (p *provider) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if len(p.cfg.ApikeyHeader) > 0 {
		req.Header.Set(p.cfg.ApikeyHeader, p.cfg.Apikey)
	}
	resp, err := p.cfg.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatusCodeNotOk
	}
	return ioutil.ReadAll(resp.Body)
}

// lookup walks a dotted path through decoded JSON objects
func lookup(body interface{}, path string) interface{} {
	if len(path) == 0 {
		return nil
	}
	cur := body
	for _, k := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		if cur, ok = m[k]; !ok {
			return nil
		}
	}
	return cur
}

// ParseNumeric accepts a JSON number or a numeric string, anything else is absent
func ParseNumeric(v interface{}) *float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return nil
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = n
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return ptr.Float64(f)
}
