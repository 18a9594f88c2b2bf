package opensea

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
)

const (
	bearerKey      = "X-API-KEY"
	v1Api          = "https://api.opensea.io/api/v1"
	defaultTimeout = 10 * time.Second
)

func NewClient(cfg *ClientCfg) Client {
	baseUrl := cfg.BaseUrl
	if len(baseUrl) == 0 {
		baseUrl = v1Api
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: timeout,
		apikey:  cfg.Apikey,
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	apikey  string
	baseUrl string
}

func (c *client) GetAsset(ctx bCtx.Ctx, contract string, tokenId string) (*Asset, error) {
	url := fmt.Sprintf("%s/asset/%s/%s/?include_orders=true", c.baseUrl, strings.ToLower(contract), tokenId)
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &Asset{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) GetAssetsByOwner(ctx bCtx.Ctx, owner string, cursor string) (*AssetsResp, error) {
	base, err := url.Parse(fmt.Sprintf("%s/assets", c.baseUrl))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("owner", strings.ToLower(owner))
	params.Add("limit", "50")
	if cursor != "" {
		params.Add("cursor", cursor)
	}
	base.RawQuery = params.Encode()
	url := base.String()

	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}

	resp := AssetsResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return &resp, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	if len(c.apikey) > 0 {
		req.Header.Set(bearerKey, c.apikey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
