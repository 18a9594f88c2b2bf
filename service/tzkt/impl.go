package tzkt

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
)

const defaultTimeout = 10 * time.Second

func NewClient(cfg *ClientCfg) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: timeout,
		baseUrl: strings.TrimSuffix(cfg.BaseUrl, "/"),
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
}

func (c *client) GetTokenBalances(ctx bCtx.Ctx, account string, limit, offset int) ([]TokenBalance, error) {
	params := url.Values{}
	params.Add("account", account)
	params.Add("balance.gt", "0")
	params.Add("token.standard", "fa2")
	params.Add("token.metadata.artifactUri.null", "false")
	params.Add("limit", strconv.Itoa(limit))
	params.Add("offset", strconv.Itoa(offset))

	resp := []TokenBalance{}
	if err := c.getJson(ctx, "/v1/tokens/balances", params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) GetOperatorKeys(ctx bCtx.Ctx, contract string, key OperatorKey) ([]BigMapKey, error) {
	params := url.Values{}
	params.Add("key.owner", key.Owner)
	params.Add("key.operator", key.Operator)
	params.Add("key.token_id", key.TokenId)
	params.Add("active", "true")

	resp := []BigMapKey{}
	path := fmt.Sprintf("/v1/contracts/%s/bigmaps/operators/keys", url.PathEscape(contract))
	if err := c.getJson(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) GetEntrypoints(ctx bCtx.Ctx, contract string) ([]Entrypoint, error) {
	params := url.Values{}
	params.Add("all", "true")

	resp := []Entrypoint{}
	path := fmt.Sprintf("/v1/contracts/%s/entrypoints", url.PathEscape(contract))
	if err := c.getJson(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) GetOperations(ctx bCtx.Ctx, hash string) ([]Operation, error) {
	resp := []Operation{}
	path := fmt.Sprintf("/v1/operations/%s", url.PathEscape(hash))
	if err := c.getJson(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) GetHead(ctx bCtx.Ctx) (*Head, error) {
	resp := &Head{}
	if err := c.getJson(ctx, "/v1/head", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) getJson(ctx bCtx.Ctx, path string, params url.Values, container interface{}) error {
	u := c.baseUrl + path
	if len(params) > 0 {
		u = u + "?" + params.Encode()
	}
	data, err := c.get(ctx, u)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("c.get failed")
		return err
	}
	if err := json.Unmarshal(data, container); err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
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
	return ioutil.ReadAll(resp.Body)
}
