package stargaze

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
)

const (
	defaultTimeout = 10 * time.Second

	ownedTokensQuery = `query OwnedTokens($owner: String!, $limit: Int, $offset: Int) {
  tokens(ownerAddrOrName: $owner, limit: $limit, offset: $offset) {
    tokens {
      tokenId
      name
      description
      imageUrl
      media { url type fallbackUrl }
      collection { contractAddress name }
      traits { name value }
    }
    pageInfo { total offset limit }
  }
}`
)

func NewClient(cfg *ClientCfg) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		client:     cfg.HttpClient,
		timeout:    timeout,
		graphqlUrl: cfg.GraphqlUrl,
		lcdUrl:     strings.TrimSuffix(cfg.LcdUrl, "/"),
	}
}

type client struct {
	client     http.Client
	timeout    time.Duration
	graphqlUrl string
	lcdUrl     string
}

func (c *client) GetOwnedTokens(ctx bCtx.Ctx, owner string, limit, offset int) (*TokensPage, error) {
	payload, err := json.Marshal(graphqlReq{
		Query: ownedTokensQuery,
		Variables: map[string]interface{}{
			"owner":  owner,
			"limit":  limit,
			"offset": offset,
		},
	})
	if err != nil {
		return nil, err
	}

	status, data, err := c.do(ctx, http.MethodPost, c.graphqlUrl, payload)
	if err != nil {
		ctx.WithFields(log.Fields{"url": c.graphqlUrl, "err": err}).Error("c.do failed")
		return nil, err
	}
	if status != http.StatusOK {
		ctx.WithFields(log.Fields{"url": c.graphqlUrl, "statusCode": status}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}

	resp := ownedTokensResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrGraphql, resp.Errors[0].Message)
	}
	return &resp.Data.Tokens, nil
}

func (c *client) SmartQuery(ctx bCtx.Ctx, contract string, query interface{}, container interface{}) error {
	q, err := json.Marshal(query)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/cosmwasm/wasm/v1/contract/%s/smart/%s", c.lcdUrl, contract, base64.URLEncoding.EncodeToString(q))

	resp := smartQueryResp{}
	if err := c.getJson(ctx, url, &resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Data, container); err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}

func (c *client) RawQuery(ctx bCtx.Ctx, contract string, key []byte) ([]byte, error) {
	url := fmt.Sprintf("%s/cosmwasm/wasm/v1/contract/%s/raw/%s", c.lcdUrl, contract, base64.URLEncoding.EncodeToString(key))

	resp := rawQueryResp{}
	if err := c.getJson(ctx, url, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *client) GetTx(ctx bCtx.Ctx, hash string) (*TxResponse, error) {
	url := fmt.Sprintf("%s/cosmos/tx/v1beta1/txs/%s", c.lcdUrl, hash)
	status, data, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("c.do failed")
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrTxNotFound
	}
	if status != http.StatusOK {
		ctx.WithFields(log.Fields{"url": url, "statusCode": status}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}

	resp := txResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return &resp.TxResponse, nil
}

func (c *client) GetLatestHeight(ctx bCtx.Ctx) (int64, error) {
	resp := latestBlockResp{}
	if err := c.getJson(ctx, c.lcdUrl+"/cosmos/base/tendermint/v1beta1/blocks/latest", &resp); err != nil {
		return 0, err
	}
	return resp.Block.Header.Height, nil
}

func (c *client) getJson(ctx bCtx.Ctx, url string, container interface{}) error {
	status, data, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("c.do failed")
		return err
	}
	if status != http.StatusOK {
		ctx.WithFields(log.Fields{"url": url, "statusCode": status}).Error("resp.StatusCode != 200")
		return ErrStatusCodeNotOk
	}
	if err := json.Unmarshal(data, container); err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}

func (c *client) do(ctx bCtx.Ctx, method, url string, payload []byte) (int, []byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
