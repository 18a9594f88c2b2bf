package wallet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/base/log"
	"github.com/x-xyz/nftlister/domain"
)

// submission waits for injection only, confirmation is polled elsewhere
const defaultTimeout = 60 * time.Second

type bridge struct {
	client    http.Client
	timeout   time.Duration
	baseUrl   string
	address   string
	authToken string
}

// NewBridge creates a wallet session backed by a remote signer
func NewBridge(cfg *BridgeCfg) domain.WalletSession {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &bridge{
		client:    cfg.HttpClient,
		timeout:   timeout,
		baseUrl:   strings.TrimSuffix(cfg.BaseUrl, "/"),
		address:   cfg.Address,
		authToken: cfg.AuthToken,
	}
}

func (b *bridge) Address(ctx bCtx.Ctx) (string, error) {
	if len(b.address) > 0 {
		return b.address, nil
	}
	if len(b.baseUrl) == 0 {
		return "", domain.ErrWalletNotConfigured
	}

	resp := addressResp{}
	if err := b.do(ctx, http.MethodGet, "/address", nil, &resp); err != nil {
		ctx.WithField("err", err).Error("b.do failed")
		return "", err
	}
	if len(resp.Address) == 0 {
		return "", domain.ErrWalletNotConfigured
	}
	return resp.Address, nil
}

func (b *bridge) Submit(ctx bCtx.Ctx, call domain.ContractCall) (domain.OperationHash, error) {
	if len(b.baseUrl) == 0 {
		return "", domain.NewConfigError("Wallet signer not configured", nil)
	}

	resp := submitResp{}
	if err := b.do(ctx, http.MethodPost, "/submit", call, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"contract":   call.Contract,
			"entrypoint": call.Entrypoint,
		}).Error("b.do failed")
		return "", err
	}
	if len(resp.Error) > 0 {
		return "", fmt.Errorf("signer rejected %s: %s", call.Entrypoint, resp.Error)
	}
	if len(resp.Hash) == 0 {
		return "", ErrEmptyHash
	}
	return domain.OperationHash(resp.Hash), nil
}

func (b *bridge) do(ctx bCtx.Ctx, method, path string, payload interface{}, container interface{}) error {
	ctx, cancel := bCtx.WithTimeout(ctx, b.timeout)
	defer cancel()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseUrl+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if len(b.authToken) > 0 {
		req.Header.Set("Authorization", "Bearer "+b.authToken)
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		// the signer explains rejections in the body
		var s submitResp
		if json.Unmarshal(data, &s) == nil && len(s.Error) > 0 {
			return fmt.Errorf("%w: %s", ErrStatusCodeNotOk, s.Error)
		}
		return ErrStatusCodeNotOk
	}
	return json.Unmarshal(data, container)
}
