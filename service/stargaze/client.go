package stargaze

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/nftlister/base/ctx"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrTxNotFound      = errors.New("tx not found")
	ErrGraphql         = errors.New("graphql error")
)

// Client talks to the stargaze GraphQL indexer and a cosmos LCD endpoint
type Client interface {
	GetOwnedTokens(ctx bCtx.Ctx, owner string, limit, offset int) (*TokensPage, error)
	SmartQuery(ctx bCtx.Ctx, contract string, query interface{}, container interface{}) error
	RawQuery(ctx bCtx.Ctx, contract string, key []byte) ([]byte, error)
	GetTx(ctx bCtx.Ctx, hash string) (*TxResponse, error)
	GetLatestHeight(ctx bCtx.Ctx) (int64, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	GraphqlUrl string
	LcdUrl     string
}

type Media struct {
	Url      string `json:"url"`
	Type     string `json:"type"`
	Fallback string `json:"fallbackUrl"`
}

type Collection struct {
	ContractAddress string `json:"contractAddress"`
	Name            string `json:"name"`
}

type Trait struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type Token struct {
	TokenId     string     `json:"tokenId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageUrl    string     `json:"imageUrl"`
	Media       *Media     `json:"media"`
	Collection  Collection `json:"collection"`
	Traits      []Trait    `json:"traits"`
}

type PageInfo struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type TokensPage struct {
	Tokens   []Token  `json:"tokens"`
	PageInfo PageInfo `json:"pageInfo"`
}

type TxResponse struct {
	Height int64  `json:"height,string"`
	TxHash string `json:"txhash"`
	Code   uint32 `json:"code"`
	RawLog string `json:"raw_log"`
}

type graphqlReq struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type ownedTokensResp struct {
	Data struct {
		Tokens TokensPage `json:"tokens"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type smartQueryResp struct {
	Data json.RawMessage `json:"data"`
}

type rawQueryResp struct {
	// base64 encoded by the LCD, decoded by encoding/json
	Data []byte `json:"data"`
}

type txResp struct {
	TxResponse TxResponse `json:"tx_response"`
}

type latestBlockResp struct {
	Block struct {
		Header struct {
			Height int64 `json:"height,string"`
		} `json:"header"`
	} `json:"block"`
}
