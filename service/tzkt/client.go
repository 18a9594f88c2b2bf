package tzkt

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/nftlister/base/ctx"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// Client reads balances, bigmaps and operations from a TzKT indexer
type Client interface {
	GetTokenBalances(ctx bCtx.Ctx, account string, limit, offset int) ([]TokenBalance, error)
	GetOperatorKeys(ctx bCtx.Ctx, contract string, key OperatorKey) ([]BigMapKey, error)
	GetEntrypoints(ctx bCtx.Ctx, contract string) ([]Entrypoint, error)
	GetOperations(ctx bCtx.Ctx, hash string) ([]Operation, error)
	GetHead(ctx bCtx.Ctx) (*Head, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
}

type Contract struct {
	Alias   string `json:"alias"`
	Address string `json:"address"`
}

type Token struct {
	Id       int64    `json:"id"`
	Contract Contract `json:"contract"`
	TokenId  string   `json:"tokenId"`
	Standard string   `json:"standard"`
	// Metadata is kept raw, absent or malformed metadata is skipped by the caller
	Metadata json.RawMessage `json:"metadata"`
}

type Account struct {
	Address string `json:"address"`
}

type TokenBalance struct {
	Id      int64   `json:"id"`
	Account Account `json:"account"`
	Token   Token   `json:"token"`
	Balance string  `json:"balance"`
}

// TokenMetadata is the TZIP-21 subset rendered into an NFT
type TokenMetadata struct {
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Description  string          `json:"description"`
	ArtifactUri  string          `json:"artifactUri"`
	DisplayUri   string          `json:"displayUri"`
	ThumbnailUri string          `json:"thumbnailUri"`
	Attributes   json.RawMessage `json:"attributes"`
}

type OperatorKey struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	TokenId  string `json:"token_id"`
}

type BigMapKey struct {
	Id     int64           `json:"id"`
	Active bool            `json:"active"`
	Key    json.RawMessage `json:"key"`
	Value  json.RawMessage `json:"value"`
}

type Entrypoint struct {
	Name string `json:"name"`
}

type OperationStatus string

const (
	OperationStatusApplied     OperationStatus = "applied"
	OperationStatusFailed      OperationStatus = "failed"
	OperationStatusBacktracked OperationStatus = "backtracked"
	OperationStatusSkipped     OperationStatus = "skipped"
)

type Operation struct {
	Id     int64           `json:"id"`
	Type   string          `json:"type"`
	Level  int64           `json:"level"`
	Hash   string          `json:"hash"`
	Status OperationStatus `json:"status"`
}

type Head struct {
	Level int64 `json:"level"`
}
