package wallet

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrEmptyHash       = errors.New("signer returned empty operation hash")
)

// BridgeCfg points to a signer service holding the wallet keys. Address
// skips the signer lookup when the wallet is known up front.
type BridgeCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
	Address    string
	AuthToken  string
}

type addressResp struct {
	Address string `json:"address"`
}

type submitResp struct {
	Hash  string `json:"hash"`
	Error string `json:"error"`
}
