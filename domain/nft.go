package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ChainType string

const (
	ChainTezos    ChainType = "tezos"
	ChainStargaze ChainType = "stargaze"
	ChainEthereum ChainType = "ethereum"
)

func (c ChainType) String() string {
	return string(c)
}

// UnnamedNFT is used when neither metadata name nor symbol exist
const UnnamedNFT = "Unnamed NFT"

const (
	attrContractAddress = "contractAddress"
	attrTokenId         = "tokenId"
	attrSymbol          = "symbol"
)

// NFT is the chain independent token record built by the chain adapters.
// Records are rebuilt on every fetch and never mutated afterwards.
type NFT struct {
	Id          string     `json:"id"`
	ChainType   ChainType  `json:"chainType" validate:"required"`
	Name        string     `json:"name"`
	Collection  string     `json:"collection,omitempty"`
	Description string     `json:"description,omitempty"`
	ImageUrl    string     `json:"imageUrl,omitempty"`
	Attributes  Attributes `json:"attributes"`
}

// NFTId joins the identity of a token
func NFTId(contractAddress, tokenId string) string {
	return fmt.Sprintf("%s-%s", contractAddress, tokenId)
}

// IsListable reports whether the join keys required by listing, burning
// and market data are present.
func (n *NFT) IsListable() bool {
	return n != nil && len(n.Attributes.ContractAddress) > 0 && len(n.Attributes.TokenId) > 0
}

// Attributes keeps the join keys typed, everything else merged from chain
// metadata lives in Extra. It marshals to one flat JSON object.
type Attributes struct {
	ContractAddress string
	TokenId         string
	Symbol          string
	Extra           ExtraAttributes
}

func isCoreAttribute(key string) bool {
	return key == attrContractAddress || key == attrTokenId || key == attrSymbol
}

func (a Attributes) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	first := true
	write := func(key string, value interface{}) error {
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		k, _ := json.Marshal(key)
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if len(a.ContractAddress) > 0 {
		_ = write(attrContractAddress, a.ContractAddress)
	}
	if len(a.TokenId) > 0 {
		_ = write(attrTokenId, a.TokenId)
	}
	if len(a.Symbol) > 0 {
		_ = write(attrSymbol, a.Symbol)
	}
	for _, k := range a.Extra.Keys() {
		v, _ := a.Extra.Get(k)
		if err := write(k, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a *Attributes) UnmarshalJSON(data []byte) error {
	*a = Attributes{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if t, err := dec.Token(); err != nil {
		return err
	} else if d, ok := t.(json.Delim); !ok || d != '{' {
		return ErrInvalidJsonFormat
	}

	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := t.(string)
		if !ok {
			return ErrInvalidJsonFormat
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		switch key {
		case attrContractAddress:
			a.ContractAddress = scalarString(raw)
		case attrTokenId:
			a.TokenId = scalarString(raw)
		case attrSymbol:
			a.Symbol = scalarString(raw)
		default:
			var v interface{}
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			a.Extra.Set(key, v)
		}
	}
	_, err := dec.Token()
	return err
}

// scalarString accepts "1" as well as 1 for identity fields
func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// ExtraAttributes is an insertion ordered string -> value mapping
type ExtraAttributes struct {
	keys   []string
	values map[string]interface{}
}

// Set adds or replaces key. Keys owned by Attributes are ignored.
func (e *ExtraAttributes) Set(key string, value interface{}) {
	if isCoreAttribute(key) {
		return
	}
	if e.values == nil {
		e.values = make(map[string]interface{})
	}
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

func (e ExtraAttributes) Get(key string) (interface{}, bool) {
	v, ok := e.values[key]
	return v, ok
}

func (e ExtraAttributes) Keys() []string {
	keys := make([]string, len(e.keys))
	copy(keys, e.keys)
	return keys
}

func (e ExtraAttributes) Len() int {
	return len(e.keys)
}
