package stargaze

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/nftlister/base/ctx"
)

type stargazeSuite struct {
	suite.Suite

	server *httptest.Server
	mux    *http.ServeMux
	im     Client
}

func (s *stargazeSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.im = NewClient(&ClientCfg{
		HttpClient: http.Client{},
		GraphqlUrl: s.server.URL + "/graphql",
		LcdUrl:     s.server.URL,
	})
}

func (s *stargazeSuite) TearDownTest() {
	s.server.Close()
}

func TestStargaze(t *testing.T) {
	suite.Run(t, new(stargazeSuite))
}

func (s *stargazeSuite) TestGetOwnedTokens() {
	s.mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		req := graphqlReq{}
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("stars1owner", req.Variables["owner"])
		s.Equal(float64(50), req.Variables["limit"])
		w.Write([]byte(`{"data":{"tokens":{"tokens":[{"tokenId":"7","name":"Bad Kid #7","imageUrl":"ipfs://img","collection":{"contractAddress":"stars1collection","name":"Bad Kids"},"traits":[{"name":"Background","value":"Red"}]}],"pageInfo":{"total":1,"offset":0,"limit":50}}}}`))
	})

	page, err := s.im.GetOwnedTokens(bCtx.Background(), "stars1owner", 50, 0)
	s.NoError(err)
	s.Len(page.Tokens, 1)
	s.Equal("7", page.Tokens[0].TokenId)
	s.Equal("stars1collection", page.Tokens[0].Collection.ContractAddress)
	s.Equal("Red", page.Tokens[0].Traits[0].Value)
	s.Equal(1, page.PageInfo.Total)
}

func (s *stargazeSuite) TestGraphqlError() {
	s.mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"bad owner"}]}`))
	})

	_, err := s.im.GetOwnedTokens(bCtx.Background(), "x", 50, 0)
	s.ErrorIs(err, ErrGraphql)
}

func (s *stargazeSuite) TestSmartAndRawQuery() {
	s.mux.HandleFunc("/cosmwasm/wasm/v1/contract/stars1collection/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		arg, err := base64.URLEncoding.DecodeString(parts[len(parts)-1])
		s.NoError(err)
		switch parts[len(parts)-2] {
		case "smart":
			s.JSONEq(`{"approvals":{"token_id":"7"}}`, string(arg))
			w.Write([]byte(`{"data":{"approvals":[{"spender":"stars1market","expires":{"never":{}}}]}}`))
		case "raw":
			s.Equal("contract_info", string(arg))
			w.Write([]byte(`{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"contract":"crates.io:sg721-base","version":"3.0.0"}`)) + `"}`))
		}
	})

	res := struct {
		Approvals []struct {
			Spender string `json:"spender"`
		} `json:"approvals"`
	}{}
	s.NoError(s.im.SmartQuery(bCtx.Background(), "stars1collection", map[string]interface{}{
		"approvals": map[string]interface{}{"token_id": "7"},
	}, &res))
	s.Equal("stars1market", res.Approvals[0].Spender)

	raw, err := s.im.RawQuery(bCtx.Background(), "stars1collection", []byte("contract_info"))
	s.NoError(err)
	s.Contains(string(raw), "sg721-base")
}

func (s *stargazeSuite) TestTxAndHeight() {
	s.mux.HandleFunc("/cosmos/tx/v1beta1/txs/HASH", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tx_response":{"height":"120","txhash":"HASH","code":0,"raw_log":""}}`))
	})
	s.mux.HandleFunc("/cosmos/tx/v1beta1/txs/MISSING", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	s.mux.HandleFunc("/cosmos/base/tendermint/v1beta1/blocks/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"block":{"header":{"height":"125"}}}`))
	})

	tx, err := s.im.GetTx(bCtx.Background(), "HASH")
	s.NoError(err)
	s.Equal(int64(120), tx.Height)
	s.Equal(uint32(0), tx.Code)

	_, err = s.im.GetTx(bCtx.Background(), "MISSING")
	s.Equal(ErrTxNotFound, err)

	h, err := s.im.GetLatestHeight(bCtx.Background())
	s.NoError(err)
	s.Equal(int64(125), h)
}
