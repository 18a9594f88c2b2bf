package tzkt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/nftlister/base/ctx"
)

type tzktSuite struct {
	suite.Suite

	server *httptest.Server
	mux    *http.ServeMux
	im     Client
}

func (s *tzktSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.im = NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    5 * time.Second,
		BaseUrl:    s.server.URL + "/",
	})
}

func (s *tzktSuite) TearDownTest() {
	s.server.Close()
}

func TestTzkt(t *testing.T) {
	suite.Run(t, new(tzktSuite))
}

func (s *tzktSuite) TestGetTokenBalances() {
	s.mux.HandleFunc("/v1/tokens/balances", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("tz1Owner", q.Get("account"))
		s.Equal("0", q.Get("balance.gt"))
		s.Equal("fa2", q.Get("token.standard"))
		s.Equal("false", q.Get("token.metadata.artifactUri.null"))
		s.Equal("100", q.Get("limit"))
		s.Equal("200", q.Get("offset"))
		w.Write([]byte(`[{"id":1,"account":{"address":"tz1Owner"},"token":{"id":9,"contract":{"alias":"OBJKT","address":"KT1NFTContract"},"tokenId":"1","standard":"fa2","metadata":{"name":"Piece"}},"balance":"1"}]`))
	})

	res, err := s.im.GetTokenBalances(bCtx.Background(), "tz1Owner", 100, 200)
	s.NoError(err)
	s.Len(res, 1)
	s.Equal("KT1NFTContract", res[0].Token.Contract.Address)
	s.Equal("OBJKT", res[0].Token.Contract.Alias)
	s.Equal("1", res[0].Token.TokenId)
	s.JSONEq(`{"name":"Piece"}`, string(res[0].Token.Metadata))
}

func (s *tzktSuite) TestStatusNotOk() {
	s.mux.HandleFunc("/v1/tokens/balances", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := s.im.GetTokenBalances(bCtx.Background(), "tz1Owner", 100, 0)
	s.Equal(ErrStatusCodeNotOk, err)
}

func (s *tzktSuite) TestGetOperatorKeys() {
	s.mux.HandleFunc("/v1/contracts/KT1NFTContract/bigmaps/operators/keys", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("tz1Owner", q.Get("key.owner"))
		s.Equal("KT1MarketPlace", q.Get("key.operator"))
		s.Equal("1", q.Get("key.token_id"))
		s.Equal("true", q.Get("active"))
		w.Write([]byte(`[{"id":3,"active":true,"key":{"owner":"tz1Owner","operator":"KT1MarketPlace","token_id":"1"},"value":{}}]`))
	})

	res, err := s.im.GetOperatorKeys(bCtx.Background(), "KT1NFTContract", OperatorKey{
		Owner:    "tz1Owner",
		Operator: "KT1MarketPlace",
		TokenId:  "1",
	})
	s.NoError(err)
	s.Len(res, 1)
	s.True(res[0].Active)
}

func (s *tzktSuite) TestOperationsAndHead() {
	s.mux.HandleFunc("/v1/operations/opHash", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"type":"transaction","level":100,"hash":"opHash","status":"applied"}]`))
	})
	s.mux.HandleFunc("/v1/head", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"level":102}`))
	})
	s.mux.HandleFunc("/v1/contracts/KT1NFTContract/entrypoints", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"burn"},{"name":"transfer"}]`))
	})

	ops, err := s.im.GetOperations(bCtx.Background(), "opHash")
	s.NoError(err)
	s.Equal(OperationStatusApplied, ops[0].Status)
	s.Equal(int64(100), ops[0].Level)

	head, err := s.im.GetHead(bCtx.Background())
	s.NoError(err)
	s.Equal(int64(102), head.Level)

	eps, err := s.im.GetEntrypoints(bCtx.Background(), "KT1NFTContract")
	s.NoError(err)
	s.Equal([]Entrypoint{{Name: "burn"}, {Name: "transfer"}}, eps)
}
