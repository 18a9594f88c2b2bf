package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/nftlister/domain"
)

func TestStatusOf(t *testing.T) {
	req := require.New(t)
	req.Equal(http.StatusBadRequest, StatusOf(domain.ErrMissingTokenIdentity))
	req.Equal(http.StatusBadRequest, StatusOf(domain.NewUnsupportedChainError("solana")))
	req.Equal(http.StatusUnprocessableEntity, StatusOf(domain.NewUnsupportedOperationError("no burn")))
	req.Equal(http.StatusServiceUnavailable, StatusOf(domain.ErrMarketplaceNotConfigured))
	req.Equal(http.StatusBadGateway, StatusOf(domain.NewApprovalError("x", nil)))
	req.Equal(http.StatusNotFound, StatusOf(domain.ErrNotFound))
	req.Equal(http.StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestMakeErrorResp(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	req.NoError(MakeErrorResp(c, domain.NewListingError("Failed to create listing on marketplace", errors.New("reverted"))))
	req.Equal(http.StatusBadGateway, rec.Code)

	body := struct {
		Data   ErrorBody `json:"data"`
		Status string    `json:"status"`
	}{}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	req.Equal("fail", body.Status)
	req.Equal(domain.KindListing, body.Data.Kind)
	req.Equal("Failed to create listing on marketplace", body.Data.Message)
}
