package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain/mocks"
)

type authMiddlewareSuite struct {
	suite.Suite
	auth *mocks.AuthUsecase
	m    *AuthMiddleware
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(authMiddlewareSuite))
}

func (s *authMiddlewareSuite) SetupTest() {
	s.auth = &mocks.AuthUsecase{}
	s.m = New(s.auth)
}

func (s *authMiddlewareSuite) TearDownTest() {
	s.auth.AssertExpectations(s.T())
}

func (s *authMiddlewareSuite) serve(header string) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	r := httptest.NewRequest(http.MethodPost, "/nfts/list", nil)
	if len(header) > 0 {
		r.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(r, rec)
	c.Set("ctx", ctx.Background())
	err := s.m.Auth()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, c, err
}

func (s *authMiddlewareSuite) TestValidToken() {
	s.auth.On("ParseToken", mock.Anything, "good").Return("operator", nil).Once()
	rec, c, err := s.serve("Bearer good")
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("operator", c.Get(SubjectKey))
}

func (s *authMiddlewareSuite) TestInvalidToken() {
	s.auth.On("ParseToken", mock.Anything, "bad").Return("", errors.New("expired")).Once()
	_, _, err := s.serve("Bearer bad")
	s.Error(err)
	he, ok := err.(*echo.HTTPError)
	s.True(ok)
	s.Equal(http.StatusUnauthorized, he.Code)
}

func (s *authMiddlewareSuite) TestMissingToken() {
	_, _, err := s.serve("")
	s.Error(err)
	_, ok := err.(*echo.HTTPError)
	s.True(ok)
}
