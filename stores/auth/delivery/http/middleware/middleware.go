package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain"
)

const SubjectKey = "subject"

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Auth requires a bearer token issued by the auth usecase
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	bCtx, ok := c.Get("ctx").(ctx.Ctx)
	if !ok {
		bCtx = ctx.Background()
	}
	sub, err := m.auth.ParseToken(bCtx, key)
	if err != nil {
		bCtx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	}
	c.Set(SubjectKey, sub)
	return true, nil
}
