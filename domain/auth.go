package domain

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/nftlister/base/ctx"
)

type JwtCustomClaims struct {
	Subject string `json:"data"`
	jwt.StandardClaims
}

// AuthUsecase issues and checks the tokens guarding the write routes
type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, subject string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (subject string, err error)
}

type AuthUseCaseCfg struct {
	JwtSecret string `validate:"required"`
	TokenTtl  time.Duration
}
