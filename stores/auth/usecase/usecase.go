package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/nftlister/base/ctx"
	"github.com/x-xyz/nftlister/domain"
)

const defaultTokenTtl = 24 * time.Hour

type impl struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

func New(cfg *domain.AuthUseCaseCfg) domain.AuthUsecase {
	ttl := cfg.TokenTtl
	if ttl <= 0 {
		ttl = defaultTokenTtl
	}
	return &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, subject string) (string, error) {
	if len(strings.TrimSpace(subject)) == 0 {
		return "", domain.NewValidationError("token subject is required", nil)
	}

	claims := domain.JwtCustomClaims{
		Subject: subject,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  im.now().Unix(),
			ExpiresAt: im.now().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Subject, nil
	}

	return "", fmt.Errorf("invalid token")
}
