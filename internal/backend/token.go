package backend

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	conf "usecase-sync/internal/conf/v1"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const defaultExpireHours = 24

// TokenIssuer 签发 HS256 令牌
type TokenIssuer struct {
	secret []byte
	expire time.Duration
	now    func() time.Time
}

func NewTokenIssuer(cfg *conf.Bootstrap, logger *zap.Logger) (*TokenIssuer, error) {
	var backend conf.Backend
	if cfg != nil && cfg.Backend != nil {
		backend = *cfg.Backend
	}

	var secret []byte
	if backend.JwtSecret != "" {
		secret = []byte(backend.JwtSecret)
	} else {
		// 生成默认密钥
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate jwt secret failed: %w", err)
		}
		logger.Warn("WARNING: Using auto-generated JWT secret, set backend.jwt_secret in config for production")
	}

	expireHours := backend.JwtExpireHours
	if expireHours <= 0 {
		expireHours = defaultExpireHours
	}

	return &TokenIssuer{
		secret: secret,
		expire: time.Duration(expireHours) * time.Hour,
		now:    time.Now,
	}, nil
}

func (i *TokenIssuer) Issue(account Account) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub": account.ID,
		"usr": account.Username,
		"iat": now.Unix(),
		"exp": now.Add(i.expire).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify 校验签名与有效期，返回令牌中的用户 ID
func (i *TokenIssuer) Verify(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("read subject: %w", err)
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}
