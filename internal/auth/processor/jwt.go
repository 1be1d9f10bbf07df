package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autojoin-server/internal/config"
	"autojoin-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "autojoin-server"

var (
	ErrAuthDisabled    = errors.New("auth is disabled")
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
)

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

// AuthProcessor signs and validates operator tokens for the control API
type AuthProcessor struct {
	secret []byte
	logger *observability.Logger
	now    func() time.Time
}

func New(cfg config.AuthConfig, logger *observability.Logger) *AuthProcessor {
	return &AuthProcessor{secret: []byte(cfg.JWTSecret), logger: logger, now: time.Now}
}

// Enabled reports whether a secret is configured. Without one the control API is open.
func (p *AuthProcessor) Enabled() bool {
	return len(p.secret) > 0
}

// GenerateToken signs an operator token for subject valid for ttl
func (p *AuthProcessor) GenerateToken(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	if !p.Enabled() {
		return "", ErrAuthDisabled
	}
	now := p.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": issuer,
		"aud": issuer,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ValidateJWTToken checks signature, issuer and expiry and returns the claims
func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.WarnWithError(ctx, "token expired", err)
			return BaseClaims{}, ErrExpiredToken
		}
		p.logger.WarnWithError(ctx, "failed to parse token", err)
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}
	return baseClaims, nil
}
