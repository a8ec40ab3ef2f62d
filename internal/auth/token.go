package auth

import (
	"time"

	"go-hr-analytics/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs HS256 access tokens carrying user_id, email and role.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, clk clock.Clock) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock.OrSystem(clk)}
}

func (t *TokenIssuer) Issue(u User) (string, time.Time, error) {
	now := t.clock.Now()
	exp := now.Add(t.ttl)
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    u.Role,
		"iat":     now.Unix(),
		"exp":     exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	return signed, exp, err
}
