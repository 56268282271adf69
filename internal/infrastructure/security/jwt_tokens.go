package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/recipess/recipe-api/internal/core/domain"
)

// DefaultTokenTTL applies when NewJWT is given a non-positive ttl.
const DefaultTokenTTL = 24 * time.Hour

// JWT issues and verifies HS256 tokens carrying sub, iat, exp and a random jti.
// The same secret is used for both directions.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customises a JWT.
type Option func(*JWT)

// WithClock replaces time.Now for both issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) { j.now = now }
}

// WithTTL sets the token lifetime, allowing zero or negative values that
// NewJWT would otherwise replace with DefaultTokenTTL.
func WithTTL(ttl time.Duration) Option {
	return func(j *JWT) { j.ttl = ttl }
}

// NewJWT fails with domain.ErrMissingSecret when secret is empty.
func NewJWT(secret string, ttl time.Duration, opts ...Option) (*JWT, error) {
	if secret == "" {
		return nil, domain.ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	j := &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Issue signs a token asserting subjectID, valid from now until now+ttl.
func (j *JWT) Issue(subjectID string) (string, error) {
	if len(j.secret) == 0 {
		return "", domain.ErrMissingSecret
	}
	if subjectID == "" {
		return "", fmt.Errorf("issue token: empty subject: %w", domain.ErrInvalidInput)
	}

	now := j.now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses token, checks its signature and then its expiry, and returns
// the subject. Failures are reported as domain.ErrMissingToken,
// ErrMalformedToken, ErrInvalidSignature or ErrTokenExpired.
func (j *JWT) Verify(token string) (string, error) {
	if token == "" {
		return "", domain.ErrMissingToken
	}
	if len(j.secret) == 0 {
		return "", domain.ErrMissingSecret
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", classify(err), err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: no subject", domain.ErrMalformedToken)
	}
	return claims.Subject, nil
}

// classify maps jwt parse errors onto the domain taxonomy. Signature problems
// win over claim problems because the parser checks them first.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domain.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	default:
		return domain.ErrMalformedToken
	}
}
