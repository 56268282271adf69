package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/recipess/recipe-api/internal/api/metrics"
	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

// SubjectKey is the echo context key holding the authenticated user id.
const SubjectKey = "user_id"

// Auth verifies the access token and injects the subject into both the echo
// context and the request context. The token is read from
// "Authorization: Bearer <t>", then a bare Authorization value, then cookie.
// Rejections are returned as domain errors for the central error handler.
func Auth(verifier ports.TokenVerifier, cookie string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, err := verifier.Verify(extractToken(c, cookie))
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return err
			}

			c.Set(SubjectKey, subject)
			req := c.Request()
			c.SetRequest(req.WithContext(domain.WithSubject(req.Context(), subject)))

			return next(c)
		}
	}
}

func extractToken(c echo.Context, cookie string) string {
	if h := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)); h != "" {
		scheme, rest, found := strings.Cut(h, " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(rest)
		}
		return h
	}
	if cookie != "" {
		if ck, err := c.Cookie(cookie); err == nil {
			return ck.Value
		}
	}
	return ""
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "missing"
	case errors.Is(err, domain.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}
