package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/recipess/recipe-api/internal/core/domain"
)

// ctxSubject returns the user id the Auth middleware put on the request
// context. A missing subject means the route was wired without Auth, so the
// request is treated as unauthenticated.
func ctxSubject(c echo.Context) (string, error) {
	subject, ok := domain.SubjectFrom(c.Request().Context())
	if !ok {
		return "", domain.ErrMissingToken
	}
	return subject, nil
}

// matchSubject rejects a body-supplied user id that differs from the token.
func matchSubject(subject, claimed string) error {
	if claimed != "" && claimed != subject {
		return domain.ErrForbidden
	}
	return nil
}
