package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/recipess/recipe-api/internal/core/domain"
)

// Owner restricts a route to the user named by the given path parameter.
// Must run after Auth.
func Owner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := domain.SubjectFrom(c.Request().Context())
			if !ok {
				return domain.ErrMissingToken
			}
			if c.Param(param) != subject {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
