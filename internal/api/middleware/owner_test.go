package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recipess/recipe-api/internal/core/domain"
)

func ownerCtx(subject, userID string) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	if subject != "" {
		req := c.Request()
		c.SetRequest(req.WithContext(domain.WithSubject(req.Context(), subject)))
	}
	return c
}

func TestOwner_Allows(t *testing.T) {
	c := ownerCtx("user-1", "user-1")

	called := false
	err := Owner("userId")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestOwner_ForbidsOtherUser(t *testing.T) {
	c := ownerCtx("user-1", "user-2")

	err := Owner("userId")(func(echo.Context) error {
		t.Fatal("next must not be called")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOwner_RequiresAuth(t *testing.T) {
	c := ownerCtx("", "user-1")

	err := Owner("userId")(func(echo.Context) error { return nil })(c)
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
