package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recipess/recipe-api/internal/api/middleware"
	"github.com/recipess/recipe-api/internal/core/domain"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// withSubject mimics the Auth middleware.
func withSubject(c echo.Context, subject string) echo.Context {
	c.Set(middleware.SubjectKey, subject)
	req := c.Request()
	c.SetRequest(req.WithContext(domain.WithSubject(req.Context(), subject)))
	return c
}

// httpCode returns the status of an *echo.HTTPError, or 0.
func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}
