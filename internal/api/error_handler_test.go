package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/openblog/bloglist/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body["error"]
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"token missing", domain.ErrTokenMissing, http.StatusUnauthorized, "token missing or invalid"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"not owner", domain.ErrNotBlogOwner, http.StatusUnauthorized, "only the creator of the blog is authorized"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
		{"throttled", domain.ErrTooManyLogins, http.StatusTooManyRequests, "too many login attempts"},
		{"duplicate username", domain.ErrUsernameTaken, http.StatusBadRequest, "username must be unique"},
		{"short username", domain.ErrUsernameTooShort, http.StatusBadRequest, "username should be at least 3 characters"},
		{"absent password", domain.ErrPasswordAbsent, http.StatusBadRequest, "password is absent"},
		{"short password", domain.ErrPasswordTooShort, http.StatusBadRequest, "password should be at least 3 characters"},
		{"blog not found", domain.ErrBlogNotFound, http.StatusNotFound, "blog not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if msg != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("delete blog"), domain.ErrNotBlogOwner)
	code, msg := renderError(t, wrapped)
	if code != http.StatusUnauthorized || msg != "only the creator of the blog is authorized" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "title is required"))
	if code != http.StatusBadRequest || msg != "title is required" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}
