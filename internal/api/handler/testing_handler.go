package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openblog/bloglist/internal/core/ports"
)

// TestingHandler wipes every collection. It is only mounted when the server
// runs with ENV=test, for end-to-end suites that need a clean database.
type TestingHandler struct {
	users    ports.UserRepository
	blogs    ports.BlogRepository
	comments ports.CommentRepository
}

func NewTestingHandler(users ports.UserRepository, blogs ports.BlogRepository, comments ports.CommentRepository) *TestingHandler {
	return &TestingHandler{users: users, blogs: blogs, comments: comments}
}

// Reset handles POST /api/testing/reset.
func (h *TestingHandler) Reset(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.blogs.DeleteAll(ctx); err != nil {
		return err
	}
	if err := h.comments.DeleteAll(ctx); err != nil {
		return err
	}
	if err := h.users.DeleteAll(ctx); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
