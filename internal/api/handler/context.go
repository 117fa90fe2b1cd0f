package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/openblog/bloglist/internal/api/middleware"
)

// ctxUserID returns the authenticated user's id, or the empty string when
// the request carried no usable token. Services treat the empty id as an
// unauthenticated request.
func ctxUserID(c echo.Context) string {
	id, _ := c.Get(middleware.CtxUserID).(string)
	return id
}
