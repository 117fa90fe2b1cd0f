package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openblog/bloglist/internal/api/metrics"
	"github.com/openblog/bloglist/internal/core/domain"
	"github.com/openblog/bloglist/internal/core/ports"
)

// CommentHandler handles HTTP requests for blog comments. No authentication
// is required for either operation.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// List handles GET /api/blogs/:id/comments.
//
// @Summary      List comments on a blog
// @Tags         comments
// @Produce      json
// @Param        id  path  string  true  "Blog id"
// @Success      200  {array}  domain.Comment
// @Router       /api/blogs/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.ListForBlog(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}

// Add handles POST /api/blogs/:id/comments.
//
// @Summary      Comment on a blog
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      addCommentRequest  true  "Comment content"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/blogs/{id}/comments [post]
func (h *CommentHandler) Add(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Add(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, comment)
}
