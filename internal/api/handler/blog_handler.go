package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openblog/bloglist/internal/api/metrics"
	"github.com/openblog/bloglist/internal/core/domain"
	"github.com/openblog/bloglist/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog operations.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

type createBlogRequest struct {
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author" validate:"required"`
	URL    string `json:"url"    validate:"required"`
	Likes  *int   `json:"likes"  validate:"omitempty,gte=0"`
}

// updateBlogRequest carries a partial replace; absent fields keep their
// stored values.
type updateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes" validate:"omitempty,gte=0"`
}

type blogStatsResponse struct {
	TotalLikes int `json:"total_likes"`
	Favorite   any `json:"favorite"`
	MostBlogs  any `json:"most_blogs"`
	MostLikes  any `json:"most_likes"`
}

// List handles GET /api/blogs.
//
// @Summary      List all blogs with owner summaries
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  ports.BlogView
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if views == nil {
		views = []ports.BlogView{}
	}
	return c.JSON(http.StatusOK, views)
}

// Create handles POST /api/blogs.
//
// @Summary      Create a blog owned by the caller
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Blog fields"
// @Success      201   {object}  ports.BlogView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}, ctxUserID(c))
	if err != nil {
		return err
	}

	metrics.BlogsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /api/blogs/:id.
//
// @Summary      Update fields of an owned blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      updateBlogRequest  true  "Fields to replace"
// @Success      200   {object}  ports.BlogView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.BlogPatch{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}, ctxUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/blogs/:id.
//
// @Summary      Delete an owned blog
// @Tags         blogs
// @Security     BearerAuth
// @Param        id  path  string  true  "Blog id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), ctxUserID(c)); err != nil {
		return err
	}

	metrics.BlogsDeletedTotal.Inc()

	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /api/blogs/stats.
//
// @Summary      Aggregate statistics over all blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  blogStatsResponse
// @Router       /api/blogs/stats [get]
func (h *BlogHandler) Stats(c echo.Context) error {
	result, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	resp := blogStatsResponse{
		TotalLikes: result.TotalLikes,
		Favorite:   emptyIfNil(result.Favorite),
		MostBlogs:  emptyIfNil(result.MostBlogs),
		MostLikes:  emptyIfNil(result.MostLikes),
	}
	return c.JSON(http.StatusOK, resp)
}

// emptyIfNil renders absent aggregates as {} rather than null.
func emptyIfNil[T any](v *T) any {
	if v == nil {
		return struct{}{}
	}
	return v
}
