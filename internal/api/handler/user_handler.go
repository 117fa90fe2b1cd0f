package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openblog/bloglist/internal/api/metrics"
	"github.com/openblog/bloglist/internal/core/ports"
)

// UserHandler handles HTTP requests for user registration and listing.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name,omitempty"`
	Blogs    []string `json:"blogs"`
}

// Register handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Name, req.Password)
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()

	return c.JSON(http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    user.Blogs,
	})
}

// List handles GET /api/users.
//
// @Summary      List users with their blogs
// @Tags         users
// @Produce      json
// @Success      200  {array}  ports.UserView
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if views == nil {
		views = []ports.UserView{}
	}
	return c.JSON(http.StatusOK, views)
}
