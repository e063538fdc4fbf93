package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yogaflow/studio-api/internal/auth"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

// UserHandler handles user account endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// FindByID handles GET /api/user/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /api/user/{id} [get]
func (h *UserHandler) FindByID(c echo.Context) error {
	user, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/user/:id. Only the account owner or an admin
// may delete an account; everyone else gets 403.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := auth.CanModify(ctx, id); err != nil {
		return err
	}
	if err := h.service.Delete(ctx, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
