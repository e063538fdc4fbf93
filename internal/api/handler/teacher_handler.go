package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yogaflow/studio-api/internal/core/ports"
)

// TeacherHandler handles read-only teacher endpoints.
type TeacherHandler struct {
	service ports.TeacherService
}

func NewTeacherHandler(service ports.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// FindAll handles GET /api/teacher.
//
// @Summary      List all teachers
// @Tags         teachers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Teacher
// @Router       /api/teacher [get]
func (h *TeacherHandler) FindAll(c echo.Context) error {
	teachers, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teachers)
}

// FindByID handles GET /api/teacher/:id.
//
// @Summary      Get a teacher
// @Tags         teachers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Teacher ID"
// @Success      200  {object}  domain.Teacher
// @Failure      404  {object}  map[string]string
// @Router       /api/teacher/{id} [get]
func (h *TeacherHandler) FindByID(c echo.Context) error {
	teacher, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teacher)
}
