package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yogaflow/studio-api/internal/api/metrics"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

// SessionHandler handles HTTP requests for session operations. Authentication
// and the admin gate are enforced by route middleware; domain errors are
// mapped centrally by the API error handler.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// FindAll handles GET /api/session.
//
// @Summary      List all sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Session
// @Failure      401  {object}  auth.UnauthorizedResponse
// @Router       /api/session [get]
func (h *SessionHandler) FindAll(c echo.Context) error {
	sessions, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}

// FindByID handles GET /api/session/:id.
//
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  domain.Session
// @Failure      404  {object}  map[string]string
// @Router       /api/session/{id} [get]
func (h *SessionHandler) FindByID(c echo.Context) error {
	session, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

// Create handles POST /api/session (admin only).
//
// @Summary      Create a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sessionRequest  true  "Session details"
// @Success      201   {object}  domain.Session
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/session [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	session, err := h.service.Create(c.Request().Context(), ports.SessionInput{
		Name:        req.Name,
		Date:        req.Date,
		Description: req.Description,
		TeacherID:   req.TeacherID,
		UserIDs:     req.Users,
	})
	if err != nil {
		return err
	}

	metrics.SessionsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, session)
}

// Update handles PUT /api/session/:id (admin only). Unknown targets yield
// 404 rather than an empty success.
//
// @Summary      Update a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Session ID"
// @Param        body  body      sessionRequest  true  "Session details"
// @Success      200   {object}  domain.Session
// @Failure      404   {object}  map[string]string
// @Router       /api/session/{id} [put]
func (h *SessionHandler) Update(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	session, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.SessionInput{
		Name:        req.Name,
		Date:        req.Date,
		Description: req.Description,
		TeacherID:   req.TeacherID,
		UserIDs:     req.Users,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

// Delete handles DELETE /api/session/:id (admin only).
//
// @Summary      Delete a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/session/{id} [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Participate handles POST /api/session/:id/participate/:userId.
//
// @Summary      Join a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string  true  "Session ID"
// @Param        userId  path  string  true  "User ID"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/session/{id}/participate/{userId} [post]
func (h *SessionHandler) Participate(c echo.Context) error {
	if err := h.service.Participate(c.Request().Context(), c.Param("id"), c.Param("userId")); err != nil {
		return err
	}
	metrics.ParticipationsTotal.WithLabelValues("join").Inc()
	return c.NoContent(http.StatusOK)
}

// Unparticipate handles DELETE /api/session/:id/participate/:userId.
//
// @Summary      Leave a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string  true  "Session ID"
// @Param        userId  path  string  true  "User ID"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/session/{id}/participate/{userId} [delete]
func (h *SessionHandler) Unparticipate(c echo.Context) error {
	if err := h.service.Unparticipate(c.Request().Context(), c.Param("id"), c.Param("userId")); err != nil {
		return err
	}
	metrics.ParticipationsTotal.WithLabelValues("leave").Inc()
	return c.NoContent(http.StatusOK)
}
