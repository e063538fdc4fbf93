package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yogaflow/studio-api/internal/api/metrics"
	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email     string `json:"email"     validate:"required,email,max=50"`
	FirstName string `json:"firstName" validate:"required,min=3,max=20"`
	LastName  string `json:"lastName"  validate:"required,min=3,max=20"`
	Password  string `json:"password"  validate:"required,min=6,max=40"`
}

// loginResponse is the body returned on successful authentication. Username
// carries the login email, matching the token subject.
type loginResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		Type:      "Bearer",
		ID:        user.ID,
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	})
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, user)
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}

func registerResult(err error) string {
	if errors.Is(err, domain.ErrEmailTaken) {
		return "email_taken"
	}
	return "error"
}
