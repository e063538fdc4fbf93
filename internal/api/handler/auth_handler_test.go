package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.User{
				ID:        "user-1",
				Email:     "alice@example.com",
				FirstName: "Alice",
				LastName:  "Doe",
				Admin:     true,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	if resp["type"] != "Bearer" {
		t.Fatalf("expected type Bearer, got %v", resp["type"])
	}
	if resp["id"] != "user-1" || resp["username"] != "alice@example.com" {
		t.Fatalf("unexpected principal fields: %+v", resp)
	}
	if resp["firstName"] != "Alice" || resp["lastName"] != "Doe" || resp["admin"] != true {
		t.Fatalf("unexpected profile fields: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatalf("service must not be called for an invalid payload")
			return "", nil, nil
		},
	})

	for _, body := range []string{
		`{}`,
		`{"email":"not-an-email","password":"x"}`,
		`{"email":"a@example.com"}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login", body)
		if err := h.Login(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_ServiceError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passed through, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "bob@example.com" || in.FirstName != "Bob" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{
				ID:           "user-2",
				Email:        in.Email,
				FirstName:    in.FirstName,
				LastName:     in.LastName,
				PasswordHash: "$2a$10$hash",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"bob@example.com","firstName":"Bob","lastName":"Martin","password":"s3cret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	// The stored hash must never appear in the response body.
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("response leaks the password hash: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called for an invalid payload")
			return nil, nil
		},
	})

	for name, body := range map[string]string{
		"short first name": `{"email":"a@example.com","firstName":"Al","lastName":"Martin","password":"s3cret"}`,
		"short password":   `{"email":"a@example.com","firstName":"Alice","lastName":"Martin","password":"abc"}`,
		"bad email":        `{"email":"nope","firstName":"Alice","lastName":"Martin","password":"s3cret"}`,
		"missing fields":   `{"email":"a@example.com"}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register", body)
		if err := h.Register(c); err != nil {
			t.Fatalf("%s: handler error: %v", name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"bob@example.com","firstName":"Bob","lastName":"Martin","password":"s3cret"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken passed through, got %v", err)
	}
}
