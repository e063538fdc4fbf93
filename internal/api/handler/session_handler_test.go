package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

type stubSessionService struct {
	createFn        func(ctx context.Context, in ports.SessionInput) (*domain.Session, error)
	findAllFn       func(ctx context.Context) ([]*domain.Session, error)
	findByIDFn      func(ctx context.Context, id string) (*domain.Session, error)
	updateFn        func(ctx context.Context, id string, in ports.SessionInput) (*domain.Session, error)
	deleteFn        func(ctx context.Context, id string) error
	participateFn   func(ctx context.Context, sessionID, userID string) error
	unparticipateFn func(ctx context.Context, sessionID, userID string) error
}

func (s *stubSessionService) Create(ctx context.Context, in ports.SessionInput) (*domain.Session, error) {
	return s.createFn(ctx, in)
}

func (s *stubSessionService) FindAll(ctx context.Context) ([]*domain.Session, error) {
	return s.findAllFn(ctx)
}

func (s *stubSessionService) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubSessionService) Update(ctx context.Context, id string, in ports.SessionInput) (*domain.Session, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubSessionService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubSessionService) Participate(ctx context.Context, sessionID, userID string) error {
	return s.participateFn(ctx, sessionID, userID)
}

func (s *stubSessionService) Unparticipate(ctx context.Context, sessionID, userID string) error {
	return s.unparticipateFn(ctx, sessionID, userID)
}

func TestSessionHandler_Create(t *testing.T) {
	stub := &stubSessionService{
		createFn: func(_ context.Context, in ports.SessionInput) (*domain.Session, error) {
			if in.Name != "Morning flow" || in.TeacherID != "teacher-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Session{ID: "session-1", Name: in.Name, TeacherID: in.TeacherID}, nil
		},
	}
	h := NewSessionHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/session",
		`{"name":"Morning flow","date":"2025-07-01T09:00:00Z","teacher_id":"teacher-1","description":"A gentle start"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestSessionHandler_Create_Validation(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{
		createFn: func(context.Context, ports.SessionInput) (*domain.Session, error) {
			t.Fatalf("service must not be called for an invalid payload")
			return nil, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPost, "/api/session", `{"name":"No teacher"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSessionHandler_Update_Unknown(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{
		updateFn: func(context.Context, string, ports.SessionInput) (*domain.Session, error) {
			return nil, domain.ErrSessionNotFound
		},
	})

	c, _ := newJSONContext(t, http.MethodPut, "/api/session/missing",
		`{"name":"Morning flow","date":"2025-07-01T09:00:00Z","teacher_id":"teacher-1","description":"A gentle start"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Update(c)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound passed through, got %v", err)
	}
}

func TestSessionHandler_Delete(t *testing.T) {
	var deleted string
	h := NewSessionHandler(&stubSessionService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/session/session-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("session-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "session-1" {
		t.Fatalf("expected session-1 deleted, got %q", deleted)
	}
}

func TestSessionHandler_Participate(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{
		participateFn: func(_ context.Context, sessionID, userID string) error {
			if sessionID != "session-1" || userID != "user-1" {
				t.Fatalf("unexpected args: %s %s", sessionID, userID)
			}
			return nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/session/session-1/participate/user-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "userId")
	c.SetParamValues("session-1", "user-1")

	if err := h.Participate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionHandler_Unparticipate_NotEnrolled(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{
		unparticipateFn: func(context.Context, string, string) error {
			return domain.ErrNotParticipating
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/session/session-1/participate/user-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "userId")
	c.SetParamValues("session-1", "user-1")

	err := h.Unparticipate(c)
	if !errors.Is(err, domain.ErrNotParticipating) {
		t.Fatalf("expected ErrNotParticipating passed through, got %v", err)
	}
}
