package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

type stubSessionRepo struct {
	sessions map[string]*domain.Session
	nextID   int
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func cloneSession(s *domain.Session) *domain.Session {
	clone := *s
	if s.UserIDs != nil {
		clone.UserIDs = append([]string{}, s.UserIDs...)
	}
	return &clone
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) (*domain.Session, error) {
	clone := cloneSession(s)
	r.nextID++
	clone.ID = "session-" + strconv.Itoa(r.nextID)
	r.sessions[clone.ID] = cloneSession(clone)
	return clone, nil
}

func (r *stubSessionRepo) FindAll(_ context.Context) ([]*domain.Session, error) {
	out := []*domain.Session{}
	for _, s := range r.sessions {
		out = append(out, cloneSession(s))
	}
	return out, nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *stubSessionRepo) Update(_ context.Context, s *domain.Session) (*domain.Session, error) {
	if _, ok := r.sessions[s.ID]; !ok {
		return nil, domain.ErrSessionNotFound
	}
	r.sessions[s.ID] = cloneSession(s)
	return cloneSession(s), nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func newTestSessionService() (*SessionService, *stubSessionRepo, *stubUserRepo) {
	sessions := newStubSessionRepo()
	users := newStubUserRepo()
	return NewSessionService(sessions, users, zerolog.Nop()), sessions, users
}

func sampleInput() ports.SessionInput {
	return ports.SessionInput{
		Name:        "Morning flow",
		Date:        time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		Description: "A gentle start to the day",
		TeacherID:   "teacher-1",
	}
}

func TestSessionService_Create(t *testing.T) {
	svc, _, _ := newTestSessionService()

	created, err := svc.Create(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.UserIDs == nil {
		t.Fatalf("participant list must default to empty, not nil")
	}
	if len(created.UserIDs) != 0 {
		t.Fatalf("expected no participants, got %v", created.UserIDs)
	}
}

func TestSessionService_Update(t *testing.T) {
	svc, _, _ := newTestSessionService()

	created, err := svc.Create(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := sampleInput()
	in.Name = "Evening flow"
	updated, err := svc.Update(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Evening flow" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.ID != created.ID {
		t.Fatalf("update must not change the id")
	}
}

func TestSessionService_Update_Unknown(t *testing.T) {
	svc, _, _ := newTestSessionService()

	_, err := svc.Update(context.Background(), "missing", sampleInput())
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_Delete_Unknown(t *testing.T) {
	svc, _, _ := newTestSessionService()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_Participate(t *testing.T) {
	svc, sessions, users := newTestSessionService()
	users.byEmail["alice@example.com"] = &domain.User{ID: "user-1", Email: "alice@example.com"}

	created, err := svc.Create(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Participate(context.Background(), created.ID, "user-1"); err != nil {
		t.Fatalf("participate: %v", err)
	}

	stored, err := sessions.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !stored.Participates("user-1") {
		t.Fatalf("expected user-1 enrolled, got %v", stored.UserIDs)
	}

	if err := svc.Participate(context.Background(), created.ID, "user-1"); !errors.Is(err, domain.ErrAlreadyParticipating) {
		t.Fatalf("expected ErrAlreadyParticipating, got %v", err)
	}
}

func TestSessionService_Participate_UnknownSessionOrUser(t *testing.T) {
	svc, _, users := newTestSessionService()
	users.byEmail["alice@example.com"] = &domain.User{ID: "user-1", Email: "alice@example.com"}

	if err := svc.Participate(context.Background(), "missing", "user-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	created, err := svc.Create(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Participate(context.Background(), created.ID, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSessionService_Unparticipate(t *testing.T) {
	svc, sessions, users := newTestSessionService()
	users.byEmail["alice@example.com"] = &domain.User{ID: "user-1", Email: "alice@example.com"}
	users.byEmail["bob@example.com"] = &domain.User{ID: "user-2", Email: "bob@example.com"}

	created, err := svc.Create(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, id := range []string{"user-1", "user-2"} {
		if err := svc.Participate(context.Background(), created.ID, id); err != nil {
			t.Fatalf("participate %s: %v", id, err)
		}
	}

	if err := svc.Unparticipate(context.Background(), created.ID, "user-1"); err != nil {
		t.Fatalf("unparticipate: %v", err)
	}

	stored, err := sessions.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Participates("user-1") {
		t.Fatalf("expected user-1 removed, got %v", stored.UserIDs)
	}
	if !stored.Participates("user-2") {
		t.Fatalf("user-2 should remain enrolled, got %v", stored.UserIDs)
	}

	if err := svc.Unparticipate(context.Background(), created.ID, "user-1"); !errors.Is(err, domain.ErrNotParticipating) {
		t.Fatalf("expected ErrNotParticipating, got %v", err)
	}
}
