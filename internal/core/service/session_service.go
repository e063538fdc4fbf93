package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

// SessionService implements session CRUD and participation.
type SessionService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewSessionService(sessions ports.SessionRepository, users ports.UserRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, users: users, logger: logger}
}

func (s *SessionService) Create(ctx context.Context, in ports.SessionInput) (*domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		Name:        in.Name,
		Date:        in.Date,
		Description: in.Description,
		TeacherID:   in.TeacherID,
		UserIDs:     in.UserIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if session.UserIDs == nil {
		session.UserIDs = []string{}
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info().Str("session_id", created.ID).Str("name", created.Name).Msg("session created")
	return created, nil
}

func (s *SessionService) FindAll(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.FindAll(ctx)
}

func (s *SessionService) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.FindByID(ctx, id)
}

// Update replaces the mutable fields of an existing session. Unlike the
// create path it fails with domain.ErrSessionNotFound for unknown targets
// instead of quietly succeeding.
func (s *SessionService) Update(ctx context.Context, id string, in ports.SessionInput) (*domain.Session, error) {
	existing, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Date = in.Date
	existing.Description = in.Description
	existing.TeacherID = in.TeacherID
	if in.UserIDs != nil {
		existing.UserIDs = in.UserIDs
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.sessions.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return updated, nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("session_id", id).Msg("session deleted")
	return nil
}

// Participate enrolls a user in a session. Both the session and the user must
// exist, and double enrollment is rejected.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID string) error {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if session.Participates(userID) {
		return domain.ErrAlreadyParticipating
	}

	session.UserIDs = append(session.UserIDs, userID)
	session.UpdatedAt = time.Now().UTC()
	if _, err := s.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("participate: %w", err)
	}
	return nil
}

// Unparticipate removes a user from a session's participant list.
func (s *SessionService) Unparticipate(ctx context.Context, sessionID, userID string) error {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.Participates(userID) {
		return domain.ErrNotParticipating
	}

	kept := session.UserIDs[:0]
	for _, id := range session.UserIDs {
		if id != userID {
			kept = append(kept, id)
		}
	}
	session.UserIDs = kept
	session.UpdatedAt = time.Now().UTC()
	if _, err := s.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("unparticipate: %w", err)
	}
	return nil
}
