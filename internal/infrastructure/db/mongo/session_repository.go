package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

const sessionsCollection = "sessions"

// SessionRepository persists sessions in MongoDB.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Date        time.Time          `bson:"date"`
	Description string             `bson:"description"`
	TeacherID   string             `bson:"teacher_id"`
	UserIDs     []string           `bson:"user_ids"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (ms mongoSession) toDomain() *domain.Session {
	userIDs := ms.UserIDs
	if userIDs == nil {
		userIDs = []string{}
	}
	return &domain.Session{
		ID:          ms.ID.Hex(),
		Name:        ms.Name,
		Date:        ms.Date.UTC(),
		Description: ms.Description,
		TeacherID:   ms.TeacherID,
		UserIDs:     userIDs,
		CreatedAt:   ms.CreatedAt.UTC(),
		UpdatedAt:   ms.UpdatedAt.UTC(),
	}
}

func fromDomainSession(s *domain.Session) mongoSession {
	return mongoSession{
		Name:        s.Name,
		Date:        s.Date,
		Description: s.Description,
		TeacherID:   s.TeacherID,
		UserIDs:     s.UserIDs,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainSession(s))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	created := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SessionRepository) FindAll(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer cur.Close(ctx)

	sessions := []*domain.Session{}
	for cur.Next(ctx) {
		var ms mongoSession
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSession
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, fromDomainSession(s))
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
