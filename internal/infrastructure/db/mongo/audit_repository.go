package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

const authEventsCollection = "auth_events"

// AuditRepository appends authentication events to the audit trail.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(authEventsCollection)}
}

type mongoAuthEvent struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Kind      string    `bson:"kind"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Record(ctx context.Context, event domain.AuthEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id := event.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := r.coll.InsertOne(ctx, mongoAuthEvent{
		ID:        id,
		Email:     event.Email,
		Kind:      string(event.Kind),
		Timestamp: event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
