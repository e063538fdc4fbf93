package ports

import (
	"context"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

// AuditSink accepts authentication events for asynchronous recording.
// Implementations must not block the caller beyond a bounded buffer.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuditRecorder persists authentication events.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}
