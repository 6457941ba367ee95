package commands

import (
	"context"

	"github.com/google/uuid"
)

// BlobStore persists proof-of-payment uploads. Uploads happen before the
// reservation transaction; an orphaned blob is harmless, a reservation
// pointing at a missing blob is not.
type BlobStore interface {
	Upload(ctx context.Context, name, contentType string, content []byte) (uuid.UUID, error)
}

// InvalidationPublisher announces that reservation state changed for a date.
// Messages are cache-invalidation signals only; subscribers re-query.
type InvalidationPublisher interface {
	PublishAvailabilityChanged(ctx context.Context, dateISO string) error
}
