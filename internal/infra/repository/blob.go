package repository

import (
	"context"

	"tablebook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertBlobSQL = `
INSERT INTO blobs (id, name, content_type, content)
VALUES ($1, $2, $3, $4)`

// BlobStore keeps proof-of-payment uploads as bytea rows. Uploads happen
// outside the reservation transaction, so the store holds its own pool.
type BlobStore struct {
	pool *pgxpool.Pool
}

func NewBlobStore(pool *pgxpool.Pool) *BlobStore {
	return &BlobStore{pool: pool}
}

func (s *BlobStore) Upload(ctx context.Context, name, contentType string, content []byte) (uuid.UUID, error) {
	id := uuid.New()
	if _, err := s.pool.Exec(ctx, insertBlobSQL, id, name, contentType, content); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to store blob", err)
	}
	return id, nil
}
