package readstore

import (
	"context"
	"errors"

	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findBlobByIDSQL = `
SELECT id, name, content_type, content
FROM blobs
WHERE id = $1`

type BlobReadStore struct {
	pool *pgxpool.Pool
}

func NewBlobReadStore(pool *pgxpool.Pool) *BlobReadStore {
	return &BlobReadStore{pool: pool}
}

func (r *BlobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BlobView, error) {
	var view queries.BlobView
	err := r.pool.QueryRow(ctx, findBlobByIDSQL, id).
		Scan(&view.ID, &view.Name, &view.ContentType, &view.Content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("blob not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find blob", err)
	}
	return &view, nil
}
