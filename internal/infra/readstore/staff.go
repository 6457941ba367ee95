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

const findStaffByEmailSQL = `
SELECT id, email, role, is_active, password_hash
FROM staff
WHERE email = $1`

const findStaffByIDSQL = `
SELECT id, email, role, is_active
FROM staff
WHERE id = $1`

type StaffReadStore struct {
	pool *pgxpool.Pool
}

func NewStaffReadStore(pool *pgxpool.Pool) *StaffReadStore {
	return &StaffReadStore{pool: pool}
}

func (r *StaffReadStore) FindByEmail(ctx context.Context, email string) (*queries.StaffView, string, error) {
	var (
		view queries.StaffView
		hash string
	)
	err := r.pool.QueryRow(ctx, findStaffByEmailSQL, email).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find staff by email", err)
	}
	return &view, hash, nil
}

func (r *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StaffView, error) {
	var view queries.StaffView
	err := r.pool.QueryRow(ctx, findStaffByIDSQL, id).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by id", err)
	}
	return &view, nil
}
