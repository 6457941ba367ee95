package repository

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/infra/db"

	"github.com/google/uuid"
)

const updateStaffLastLoginSQL = `
UPDATE staff
SET last_login_at = now(), updated_at = now()
WHERE id = $1`

type StaffRepository struct{}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{}
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, staffID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, updateStaffLastLoginSQL, staffID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
