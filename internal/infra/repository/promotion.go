package repository

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/infra/db"

	"github.com/google/uuid"
)

const incrementPromotionUsageSQL = `
UPDATE promotions
SET used_count = used_count + 1, updated_at = now()
WHERE id = $1`

type PromotionRepository struct{}

func NewPromotionRepository() *PromotionRepository {
	return &PromotionRepository{}
}

func (r *PromotionRepository) IncrementUsage(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, incrementPromotionUsageSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment promotion usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}
