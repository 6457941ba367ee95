package readstore

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/promotion"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findPromotionByCodeSQL = `
SELECT id, code, discount_type, discount_value, min_subtotal_cents,
       channels, valid_from, valid_to, usage_limit, used_count
FROM promotions
WHERE code = $1`

type PromotionReadStore struct {
	pool *pgxpool.Pool
}

func NewPromotionReadStore(pool *pgxpool.Pool) *PromotionReadStore {
	return &PromotionReadStore{pool: pool}
}

func (r *PromotionReadStore) FindByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	var (
		id               uuid.UUID
		storedCode       string
		discountType     string
		discountValue    int64
		minSubtotalCents int64
		channels         []string
		validFrom        *time.Time
		validTo          *time.Time
		usageLimit       *int32
		usedCount        int32
	)
	err := r.pool.QueryRow(ctx, findPromotionByCodeSQL, code).Scan(
		&id, &storedCode, &discountType, &discountValue, &minSubtotalCents,
		&channels, &validFrom, &validTo, &usageLimit, &usedCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion", err)
	}

	chs := make([]reservation.Channel, len(channels))
	for i, c := range channels {
		chs[i] = reservation.Channel(c)
	}

	promo, err := promotion.NewPromotion(
		id,
		storedCode,
		promotion.DiscountType(discountType),
		discountValue,
		minSubtotalCents,
		chs,
		validFrom,
		validTo,
		usageLimit,
		usedCount,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored promotion is invalid", err)
	}
	return promo, nil
}
