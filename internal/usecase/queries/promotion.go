package queries

import (
	"context"

	"tablebook/internal/domain/promotion"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPromotionLookupFailed = errs.New("promotion lookup failed")

// PromotionResult is the discriminated outcome the UI renders. Rejection is
// data, not an error: only backend failures surface as errors.
type PromotionResult struct {
	Valid         bool      `json:"valid"`
	Reason        string    `json:"reason,omitempty"`
	CanonicalCode string    `json:"canonical_code,omitempty"`
	PromotionID   uuid.UUID `json:"promotion_id,omitempty"`
	DiscountType  string    `json:"discount_type,omitempty"`
	DiscountValue int64     `json:"discount_value,omitempty"`
	DiscountCents int64     `json:"discount_cents"`
}

type PromotionQueries interface {
	// ValidateCode checks a code against the current subtotal and channel.
	// The discount is a function of the subtotal: callers re-invoke this on
	// every cart change while a code is applied.
	ValidateCode(ctx context.Context, code string, subtotalCents int64, ch reservation.Channel) (*PromotionResult, error)
}

type promotionQueriesImpl struct {
	promotions PromotionReadStore
	clock      clock.Clock
}

func NewPromotionQueries(promotions PromotionReadStore, clock clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{
		promotions: promotions,
		clock:      clock,
	}
}

func (q *promotionQueriesImpl) ValidateCode(ctx context.Context, code string, subtotalCents int64, ch reservation.Channel) (*PromotionResult, error) {
	canonical := promotion.CanonicalCode(code)
	if canonical == "" {
		return &PromotionResult{Valid: false, Reason: string(promotion.ReasonUnknownCode)}, nil
	}

	promo, err := q.promotions.FindByCode(ctx, canonical)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &PromotionResult{Valid: false, Reason: string(promotion.ReasonUnknownCode), CanonicalCode: canonical}, nil
		}
		return nil, errs.Mark(err, ErrPromotionLookupFailed)
	}

	v := promo.Validate(subtotalCents, ch, q.clock.Now())
	if !v.Valid {
		return &PromotionResult{
			Valid:         false,
			Reason:        string(v.Reason),
			CanonicalCode: promo.Code(),
		}, nil
	}

	return &PromotionResult{
		Valid:         true,
		CanonicalCode: promo.Code(),
		PromotionID:   promo.ID(),
		DiscountType:  string(promo.Type()),
		DiscountValue: promo.Value(),
		DiscountCents: v.DiscountCents,
	}, nil
}
