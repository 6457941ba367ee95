//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/promotion"
	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func percentPromo(t *testing.T, pct, minCents int64) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(uuid.New(), "save10", promotion.DiscountPercent, pct, minCents, nil, nil, nil, nil, 0)
	require.NoError(t, err)
	return p
}

func fixedPromo(t *testing.T, cents, minCents int64) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(uuid.New(), "flat50", promotion.DiscountFixed, cents, minCents, nil, nil, nil, nil, 0)
	require.NoError(t, err)
	return p
}

func TestCanonicalCode(t *testing.T) {
	assert.Equal(t, "SAVE10", promotion.CanonicalCode("  save10 "))
	assert.Equal(t, "SAVE10", promotion.CanonicalCode("Save10"))

	p := percentPromo(t, 10, 0)
	assert.Equal(t, "SAVE10", p.Code())
}

// SAVE10 = 10% off, min subtotal 200.00: 150.00 fails on minimum, 250.00
// yields a 25.00 discount.
func TestMinimumSpendScenario(t *testing.T) {
	p := percentPromo(t, 10, 20000)

	v := p.Validate(15000, reservation.ChannelDineIn, now)
	assert.False(t, v.Valid)
	assert.Equal(t, promotion.ReasonBelowMinimum, v.Reason)

	v = p.Validate(25000, reservation.ChannelDineIn, now)
	assert.True(t, v.Valid)
	assert.Equal(t, int64(2500), v.DiscountCents)
}

func TestDiscountBounds(t *testing.T) {
	t.Run("fixed discount never exceeds subtotal", func(t *testing.T) {
		p := fixedPromo(t, 5000, 0)

		v := p.Validate(3000, reservation.ChannelDineIn, now)
		require.True(t, v.Valid)
		assert.Equal(t, int64(3000), v.DiscountCents)

		v = p.Validate(10000, reservation.ChannelDineIn, now)
		require.True(t, v.Valid)
		assert.Equal(t, int64(5000), v.DiscountCents)
	})

	t.Run("bounds hold across subtotals", func(t *testing.T) {
		promos := []*promotion.Promotion{
			percentPromo(t, 10, 0),
			percentPromo(t, 100, 0),
			fixedPromo(t, 1, 0),
			fixedPromo(t, 999999, 0),
		}
		for _, p := range promos {
			for _, subtotal := range []int64{0, 1, 99, 100, 12345, 1 << 40} {
				v := p.Validate(subtotal, reservation.ChannelPickup, now)
				require.True(t, v.Valid)
				assert.GreaterOrEqual(t, v.DiscountCents, int64(0))
				assert.LessOrEqual(t, v.DiscountCents, subtotal)
			}
		}
	})

	t.Run("percent rounds half up", func(t *testing.T) {
		p := percentPromo(t, 10, 0)
		v := p.Validate(125, reservation.ChannelDineIn, now)
		require.True(t, v.Valid)
		assert.Equal(t, int64(13), v.DiscountCents)
	})
}

func TestValidityWindow(t *testing.T) {
	from := now.Add(time.Hour)
	to := now.Add(-time.Hour)

	early, err := promotion.NewPromotion(uuid.New(), "EARLY", promotion.DiscountPercent, 10, 0, nil, &from, nil, nil, 0)
	require.NoError(t, err)
	v := early.Validate(10000, reservation.ChannelDineIn, now)
	assert.False(t, v.Valid)
	assert.Equal(t, promotion.ReasonNotYetValid, v.Reason)

	late, err := promotion.NewPromotion(uuid.New(), "LATE", promotion.DiscountPercent, 10, 0, nil, nil, &to, nil, 0)
	require.NoError(t, err)
	v = late.Validate(10000, reservation.ChannelDineIn, now)
	assert.False(t, v.Valid)
	assert.Equal(t, promotion.ReasonExpired, v.Reason)
}

func TestChannelEligibility(t *testing.T) {
	dineInOnly, err := promotion.NewPromotion(
		uuid.New(), "TABLE5", promotion.DiscountPercent, 5, 0,
		[]reservation.Channel{reservation.ChannelDineIn}, nil, nil, nil, 0,
	)
	require.NoError(t, err)

	assert.True(t, dineInOnly.Validate(10000, reservation.ChannelDineIn, now).Valid)

	v := dineInOnly.Validate(10000, reservation.ChannelPickup, now)
	assert.False(t, v.Valid)
	assert.Equal(t, promotion.ReasonChannelMismatch, v.Reason)

	// no channel restriction means both channels qualify
	assert.True(t, percentPromo(t, 10, 0).Validate(10000, reservation.ChannelPickup, now).Valid)
}

func TestUsageLimit(t *testing.T) {
	limit := int32(100)

	exhausted, err := promotion.NewPromotion(uuid.New(), "GONE", promotion.DiscountPercent, 10, 0, nil, nil, nil, &limit, 100)
	require.NoError(t, err)
	v := exhausted.Validate(10000, reservation.ChannelDineIn, now)
	assert.False(t, v.Valid)
	assert.Equal(t, promotion.ReasonUsageExhausted, v.Reason)

	remaining, err := promotion.NewPromotion(uuid.New(), "LEFT", promotion.DiscountPercent, 10, 0, nil, nil, nil, &limit, 99)
	require.NoError(t, err)
	assert.True(t, remaining.Validate(10000, reservation.ChannelDineIn, now).Valid)
}

func TestNewPromotionValidation(t *testing.T) {
	_, err := promotion.NewPromotion(uuid.New(), "BAD", promotion.DiscountPercent, 0, 0, nil, nil, nil, nil, 0)
	assert.ErrorIs(t, err, promotion.ErrInvalidDiscountValue)

	_, err = promotion.NewPromotion(uuid.New(), "BAD", promotion.DiscountPercent, 101, 0, nil, nil, nil, nil, 0)
	assert.ErrorIs(t, err, promotion.ErrInvalidDiscountValue)

	_, err = promotion.NewPromotion(uuid.New(), "BAD", promotion.DiscountFixed, -100, 0, nil, nil, nil, nil, 0)
	assert.ErrorIs(t, err, promotion.ErrInvalidDiscountValue)

	_, err = promotion.NewPromotion(uuid.New(), "BAD", "bogof", 10, 0, nil, nil, nil, nil, 0)
	assert.ErrorIs(t, err, promotion.ErrInvalidDiscountType)
}
