//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/domain/promotion"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromotionReads struct {
	promos map[string]*promotion.Promotion
	err    error
}

func (f *fakePromotionReads) FindByCode(_ context.Context, code string) (*promotion.Promotion, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.promos[code]
	if !ok {
		return nil, infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func save10(t *testing.T) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(uuid.New(), "SAVE10", promotion.DiscountPercent, 10, 20000, nil, nil, nil, nil, 0)
	require.NoError(t, err)
	return p
}

func newPromotionQueries(t *testing.T, reads *fakePromotionReads) queries.PromotionQueries {
	t.Helper()
	mock := clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	return queries.NewPromotionQueries(reads, mock)
}

func TestValidateCode(t *testing.T) {
	reads := &fakePromotionReads{promos: map[string]*promotion.Promotion{"SAVE10": save10(t)}}
	q := newPromotionQueries(t, reads)

	t.Run("case-insensitive lookup with canonical echo", func(t *testing.T) {
		res, err := q.ValidateCode(context.Background(), " save10 ", 25000, reservation.ChannelDineIn)
		require.NoError(t, err)

		assert.True(t, res.Valid)
		assert.Equal(t, "SAVE10", res.CanonicalCode)
		assert.Equal(t, int64(2500), res.DiscountCents)
	})

	t.Run("unknown code is a rejection, not an error", func(t *testing.T) {
		res, err := q.ValidateCode(context.Background(), "NOPE", 25000, reservation.ChannelDineIn)
		require.NoError(t, err)

		assert.False(t, res.Valid)
		assert.Equal(t, string(promotion.ReasonUnknownCode), res.Reason)
	})

	t.Run("empty code short-circuits the store", func(t *testing.T) {
		res, err := q.ValidateCode(context.Background(), "   ", 25000, reservation.ChannelDineIn)
		require.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("store failure surfaces as an error", func(t *testing.T) {
		broken := &fakePromotionReads{err: infra.WrapRepoErr("connection refused", assert.AnError)}
		_, err := newPromotionQueries(t, broken).ValidateCode(context.Background(), "SAVE10", 25000, reservation.ChannelDineIn)
		assert.ErrorIs(t, err, queries.ErrPromotionLookupFailed)
	})
}

// Shrinking the cart under the minimum turns a previously valid code into a
// rejection; growing back and re-validating makes it valid again.
func TestRevalidationAcrossCartChanges(t *testing.T) {
	reads := &fakePromotionReads{promos: map[string]*promotion.Promotion{"SAVE10": save10(t)}}
	q := newPromotionQueries(t, reads)

	res, err := q.ValidateCode(context.Background(), "SAVE10", 25000, reservation.ChannelDineIn)
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Equal(t, int64(2500), res.DiscountCents)

	res, err = q.ValidateCode(context.Background(), "SAVE10", 15000, reservation.ChannelDineIn)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, string(promotion.ReasonBelowMinimum), res.Reason)

	res, err = q.ValidateCode(context.Background(), "SAVE10", 25000, reservation.ChannelDineIn)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}
