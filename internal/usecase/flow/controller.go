// Package flow orchestrates one customer's booking wizard: it owns the draft,
// funnels every change through the reducer, keeps an applied promotion honest
// as the cart moves, and hands the finished draft to the commit protocol.
package flow

import (
	"context"
	"errors"
	"sync"

	"tablebook/internal/domain/draft"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
)

var ErrSubmitInFlight = errs.New("a submit is already in progress")

const promoRecheckFailedNotice = "promotion could not be re-checked, please apply it again"

type Controller struct {
	mu      sync.Mutex
	d       draft.Draft
	promos  queries.PromotionQueries
	booking commands.BookingCommands
}

func NewController(channel reservation.Channel, promos queries.PromotionQueries, booking commands.BookingCommands) *Controller {
	return &Controller{
		d:       draft.New(channel),
		promos:  promos,
		booking: booking,
	}
}

func (c *Controller) Snapshot() draft.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.d
}

// Dispatch applies one wizard action. If the action changed the subtotal
// while a promotion is applied, the promotion is revalidated against the new
// subtotal: the stored discount is only meaningful for the cart it was
// computed against.
func (c *Controller) Dispatch(ctx context.Context, action draft.Action) draft.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.d.SubtotalCents()
	c.d = draft.Reduce(c.d, action)

	if c.d.Promo != nil && c.d.SubtotalCents() != before {
		c.revalidatePromo(ctx)
	}
	return c.d
}

// ApplyCode validates a code against the current cart and applies it when
// valid. A rejection is returned as data for the UI; only backend failures
// are errors.
func (c *Controller) ApplyCode(ctx context.Context, code string) (*queries.PromotionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.promos.ValidateCode(ctx, code, c.d.SubtotalCents(), c.d.Channel)
	if err != nil {
		return nil, err
	}

	if res.Valid {
		c.d = draft.Reduce(c.d, draft.ApplyPromotion{Snapshot: draft.PromoSnapshot{
			PromotionID:   res.PromotionID,
			Code:          res.CanonicalCode,
			DiscountCents: res.DiscountCents,
		}})
	}
	return res, nil
}

// Submit hands the draft to the commit protocol. At most one submit runs at
// a time; repeated clicks while one is in flight are rejected rather than
// queued. On failure the wizard is moved back to the step that can fix the
// problem.
func (c *Controller) Submit(ctx context.Context) (*queries.ReservationView, error) {
	c.mu.Lock()
	if c.d.Submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	c.d = draft.Reduce(c.d, draft.BeginSubmit{})
	snapshot := c.d
	c.mu.Unlock()

	// The lock is not held across the commit so a second click gets the
	// in-flight rejection instead of queueing behind the first.
	view, err := c.booking.Commit(ctx, snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.d = draft.Reduce(c.d, draft.EndSubmit{})
	if err != nil {
		c.recoverStep(err)
		return nil, err
	}

	c.d = draft.Reduce(c.d, draft.Reset{})
	return view, nil
}

func (c *Controller) revalidatePromo(ctx context.Context) {
	res, err := c.promos.ValidateCode(ctx, c.d.Promo.Code, c.d.SubtotalCents(), c.d.Channel)
	if err != nil {
		// Better no discount than a discount nobody verified
		c.d = draft.Reduce(c.d, draft.ClearPromotion{Reason: promoRecheckFailedNotice})
		return
	}
	if !res.Valid {
		c.d = draft.Reduce(c.d, draft.ClearPromotion{Reason: res.Reason})
		return
	}

	c.d = draft.Reduce(c.d, draft.ApplyPromotion{Snapshot: draft.PromoSnapshot{
		PromotionID:   res.PromotionID,
		Code:          res.CanonicalCode,
		DiscountCents: res.DiscountCents,
	}})
}

// recoverStep walks the wizard back to wherever the commit failure can be
// repaired. A lost table additionally drops the stale selection.
func (c *Controller) recoverStep(err error) {
	switch {
	case errors.Is(err, commands.ErrTableTaken):
		c.d = draft.Reduce(c.d, draft.DeselectTable{})
		c.retreatTo(draft.StepTable)
	case errors.Is(err, commands.ErrDateBlocked), errors.Is(err, commands.ErrInvalidSchedule):
		c.retreatTo(draft.StepSchedule)
	}
}

func (c *Controller) retreatTo(target draft.Step) {
	for c.d.InCheckout || c.d.Step > target {
		c.d = draft.Reduce(c.d, draft.Retreat{})
	}
}
