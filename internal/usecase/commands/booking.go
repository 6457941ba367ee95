package commands

import (
	"context"
	"log/slog"

	"tablebook/internal/domain/draft"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/civil"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/pkg/token"
	"tablebook/internal/usecase/queries"
	"tablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingContact   = errs.New("contact name and phone are required")
	ErrTermsNotAgreed   = errs.New("terms must be agreed before submitting")
	ErrMissingProof     = errs.New("payment proof is required")
	ErrProofTooLarge    = errs.New("payment proof exceeds size limit")
	ErrDateBlocked      = errs.New("bookings are closed on that date")
	ErrBelowMinSpend    = errs.New("order is below the minimum spend")
	ErrInvalidSchedule  = errs.New("invalid reservation schedule")
	ErrTableTaken       = errs.New("table already taken for that slot")
	ErrUploadFailed     = errs.New("proof upload failed")
	ErrDomainValidation = errs.New("domain validation error")
	ErrStoreUnavailable = errs.New("reservation store unavailable")
)

type BookingCommands interface {
	// Commit turns a finished draft into a pending reservation. Validation
	// failures are reported one at a time, in a fixed order, so the UI can
	// send the customer to the step that fixes the first problem.
	Commit(ctx context.Context, d draft.Draft) (*queries.ReservationView, error)
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	blobs        BlobStore
	publisher    InvalidationPublisher
	availability queries.AvailabilityQueries
	reservations queries.ReservationReadStore
	cfg          config.RestaurantConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	blobs BlobStore,
	publisher InvalidationPublisher,
	availability queries.AvailabilityQueries,
	reservations queries.ReservationReadStore,
	cfg config.RestaurantConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		blobs:        blobs,
		publisher:    publisher,
		availability: availability,
		reservations: reservations,
		cfg:          cfg,
	}
}

func (b *bookingCommandsImpl) Commit(ctx context.Context, d draft.Draft) (*queries.ReservationView, error) {
	contact, err := b.validatePreconditions(d)
	if err != nil {
		return nil, err
	}

	slot, err := b.buildSlot(d)
	if err != nil {
		return nil, err
	}

	lines, err := buildLines(d)
	if err != nil {
		return nil, err
	}

	if err := b.recheckTable(ctx, d, slot); err != nil {
		return nil, err
	}

	proofRef, err := b.uploadProof(ctx, d)
	if err != nil {
		return nil, err
	}

	trackingToken, err := token.NewTrackingToken()
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	var promotionID *uuid.UUID
	if d.Promo != nil {
		id := d.Promo.PromotionID
		promotionID = &id
	}

	res, err := reservation.NewReservation(
		d.Channel,
		d.TableID,
		slot,
		lines,
		reservation.NewMoney(d.DiscountCents()),
		promotionID,
		contact,
		d.PartySize,
		reservation.NewNote(d.Field(draft.FieldNote)),
		trackingToken,
		proofRef,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := b.persist(ctx, res)
	if err != nil {
		return nil, err
	}

	// Subscribers re-query on this signal; losing it degrades freshness, not
	// correctness.
	if pubErr := b.publisher.PublishAvailabilityChanged(ctx, d.DateISO); pubErr != nil {
		slog.Warn("failed to publish availability invalidation",
			"date", d.DateISO, "error", pubErr.Error())
	}

	view, err := b.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return view, nil
}

// validatePreconditions reports the first failed precondition. The order is
// part of the contract: contact, agreement, proof, date, minimum spend.
func (b *bookingCommandsImpl) validatePreconditions(d draft.Draft) (reservation.Contact, error) {
	contact, err := reservation.NewContact(
		d.Field(draft.FieldName),
		d.Field(draft.FieldPhone),
		d.Field(draft.FieldEmail),
	)
	if err != nil {
		return reservation.Contact{}, ErrMissingContact
	}

	if !d.Agreed {
		return reservation.Contact{}, ErrTermsNotAgreed
	}

	// The slip secures a held table; pickup holds none and pays at the
	// counter, so only dine-in must attach one. Anything attached is still
	// size-checked before it reaches the blob store.
	if d.Channel == reservation.ChannelDineIn {
		if d.Proof == nil || len(d.Proof.Content) == 0 {
			return reservation.Contact{}, ErrMissingProof
		}
	}
	if d.Proof != nil && int64(len(d.Proof.Content)) > b.cfg.ProofMaxBytes {
		return reservation.Contact{}, ErrProofTooLarge
	}

	if b.cfg.IsDateBlocked(d.DateISO) {
		return reservation.Contact{}, ErrDateBlocked
	}

	// Minimum spend is judged on the pre-discount subtotal: a promotion can
	// lower what the customer pays, never what qualifies the booking.
	if min := b.cfg.MinSpendCents * int64(d.PartySize); d.SubtotalCents() < min {
		return reservation.Contact{}, ErrBelowMinSpend
	}

	return contact, nil
}

func (b *bookingCommandsImpl) buildSlot(d draft.Draft) (reservation.TimeSlot, error) {
	loc, err := b.cfg.Location()
	if err != nil {
		return reservation.TimeSlot{}, errs.Mark(err, ErrInvalidSchedule)
	}

	start, err := civil.ToInstant(d.DateISO, d.TimeHHMM, loc)
	if err != nil {
		return reservation.TimeSlot{}, errs.Mark(err, ErrInvalidSchedule)
	}

	duration := b.cfg.DineInDuration
	if d.Channel == reservation.ChannelPickup {
		duration = b.cfg.PickupDuration
	}

	slot, err := reservation.NewTimeSlot(start, start.Add(duration))
	if err != nil {
		return reservation.TimeSlot{}, errs.Mark(err, ErrInvalidSchedule)
	}
	return slot, nil
}

func buildLines(d draft.Draft) ([]reservation.OrderLine, error) {
	if len(d.Cart) == 0 {
		return nil, ErrDomainValidation
	}

	lines := make([]reservation.OrderLine, 0, len(d.Cart))
	for _, cl := range d.Cart {
		line, err := reservation.NewOrderLine(
			cl.ItemID,
			cl.Name,
			cl.Quantity,
			reservation.NewMoney(cl.UnitPriceCents),
			cl.Options,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// recheckTable is the fast half of the double-booking defense. The database
// exclusion constraint remains authoritative; this catches most races before
// any blob is uploaded.
func (b *bookingCommandsImpl) recheckTable(ctx context.Context, d draft.Draft, slot reservation.TimeSlot) error {
	if d.Channel != reservation.ChannelDineIn || d.TableID == nil {
		return nil
	}

	occupied, err := b.availability.ComputeOccupied(ctx, d.DateISO, slot.Start(), slot.End())
	if err != nil {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	if _, taken := occupied[*d.TableID]; taken {
		return ErrTableTaken
	}
	return nil
}

func (b *bookingCommandsImpl) uploadProof(ctx context.Context, d draft.Draft) (uuid.UUID, error) {
	if d.Proof == nil {
		return uuid.Nil, nil
	}

	ref, err := b.blobs.Upload(ctx, d.Proof.Name, d.Proof.ContentType, d.Proof.Content)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrUploadFailed)
	}
	return ref, nil
}

func (b *bookingCommandsImpl) persist(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		insertedID, err := tx.Reservations().Insert(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		id = insertedID

		if promoID := res.PromotionID(); promoID != nil {
			if err := tx.Promotions().IncrementUsage(ctx, tx.DB(), *promoID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrTableTaken
		}
		return uuid.Nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return id, nil
}
