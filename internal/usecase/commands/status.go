package commands

import (
	"context"
	"errors"
	"log/slog"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"
	"tablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrTransitionNotAllowed  = errs.New("status transition not allowed")
	ErrStatusTransitionError = errs.New("status transition failed")
)

type WorkflowCommands interface {
	// Transition moves a reservation along its channel's lifecycle graph.
	// The row is locked for the check-then-write so two staff acting at once
	// cannot both succeed.
	Transition(ctx context.Context, id uuid.UUID, to reservation.Status) (*queries.ReservationView, error)
}

type workflowCommandsImpl struct {
	uow          shared.UnitOfWork
	publisher    InvalidationPublisher
	reservations queries.ReservationReadStore
}

func NewWorkflowCommands(
	uow shared.UnitOfWork,
	publisher InvalidationPublisher,
	reservations queries.ReservationReadStore,
) WorkflowCommands {
	return &workflowCommandsImpl{
		uow:          uow,
		publisher:    publisher,
		reservations: reservations,
	}
}

func (w *workflowCommandsImpl) Transition(ctx context.Context, id uuid.UUID, to reservation.Status) (*queries.ReservationView, error) {
	var dateISO string

	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		if !reservation.CanTransition(snap.Channel, snap.Status, to) {
			return ErrTransitionNotAllowed
		}

		dateISO = snap.DateISO
		return tx.Reservations().UpdateStatus(ctx, tx.DB(), id, to)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTransitionNotAllowed):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrReservationNotFound
		default:
			return nil, errs.Mark(err, ErrStatusTransitionError)
		}
	}

	// A cancelled or completed booking frees its slot for that date.
	if pubErr := w.publisher.PublishAvailabilityChanged(ctx, dateISO); pubErr != nil {
		slog.Warn("failed to publish availability invalidation",
			"date", dateISO, "error", pubErr.Error())
	}

	view, err := w.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStatusTransitionError)
	}
	return view, nil
}
