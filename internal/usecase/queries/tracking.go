package queries

import (
	"context"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrTrackingFailed      = errs.New("tracking lookup failed")
)

// Slow the poll once nothing can change anymore.
const (
	activePollSeconds   = 15
	terminalPollSeconds = 0 // stop polling
)

// TrackingView is the anonymous progress view a tracking token resolves to.
type TrackingView struct {
	Reservation    *ReservationView `json:"reservation"`
	Ordinal        int              `json:"ordinal"`
	PipelineLength int              `json:"pipeline_length"`
	IsActive       bool             `json:"is_active"`
	IsTerminal     bool             `json:"is_terminal"`
	CanExportProof bool             `json:"can_export_proof"`
	PollSeconds    int              `json:"poll_seconds"`
}

type TrackingQueries interface {
	TrackByToken(ctx context.Context, token string) (*TrackingView, error)
}

type trackingQueriesImpl struct {
	reservations ReservationReadStore
}

func NewTrackingQueries(reservations ReservationReadStore) TrackingQueries {
	return &trackingQueriesImpl{reservations: reservations}
}

func (q *trackingQueriesImpl) TrackByToken(ctx context.Context, token string) (*TrackingView, error) {
	view, err := q.reservations.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrTrackingFailed)
	}

	ch := reservation.Channel(view.Channel)
	status := reservation.Status(view.Status)

	tv := &TrackingView{
		Reservation:    view,
		Ordinal:        reservation.Ordinal(ch, status),
		PipelineLength: reservation.Ordinal(ch, reservation.StatusCompleted) + 1,
		IsActive:       reservation.IsActive(status),
		IsTerminal:     reservation.IsTerminal(status),
		CanExportProof: reservation.CanExportProof(status),
		PollSeconds:    terminalPollSeconds,
	}
	if tv.IsActive {
		tv.PollSeconds = activePollSeconds
	}
	return tv, nil
}
