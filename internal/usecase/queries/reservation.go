package queries

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationLookupFailed = errs.New("reservation lookup failed")

// ReservationQueries is the staff-facing read side: the service-date board
// and single-reservation detail.
type ReservationQueries interface {
	ListOnDate(ctx context.Context, dateISO string) ([]ReservationListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
}

func NewReservationQueries(reservations ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations}
}

func (q *reservationQueriesImpl) ListOnDate(ctx context.Context, dateISO string) ([]ReservationListItem, error) {
	items, err := q.reservations.ListOnDate(ctx, dateISO)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationLookupFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrReservationLookupFailed)
	}
	return view, nil
}
