package queries

import (
	"context"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/civil"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAvailabilityUnavailable = errs.New("availability data unavailable")

type AvailabilityQueries interface {
	// ComputeOccupied returns the set of tables held by at least one active
	// reservation whose occupied interval overlaps [start, end).
	ComputeOccupied(ctx context.Context, dateISO string, start, end time.Time) (map[uuid.UUID]struct{}, error)
	// FreeTables renders the table-selection step: all tables fitting the
	// party, minus the occupied set for the requested window.
	FreeTables(ctx context.Context, dateISO, timeHHMM string, partySize int) ([]TableView, error)
	// Window resolves a civil date/time into the channel's service window.
	Window(dateISO, timeHHMM string, ch reservation.Channel) (start, end time.Time, err error)
}

type availabilityQueriesImpl struct {
	reservations ReservationReadStore
	tables       TableReadStore
	cache        *FreeTableCache
	cfg          config.RestaurantConfig
	loc          *time.Location
}

func NewAvailabilityQueries(
	reservations ReservationReadStore,
	tables TableReadStore,
	cache *FreeTableCache,
	cfg config.RestaurantConfig,
	loc *time.Location,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		reservations: reservations,
		tables:       tables,
		cache:        cache,
		cfg:          cfg,
		loc:          loc,
	}
}

func (q *availabilityQueriesImpl) Window(dateISO, timeHHMM string, ch reservation.Channel) (time.Time, time.Time, error) {
	start, err := civil.ToInstant(dateISO, timeHHMM, q.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(q.defaultDuration(ch)), nil
}

func (q *availabilityQueriesImpl) ComputeOccupied(ctx context.Context, dateISO string, start, end time.Time) (map[uuid.UUID]struct{}, error) {
	occupied := make(map[uuid.UUID]struct{})

	// A reservation on the previous calendar day can spill past midnight
	// into the proposed window, so both days are consulted. The proposed
	// window itself never crosses midnight.
	dates := []string{dateISO}
	if prev, err := previousDate(dateISO, q.loc); err == nil {
		dates = append(dates, prev)
	}

	seen := make(map[uuid.UUID]struct{})
	for _, d := range dates {
		active, err := q.reservations.ListActiveOnDate(ctx, d)
		if err != nil {
			return nil, errs.Mark(err, ErrAvailabilityUnavailable)
		}
		for _, r := range active {
			if r.TableID == nil {
				continue
			}
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}

			if !reservation.IsActive(r.Status) {
				continue
			}
			if civil.Overlaps(start, end, r.StartAt, q.occupiedEnd(r)) {
				occupied[*r.TableID] = struct{}{}
			}
		}
	}

	return occupied, nil
}

// FreeTables serves the listing from the invalidation-aware cache when it
// can. The commit-time re-check calls ComputeOccupied directly and never
// sees a cached answer.
func (q *availabilityQueriesImpl) FreeTables(ctx context.Context, dateISO, timeHHMM string, partySize int) ([]TableView, error) {
	start, end, err := q.Window(dateISO, timeHHMM, reservation.ChannelDineIn)
	if err != nil {
		return nil, err
	}

	key := freeTablesKey(dateISO, timeHHMM, partySize)
	if cached, ok := q.cache.get(key); ok {
		return cached, nil
	}

	occupied, err := q.ComputeOccupied(ctx, dateISO, start, end)
	if err != nil {
		return nil, err
	}

	tables, err := q.tables.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityUnavailable)
	}

	free := make([]TableView, 0, len(tables))
	for _, t := range tables {
		if _, taken := occupied[t.ID]; taken {
			continue
		}
		if partySize > 0 && t.Capacity < partySize {
			continue
		}
		free = append(free, t)
	}

	q.cache.put(key, free)
	return free, nil
}

// occupiedEnd falls back to the channel default when no explicit end was
// stored.
func (q *availabilityQueriesImpl) occupiedEnd(r ActiveReservation) time.Time {
	if r.EndAt != nil {
		return *r.EndAt
	}
	return r.StartAt.Add(q.defaultDuration(r.Channel))
}

func (q *availabilityQueriesImpl) defaultDuration(ch reservation.Channel) time.Duration {
	if ch == reservation.ChannelPickup {
		return q.cfg.PickupDuration
	}
	return q.cfg.DineInDuration
}

func previousDate(dateISO string, loc *time.Location) (string, error) {
	d, err := time.ParseInLocation(civil.DateLayout, dateISO, loc)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, -1).Format(civil.DateLayout), nil
}
