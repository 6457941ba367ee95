package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listActiveOnDateSQL = `
SELECT id, table_id, channel, status, start_at, end_at
FROM reservations
WHERE service_date = $1
  AND status NOT IN ('completed', 'cancelled', 'rejected', 'void')`

const findReservationSQL = `
SELECT r.id, r.channel, r.table_id, t.name, r.start_at, r.end_at, r.status,
       r.subtotal_cents, r.discount_cents, p.code,
       r.contact_name, r.contact_phone, r.party_size, r.note,
       r.tracking_token, r.proof_ref, r.created_at, r.updated_at
FROM reservations r
LEFT JOIN tables t ON t.id = r.table_id
LEFT JOIN promotions p ON p.id = r.promotion_id`

const findReservationByIDSQL = findReservationSQL + `
WHERE r.id = $1`

const findReservationByTokenSQL = findReservationSQL + `
WHERE r.tracking_token = $1`

const listLinesSQL = `
SELECT menu_item_id, name, quantity, unit_price_cents, options
FROM order_lines
WHERE reservation_id = $1
ORDER BY id`

const listOnDateSQL = `
SELECT r.id, r.channel, t.name, r.start_at, r.end_at, r.status,
       r.subtotal_cents - r.discount_cents, r.contact_name, r.party_size, r.created_at
FROM reservations r
LEFT JOIN tables t ON t.id = r.table_id
WHERE r.service_date = $1
ORDER BY r.start_at, r.created_at`

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

func (r *ReservationReadStore) ListActiveOnDate(ctx context.Context, dateISO string) ([]queries.ActiveReservation, error) {
	rows, err := r.pool.Query(ctx, listActiveOnDateSQL, dateISO)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	defer rows.Close()

	var out []queries.ActiveReservation
	for rows.Next() {
		var (
			item    queries.ActiveReservation
			channel string
			status  string
		)
		if err := rows.Scan(&item.ID, &item.TableID, &channel, &status, &item.StartAt, &item.EndAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active reservation", err)
		}
		item.Channel = reservation.Channel(channel)
		item.Status = reservation.Status(status)
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	return out, nil
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return r.findOne(ctx, findReservationByIDSQL, id)
}

func (r *ReservationReadStore) FindByToken(ctx context.Context, token string) (*queries.ReservationView, error) {
	return r.findOne(ctx, findReservationByTokenSQL, token)
}

func (r *ReservationReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.ReservationView, error) {
	var (
		view     queries.ReservationView
		proofRef *uuid.UUID
	)
	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&view.ID,
		&view.Channel,
		&view.TableID,
		&view.TableName,
		&view.StartAt,
		&view.EndAt,
		&view.Status,
		&view.SubtotalCents,
		&view.DiscountCents,
		&view.PromoCode,
		&view.ContactName,
		&view.ContactPhone,
		&view.PartySize,
		&view.Note,
		&view.TrackingToken,
		&proofRef,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	view.TotalCents = view.SubtotalCents - view.DiscountCents
	if proofRef != nil {
		view.ProofRef = *proofRef
	}

	lines, err := r.listLines(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Lines = lines

	return &view, nil
}

func (r *ReservationReadStore) listLines(ctx context.Context, reservationID uuid.UUID) ([]queries.OrderLineView, error) {
	rows, err := r.pool.Query(ctx, listLinesSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	var out []queries.OrderLineView
	for rows.Next() {
		var (
			line        queries.OrderLineView
			optionsJSON []byte
		)
		if err := rows.Scan(&line.MenuItemID, &line.Name, &line.Quantity, &line.UnitPriceCents, &optionsJSON); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		if len(optionsJSON) > 0 {
			if err := json.Unmarshal(optionsJSON, &line.Options); err != nil {
				return nil, infra.WrapRepoErr("failed to decode line options", err)
			}
		}
		out = append(out, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	return out, nil
}

func (r *ReservationReadStore) ListOnDate(ctx context.Context, dateISO string) ([]queries.ReservationListItem, error) {
	rows, err := r.pool.Query(ctx, listOnDateSQL, dateISO)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var out []queries.ReservationListItem
	for rows.Next() {
		var (
			item  queries.ReservationListItem
			endAt *time.Time
		)
		if err := rows.Scan(
			&item.ID,
			&item.Channel,
			&item.TableName,
			&item.StartAt,
			&endAt,
			&item.Status,
			&item.TotalCents,
			&item.ContactName,
			&item.PartySize,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		if endAt != nil {
			item.EndAt = *endAt
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return out, nil
}
