package repository

import (
	"context"
	"encoding/json"
	"errors"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/infra/db"
	"tablebook/internal/pkg/civil"
	"tablebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

// isConflict covers the tracking-token unique index and the table/slot
// exclusion constraint. Both mean "someone else got there first".
func isConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeUniqueViolation || pgErr.Code == pgErrCodeExclusionViolation
}

const insertReservationSQL = `
INSERT INTO reservations (
    id, channel, table_id, service_date, start_at, end_at, status,
    subtotal_cents, discount_cents, promotion_id,
    contact_name, contact_phone, contact_email, party_size, note,
    tracking_token, proof_ref
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
)
RETURNING id`

const insertOrderLineSQL = `
INSERT INTO order_lines (
    reservation_id, menu_item_id, name, quantity, unit_price_cents, options
) VALUES ($1, $2, $3, $4, $5, $6)`

const findReservationForUpdateSQL = `
SELECT id, channel, status, service_date::text
FROM reservations
WHERE id = $1
FOR UPDATE`

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1`

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Insert(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var (
		contactEmail *string
		note         *string
		promotionID  *uuid.UUID
		proofRef     *uuid.UUID
	)
	if e := res.Contact().Email(); e != "" {
		contactEmail = &e
	}
	if n := res.Note(); !n.IsEmpty() {
		s := n.String()
		note = &s
	}
	promotionID = res.PromotionID()
	if ref := res.ProofRef(); ref != uuid.Nil {
		proofRef = &ref
	}

	// start_at carries the restaurant zone, so its civil date is the
	// service date.
	serviceDate := res.Slot().Start().Format(civil.DateLayout)

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertReservationSQL,
		res.ID(),
		string(res.Channel()),
		res.TableID(),
		serviceDate,
		res.Slot().Start(),
		res.Slot().End(),
		string(res.Status()),
		res.Subtotal().Cents(),
		res.Discount().Cents(),
		promotionID,
		res.Contact().Name(),
		res.Contact().Phone(),
		contactEmail,
		res.PartySize(),
		note,
		res.TrackingToken(),
		proofRef,
	).Scan(&id)
	if err != nil {
		if isConflict(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation slot conflict", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	for _, line := range res.Lines() {
		optionsJSON, err := json.Marshal(line.Options())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to encode line options", err)
		}

		if _, err := dbtx.Exec(ctx, insertOrderLineSQL,
			id,
			line.MenuItemID(),
			line.Name(),
			line.Quantity(),
			line.UnitPrice().Cents(),
			optionsJSON,
		); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order line", err)
		}
	}

	return id, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var (
		snap    shared.ReservationSnapshot
		channel string
		status  string
	)
	err := dbtx.QueryRow(ctx, findReservationForUpdateSQL, id).
		Scan(&snap.ID, &channel, &status, &snap.DateISO)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	snap.Channel = reservation.Channel(channel)
	snap.Status = reservation.Status(status)
	return &snap, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := dbtx.Exec(ctx, updateReservationStatusSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
