package shared

import (
	"context"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Promotions() PromotionRepository
	Staff() StaffRepository
	DB() db.DBTX
}

type ReservationRepository interface {
	// Insert persists a pending reservation together with its order lines.
	// A slot overlap on the same table surfaces as KindConflict.
	Insert(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ReservationSnapshot, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status) error
}

type PromotionRepository interface {
	IncrementUsage(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type StaffRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, staffID uuid.UUID) error
}

// ReservationSnapshot is the minimal row a status transition locks and reads.
type ReservationSnapshot struct {
	ID      uuid.UUID
	Channel reservation.Channel
	Status  reservation.Status
	DateISO string
}
