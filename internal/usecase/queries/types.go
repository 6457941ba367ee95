package queries

import (
	"context"
	"time"

	"tablebook/internal/domain/promotion"
	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            uuid.UUID       `json:"id"`
	Channel       string          `json:"channel"`
	TableID       *uuid.UUID      `json:"table_id,omitempty"`
	TableName     *string         `json:"table_name,omitempty"`
	StartAt       time.Time       `json:"start_at"`
	EndAt         time.Time       `json:"end_at"`
	Status        string          `json:"status"`
	SubtotalCents int64           `json:"subtotal_cents"`
	DiscountCents int64           `json:"discount_cents"`
	TotalCents    int64           `json:"total_cents"`
	PromoCode     *string         `json:"promo_code,omitempty"`
	Lines         []OrderLineView `json:"lines"`
	ContactName   string          `json:"contact_name"`
	ContactPhone  string          `json:"contact_phone"`
	PartySize     int             `json:"party_size"`
	Note          *string         `json:"note,omitempty"`
	TrackingToken string          `json:"tracking_token"`
	ProofRef      uuid.UUID       `json:"proof_ref"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderLineView struct {
	MenuItemID     uuid.UUID            `json:"menu_item_id"`
	Name           string               `json:"name"`
	Quantity       int                  `json:"quantity"`
	UnitPriceCents int64                `json:"unit_price_cents"`
	Options        []reservation.Option `json:"options,omitempty"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	Channel     string    `json:"channel"`
	TableName   *string   `json:"table_name,omitempty"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"total_cents"`
	ContactName string    `json:"contact_name"`
	PartySize   int       `json:"party_size"`
	CreatedAt   time.Time `json:"created_at"`
}

type TableView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
}

type MenuItemView struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	PriceCents   int64             `json:"price_cents"`
	OptionGroups []MenuOptionGroup `json:"option_groups,omitempty"`
	Available    bool              `json:"available"`
}

type MenuOptionGroup struct {
	Name    string           `json:"name"`
	Choices []MenuOptionItem `json:"choices"`
}

type MenuOptionItem struct {
	Name            string `json:"name"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
}

// ActiveReservation is the slim snapshot availability math runs over.
type ActiveReservation struct {
	ID      uuid.UUID
	TableID *uuid.UUID
	Channel reservation.Channel
	Status  reservation.Status
	StartAt time.Time
	EndAt   *time.Time // nil means "start + channel default duration"
}

// Read-store ports implemented by infra/readstore.
type ReservationReadStore interface {
	ListActiveOnDate(ctx context.Context, dateISO string) ([]ActiveReservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByToken(ctx context.Context, token string) (*ReservationView, error)
	ListOnDate(ctx context.Context, dateISO string) ([]ReservationListItem, error)
}

type TableReadStore interface {
	ListAll(ctx context.Context) ([]TableView, error)
}

type MenuReadStore interface {
	ListAvailable(ctx context.Context) ([]MenuItemView, error)
}

type PromotionReadStore interface {
	// FindByCode resolves a canonical code to its rule; KindNotFound for
	// unknown codes.
	FindByCode(ctx context.Context, code string) (*promotion.Promotion, error)
}

// BlobView is a stored proof-of-payment file, served back on export.
type BlobView struct {
	ID          uuid.UUID
	Name        string
	ContentType string
	Content     []byte
}

type BlobReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BlobView, error)
}

type StaffView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type StaffReadStore interface {
	// FindByEmail also returns the password hash; it never leaves the
	// usecase layer.
	FindByEmail(ctx context.Context, email string) (*StaffView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*StaffView, error)
}
