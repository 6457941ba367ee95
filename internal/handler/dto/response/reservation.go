package response

import (
	"time"

	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID            uuid.UUID           `json:"id"`
	Channel       string              `json:"channel"`
	TableID       *uuid.UUID          `json:"table_id,omitempty"`
	TableName     *string             `json:"table_name,omitempty"`
	StartAt       time.Time           `json:"start_at"`
	EndAt         time.Time           `json:"end_at"`
	Status        string              `json:"status"`
	SubtotalCents int64               `json:"subtotal_cents"`
	DiscountCents int64               `json:"discount_cents"`
	TotalCents    int64               `json:"total_cents"`
	PromoCode     *string             `json:"promo_code,omitempty"`
	Lines         []OrderLineResponse `json:"lines"`
	ContactName   string              `json:"contact_name"`
	ContactPhone  string              `json:"contact_phone"`
	PartySize     int                 `json:"party_size"`
	Note          *string             `json:"note,omitempty"`
	TrackingToken string              `json:"tracking_token"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type OrderLineResponse struct {
	MenuItemID     uuid.UUID        `json:"menu_item_id"`
	Name           string           `json:"name"`
	Quantity       int              `json:"quantity"`
	UnitPriceCents int64            `json:"unit_price_cents"`
	Options        []OptionResponse `json:"options,omitempty"`
}

type OptionResponse struct {
	Name            string `json:"name"`
	Choice          string `json:"choice"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
}

type ReservationListItemResponse struct {
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

func ToReservationResponse(view *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func ToReservationListResponse(items []queries.ReservationListItem) ([]ReservationListItemResponse, error) {
	resp := make([]ReservationListItemResponse, 0, len(items))
	if err := copier.Copy(&resp, items); err != nil {
		return nil, err
	}
	return resp, nil
}
