package response

import (
	"tablebook/internal/domain/draft"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var stepNames = map[draft.Step]string{
	draft.StepSchedule: "schedule",
	draft.StepTable:    "table",
	draft.StepFood:     "food",
}

type DraftResponse struct {
	Channel   string `json:"channel"`
	Step      string `json:"step"`
	Direction int    `json:"direction"`

	Date      string     `json:"date,omitempty"`
	Time      string     `json:"time,omitempty"`
	PartySize int        `json:"party_size"`
	TableID   *uuid.UUID `json:"table_id,omitempty"`

	Cart []CartLineResponse `json:"cart"`

	Fields   map[string]string `json:"fields"`
	Agreed   bool              `json:"agreed"`
	HasProof bool              `json:"has_proof"`

	Promo       *PromoSnapshotResponse `json:"promo,omitempty"`
	PromoNotice string                 `json:"promo_notice,omitempty"`

	InCheckout bool `json:"in_checkout"`
	Submitting bool `json:"submitting"`

	SubtotalCents int64 `json:"subtotal_cents"`
	DiscountCents int64 `json:"discount_cents"`
	TotalCents    int64 `json:"total_cents"`
}

type CartLineResponse struct {
	ItemID         uuid.UUID        `json:"item_id"`
	Name           string           `json:"name"`
	UnitPriceCents int64            `json:"unit_price_cents"`
	Quantity       int              `json:"quantity"`
	Options        []OptionResponse `json:"options,omitempty"`
	TotalCents     int64            `json:"total_cents"`
}

type PromoSnapshotResponse struct {
	PromotionID   uuid.UUID `json:"promotion_id"`
	Code          string    `json:"code"`
	DiscountCents int64     `json:"discount_cents"`
}

type StartFlowResponse struct {
	SessionID string        `json:"session_id"`
	Draft     DraftResponse `json:"draft"`
}

type ApplyPromotionResponse struct {
	Valid         bool          `json:"valid"`
	Reason        string        `json:"reason,omitempty"`
	Code          string        `json:"code,omitempty"`
	DiscountCents int64         `json:"discount_cents"`
	Draft         DraftResponse `json:"draft"`
}

func ToDraftResponse(d draft.Draft) DraftResponse {
	resp := DraftResponse{
		Channel:       string(d.Channel),
		Step:          stepNames[d.Step],
		Direction:     d.Direction,
		Date:          d.DateISO,
		Time:          d.TimeHHMM,
		PartySize:     d.PartySize,
		TableID:       d.TableID,
		Cart:          toCartLines(d.Cart),
		Fields:        d.Fields,
		Agreed:        d.Agreed,
		HasProof:      d.Proof != nil,
		PromoNotice:   d.PromoNotice,
		InCheckout:    d.InCheckout,
		Submitting:    d.Submitting,
		SubtotalCents: d.SubtotalCents(),
		DiscountCents: d.DiscountCents(),
		TotalCents:    d.TotalCents(),
	}
	if d.Promo != nil {
		resp.Promo = &PromoSnapshotResponse{
			PromotionID:   d.Promo.PromotionID,
			Code:          d.Promo.Code,
			DiscountCents: d.Promo.DiscountCents,
		}
	}
	return resp
}

func ToApplyPromotionResponse(result *queries.PromotionResult, d draft.Draft) ApplyPromotionResponse {
	return ApplyPromotionResponse{
		Valid:         result.Valid,
		Reason:        result.Reason,
		Code:          result.CanonicalCode,
		DiscountCents: result.DiscountCents,
		Draft:         ToDraftResponse(d),
	}
}

func toCartLines(lines []draft.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		var opts []OptionResponse
		if len(l.Options) > 0 {
			opts = make([]OptionResponse, 0, len(l.Options))
			if err := copier.Copy(&opts, l.Options); err != nil {
				opts = nil
			}
		}
		out = append(out, CartLineResponse{
			ItemID:         l.ItemID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
			Options:        opts,
			TotalCents:     l.TotalCents(),
		})
	}
	return out
}
