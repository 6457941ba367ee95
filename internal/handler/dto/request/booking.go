package request

import (
	"tablebook/internal/domain/draft"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnknownAction = errs.New("unknown wizard action")

type StartFlowRequest struct {
	Channel string `json:"channel" binding:"required,oneof=dine_in pickup"`
}

type OptionRequest struct {
	Name            string `json:"name" binding:"required"`
	Choice          string `json:"choice" binding:"required"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
}

type CartLineRequest struct {
	ItemID         uuid.UUID       `json:"item_id" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	UnitPriceCents int64           `json:"unit_price_cents" binding:"min=0"`
	Quantity       int             `json:"quantity" binding:"min=1"`
	Options        []OptionRequest `json:"options,omitempty"`
}

// ActionRequest is the wire form of a wizard action; Type selects the
// variant and the matching payload fields apply.
type ActionRequest struct {
	Type string `json:"type" binding:"required"`

	Date      string           `json:"date,omitempty"`
	Time      string           `json:"time,omitempty"`
	PartySize int              `json:"party_size,omitempty"`
	TableID   *uuid.UUID       `json:"table_id,omitempty"`
	Line      *CartLineRequest `json:"line,omitempty"`
	ItemID    *uuid.UUID       `json:"item_id,omitempty"`
	Options   []OptionRequest  `json:"options,omitempty"`
	Quantity  int              `json:"quantity,omitempty"`
	Field     string           `json:"field,omitempty"`
	Value     string           `json:"value,omitempty"`
	Agreed    bool             `json:"agreed,omitempty"`
}

func (r ActionRequest) ToAction() (draft.Action, error) {
	switch r.Type {
	case "advance":
		return draft.Advance{}, nil
	case "retreat":
		return draft.Retreat{}, nil
	case "set_date":
		return draft.SetDate{DateISO: r.Date}, nil
	case "set_time":
		return draft.SetTime{TimeHHMM: r.Time}, nil
	case "set_party_size":
		return draft.SetPartySize{Size: r.PartySize}, nil
	case "select_table":
		if r.TableID == nil {
			return nil, ErrUnknownAction
		}
		return draft.SelectTable{TableID: *r.TableID}, nil
	case "deselect_table":
		return draft.DeselectTable{}, nil
	case "add_line":
		if r.Line == nil {
			return nil, ErrUnknownAction
		}
		return draft.AddLine{Line: r.Line.toCartLine()}, nil
	case "remove_line":
		if r.ItemID == nil {
			return nil, ErrUnknownAction
		}
		return draft.RemoveLine{ItemID: *r.ItemID, Options: toOptions(r.Options)}, nil
	case "set_line_quantity":
		if r.ItemID == nil {
			return nil, ErrUnknownAction
		}
		return draft.SetLineQuantity{ItemID: *r.ItemID, Options: toOptions(r.Options), Quantity: r.Quantity}, nil
	case "enter_checkout":
		return draft.EnterCheckout{}, nil
	case "exit_checkout":
		return draft.ExitCheckout{}, nil
	case "set_field":
		return draft.SetField{Name: r.Field, Value: r.Value}, nil
	case "set_agreed":
		return draft.SetAgreed{Agreed: r.Agreed}, nil
	case "clear_promotion":
		return draft.ClearPromotion{}, nil
	case "dismiss_promo_notice":
		return draft.DismissPromoNotice{}, nil
	case "reset":
		return draft.Reset{}, nil
	default:
		return nil, ErrUnknownAction
	}
}

func (r CartLineRequest) toCartLine() draft.CartLine {
	return draft.CartLine{
		ItemID:         r.ItemID,
		Name:           r.Name,
		UnitPriceCents: r.UnitPriceCents,
		Quantity:       r.Quantity,
		Options:        toOptions(r.Options),
	}
}

func toOptions(opts []OptionRequest) []reservation.Option {
	if len(opts) == 0 {
		return nil
	}
	out := make([]reservation.Option, len(opts))
	for i, o := range opts {
		out[i] = reservation.Option{
			Name:            o.Name,
			Choice:          o.Choice,
			PriceDeltaCents: o.PriceDeltaCents,
		}
	}
	return out
}

type ApplyPromotionRequest struct {
	Code string `json:"code" binding:"required"`
}
