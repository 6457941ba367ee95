package response

import (
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TableResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
}

type MenuItemResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	PriceCents   int64                 `json:"price_cents"`
	OptionGroups []OptionGroupResponse `json:"option_groups,omitempty"`
	Available    bool                  `json:"available"`
}

type OptionGroupResponse struct {
	Name    string                 `json:"name"`
	Choices []OptionChoiceResponse `json:"choices"`
}

type OptionChoiceResponse struct {
	Name            string `json:"name"`
	PriceDeltaCents int64  `json:"price_delta_cents"`
}

func ToTableListResponse(tables []queries.TableView) ([]TableResponse, error) {
	resp := make([]TableResponse, 0, len(tables))
	if err := copier.Copy(&resp, tables); err != nil {
		return nil, err
	}
	return resp, nil
}

func ToMenuListResponse(items []queries.MenuItemView) ([]MenuItemResponse, error) {
	resp := make([]MenuItemResponse, 0, len(items))
	if err := copier.Copy(&resp, items); err != nil {
		return nil, err
	}
	return resp, nil
}
