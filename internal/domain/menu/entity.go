package menu

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("menu price cannot be negative")

type Choice struct {
	Name            string
	PriceDeltaCents int64
}

type OptionGroup struct {
	Name    string
	Choices []Choice
}

// Item is the menu's current offer. Order lines capture its price at commit
// time; changing an item later never rewrites existing reservations.
type Item struct {
	id           uuid.UUID
	name         string
	priceCents   int64
	optionGroups []OptionGroup
	available    bool
}

func NewItem(id uuid.UUID, name string, priceCents int64, optionGroups []OptionGroup, available bool) (*Item, error) {
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Item{
		id:           id,
		name:         name,
		priceCents:   priceCents,
		optionGroups: optionGroups,
		available:    available,
	}, nil
}

func (i *Item) ID() uuid.UUID               { return i.id }
func (i *Item) Name() string                { return i.name }
func (i *Item) PriceCents() int64           { return i.priceCents }
func (i *Item) OptionGroups() []OptionGroup { return i.optionGroups }
func (i *Item) IsAvailable() bool           { return i.available }
