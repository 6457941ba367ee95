package reservation

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("order line quantity must be at least 1")

// OrderLine captures one cart entry at the moment of commit. The unit price
// is frozen here: later menu price changes never rewrite history.
type OrderLine struct {
	menuItemID uuid.UUID
	name       string
	quantity   int
	unitPrice  Money
	options    []Option
}

func NewOrderLine(menuItemID uuid.UUID, name string, quantity int, unitPrice Money, options []Option) (OrderLine, error) {
	if quantity < 1 {
		return OrderLine{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return OrderLine{}, errors.New("order line price cannot be negative")
	}

	opts := make([]Option, len(options))
	copy(opts, options)

	return OrderLine{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		options:    opts,
	}, nil
}

func (l OrderLine) MenuItemID() uuid.UUID { return l.menuItemID }
func (l OrderLine) Name() string          { return l.name }
func (l OrderLine) Quantity() int         { return l.quantity }
func (l OrderLine) UnitPrice() Money      { return l.unitPrice }

func (l OrderLine) Options() []Option {
	opts := make([]Option, len(l.options))
	copy(opts, l.options)
	return opts
}

// LineTotal includes per-option price deltas.
func (l OrderLine) LineTotal() Money {
	unit := l.unitPrice.Cents()
	for _, o := range l.options {
		unit += o.PriceDeltaCents
	}
	return NewMoney(unit * int64(l.quantity))
}
