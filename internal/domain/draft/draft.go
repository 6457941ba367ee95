// Package draft models the ephemeral in-progress booking a customer builds
// in the wizard. A Draft is never persisted; it is assembled through the
// reducer and handed whole to the commit protocol.
package draft

import (
	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
)

type Step int

const (
	StepSchedule Step = iota // date / time / party size (or pickup slot)
	StepTable                // dine-in table selection
	StepFood                 // cart building; checkout is a sub-mode here
)

const lastStep = StepFood

// Form field names the commit protocol reads back out.
const (
	FieldName  = "name"
	FieldPhone = "phone"
	FieldEmail = "email"
	FieldNote  = "note"
)

// CartLine is one cart entry. Lines for the same item with different
// selected-option sets are distinct entries.
type CartLine struct {
	ItemID         uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int
	Options        []reservation.Option
}

func (l CartLine) Key() string {
	return l.ItemID.String() + "|" + reservation.OptionsKey(l.Options)
}

func (l CartLine) TotalCents() int64 {
	unit := l.UnitPriceCents
	for _, o := range l.Options {
		unit += o.PriceDeltaCents
	}
	return unit * int64(l.Quantity)
}

// PromoSnapshot is the applied promotion as last validated. The discount is
// only trustworthy for the subtotal it was computed against; any cart change
// forces revalidation.
type PromoSnapshot struct {
	PromotionID   uuid.UUID
	Code          string
	DiscountCents int64
}

// ProofFile is the pending proof-of-payment attachment, held in the draft
// until the commit protocol uploads it.
type ProofFile struct {
	Name        string
	ContentType string
	Content     []byte
}

type Draft struct {
	Channel   reservation.Channel
	Step      Step
	Direction int // +1 forward / -1 backward; animation hint only

	DateISO   string
	TimeHHMM  string
	PartySize int
	TableID   *uuid.UUID

	Cart []CartLine

	Fields map[string]string
	Agreed bool
	Proof  *ProofFile

	Promo       *PromoSnapshot
	PromoNotice string // dismissible, set when a stale promotion was cleared

	InCheckout bool
	Submitting bool
}

func New(channel reservation.Channel) Draft {
	return Draft{
		Channel:   channel,
		Step:      StepSchedule,
		Direction: 1,
		PartySize: 1,
		Fields:    map[string]string{},
	}
}

func (d Draft) SubtotalCents() int64 {
	var total int64
	for _, l := range d.Cart {
		total += l.TotalCents()
	}
	return total
}

func (d Draft) DiscountCents() int64 {
	if d.Promo == nil {
		return 0
	}
	return d.Promo.DiscountCents
}

func (d Draft) TotalCents() int64 {
	return d.SubtotalCents() - d.DiscountCents()
}

func (d Draft) Field(name string) string {
	return d.Fields[name]
}

// clone deep-copies the mutable collections so Reduce can return a value
// without aliasing the previous draft.
func (d Draft) clone() Draft {
	out := d
	out.Cart = make([]CartLine, len(d.Cart))
	copy(out.Cart, d.Cart)
	out.Fields = make(map[string]string, len(d.Fields))
	for k, v := range d.Fields {
		out.Fields[k] = v
	}
	if d.TableID != nil {
		id := *d.TableID
		out.TableID = &id
	}
	if d.Promo != nil {
		p := *d.Promo
		out.Promo = &p
	}
	return out
}
