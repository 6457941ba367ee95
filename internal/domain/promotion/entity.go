package promotion

import (
	"errors"
	"strings"
	"time"

	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrInvalidDiscountType  = errors.New("invalid discount type")
	ErrInvalidDiscountValue = errors.New("invalid discount value")
)

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Reason explains why a code was rejected. Reasons are returned as data, not
// raised as errors: an invalid promotion never blocks checkout.
type Reason string

const (
	ReasonUnknownCode     Reason = "unknown code"
	ReasonNotYetValid     Reason = "code is not active yet"
	ReasonExpired         Reason = "code has expired"
	ReasonChannelMismatch Reason = "code is not valid for this order type"
	ReasonBelowMinimum    Reason = "cart is below the code's minimum spend"
	ReasonUsageExhausted  Reason = "code has reached its usage limit"
)

// Validation is the discriminated result of checking a code against a cart.
type Validation struct {
	Valid         bool
	Reason        Reason
	DiscountCents int64
}

func Rejected(reason Reason) Validation {
	return Validation{Valid: false, Reason: reason}
}

// CanonicalCode upper-cases and trims a user-entered code; lookups and
// comparisons only ever see the canonical form.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Promotion struct {
	id               uuid.UUID
	code             string
	discountType     DiscountType
	discountValue    int64
	minSubtotalCents int64
	channels         []reservation.Channel
	validFrom        *time.Time
	validTo          *time.Time
	usageLimit       *int32
	usedCount        int32
}

func NewPromotion(
	id uuid.UUID,
	code string,
	discountType DiscountType,
	discountValue int64,
	minSubtotalCents int64,
	channels []reservation.Channel,
	validFrom, validTo *time.Time,
	usageLimit *int32,
	usedCount int32,
) (*Promotion, error) {
	switch discountType {
	case DiscountPercent:
		if discountValue <= 0 || discountValue > 100 {
			return nil, ErrInvalidDiscountValue
		}
	case DiscountFixed:
		if discountValue <= 0 {
			return nil, ErrInvalidDiscountValue
		}
	default:
		return nil, ErrInvalidDiscountType
	}

	return &Promotion{
		id:               id,
		code:             CanonicalCode(code),
		discountType:     discountType,
		discountValue:    discountValue,
		minSubtotalCents: minSubtotalCents,
		channels:         channels,
		validFrom:        validFrom,
		validTo:          validTo,
		usageLimit:       usageLimit,
		usedCount:        usedCount,
	}, nil
}

// Validate checks every applicability constraint against the given subtotal
// and channel and computes the discount. The discount is a function of the
// subtotal, so this must be re-run whenever the cart changes; a cached amount
// is never trustworthy.
func (p *Promotion) Validate(subtotalCents int64, ch reservation.Channel, now time.Time) Validation {
	if subtotalCents < 0 {
		subtotalCents = 0
	}
	if p.validFrom != nil && now.Before(*p.validFrom) {
		return Rejected(ReasonNotYetValid)
	}
	if p.validTo != nil && now.After(*p.validTo) {
		return Rejected(ReasonExpired)
	}
	if !p.eligibleFor(ch) {
		return Rejected(ReasonChannelMismatch)
	}
	if subtotalCents < p.minSubtotalCents {
		return Rejected(ReasonBelowMinimum)
	}
	if p.usageLimit != nil && p.usedCount >= *p.usageLimit {
		return Rejected(ReasonUsageExhausted)
	}

	return Validation{Valid: true, DiscountCents: p.discountFor(subtotalCents)}
}

func (p *Promotion) discountFor(subtotalCents int64) int64 {
	var d int64
	switch p.discountType {
	case DiscountFixed:
		d = p.discountValue
	case DiscountPercent:
		// round half up
		d = (subtotalCents*p.discountValue + 50) / 100
	}
	if d > subtotalCents {
		d = subtotalCents
	}
	if d < 0 {
		d = 0
	}
	return d
}

// Empty channel list means valid on every channel.
func (p *Promotion) eligibleFor(ch reservation.Channel) bool {
	if len(p.channels) == 0 {
		return true
	}
	for _, c := range p.channels {
		if c == ch {
			return true
		}
	}
	return false
}

func (p *Promotion) ID() uuid.UUID              { return p.id }
func (p *Promotion) Code() string               { return p.code }
func (p *Promotion) Type() DiscountType         { return p.discountType }
func (p *Promotion) Value() int64               { return p.discountValue }
func (p *Promotion) MinSubtotalCents() int64    { return p.minSubtotalCents }
