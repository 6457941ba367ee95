package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidChannel    = errors.New("invalid channel")
	ErrTableRequired     = errors.New("dine-in reservation requires a table")
	ErrEmptyOrder        = errors.New("reservation requires at least one order line")
	ErrInvalidPartySize  = errors.New("party size must be at least 1")
	ErrNegativeDiscount  = errors.New("discount cannot be negative")
	ErrDiscountExceeds   = errors.New("discount cannot exceed subtotal")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Reservation is the permanent record a tracking token resolves to. It is
// created once in pending status and thereafter only transitions status;
// it is never deleted, only terminalized.
type Reservation struct {
	id            uuid.UUID
	channel       Channel
	tableID       *uuid.UUID
	slot          TimeSlot
	status        Status
	subtotal      Money
	discount      Money
	promotionID   *uuid.UUID
	lines         []OrderLine
	contact       Contact
	partySize     int
	note          Note
	trackingToken string
	proofRef      uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(
	channel Channel,
	tableID *uuid.UUID,
	slot TimeSlot,
	lines []OrderLine,
	discount Money,
	promotionID *uuid.UUID,
	contact Contact,
	partySize int,
	note Note,
	trackingToken string,
	proofRef uuid.UUID,
) (*Reservation, error) {
	if !channel.IsValid() {
		return nil, ErrInvalidChannel
	}
	if channel == ChannelDineIn && tableID == nil {
		return nil, ErrTableRequired
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}

	subtotal := NewMoney(0)
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	if discount.IsNegative() {
		return nil, ErrNegativeDiscount
	}
	if discount.Cents() > subtotal.Cents() {
		return nil, ErrDiscountExceeds
	}

	held := make([]OrderLine, len(lines))
	copy(held, lines)

	return &Reservation{
		id:            uuid.New(),
		channel:       channel,
		tableID:       tableID,
		slot:          slot,
		status:        StatusPending,
		subtotal:      subtotal,
		discount:      discount,
		promotionID:   promotionID,
		lines:         held,
		contact:       contact,
		partySize:     partySize,
		note:          note,
		trackingToken: trackingToken,
		proofRef:      proofRef,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	channel Channel,
	tableID *uuid.UUID,
	slot TimeSlot,
	status Status,
	subtotal, discount Money,
	promotionID *uuid.UUID,
	lines []OrderLine,
	contact Contact,
	partySize int,
	note Note,
	trackingToken string,
	proofRef uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		channel:       channel,
		tableID:       tableID,
		slot:          slot,
		status:        status,
		subtotal:      subtotal,
		discount:      discount,
		promotionID:   promotionID,
		lines:         lines,
		contact:       contact,
		partySize:     partySize,
		note:          note,
		trackingToken: trackingToken,
		proofRef:      proofRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Transition moves the reservation along its channel's lifecycle graph.
func (r *Reservation) Transition(to Status) error {
	if !CanTransition(r.channel, r.status, to) {
		return ErrInvalidTransition
	}
	r.status = to
	return nil
}

func (r *Reservation) IsActive() bool {
	return IsActive(r.status)
}

func (r *Reservation) Total() Money {
	return r.subtotal.Sub(r.discount)
}

func (r *Reservation) Lines() []OrderLine {
	lines := make([]OrderLine, len(r.lines))
	copy(lines, r.lines)
	return lines
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) Channel() Channel        { return r.channel }
func (r *Reservation) TableID() *uuid.UUID     { return r.tableID }
func (r *Reservation) Slot() TimeSlot          { return r.slot }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) Subtotal() Money         { return r.subtotal }
func (r *Reservation) Discount() Money         { return r.discount }
func (r *Reservation) PromotionID() *uuid.UUID { return r.promotionID }
func (r *Reservation) Contact() Contact        { return r.contact }
func (r *Reservation) PartySize() int          { return r.partySize }
func (r *Reservation) Note() Note              { return r.note }
func (r *Reservation) TrackingToken() string   { return r.trackingToken }
func (r *Reservation) ProofRef() uuid.UUID     { return r.proofRef }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
