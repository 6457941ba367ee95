package reservation

import (
	"errors"
	"sort"
	"strings"
	"time"
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, errors.New("start time must be before end time")
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

type Contact struct {
	name  string
	phone string
	email string
}

func NewContact(name, phone, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return Contact{}, errors.New("contact name and phone are required")
	}
	return Contact{name: name, phone: phone, email: strings.TrimSpace(email)}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
func (c Contact) Email() string { return c.email }

// Option is one selected variant on an order line (doneness, add-on, ...).
type Option struct {
	Name            string
	Choice          string
	PriceDeltaCents int64
}

// OptionsKey canonicalizes a selected-option set so that cart lines for the
// same menu item with different options stay distinct, while option order
// does not matter.
func OptionsKey(opts []Option) string {
	if len(opts) == 0 {
		return ""
	}
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = o.Name + "=" + o.Choice
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}
