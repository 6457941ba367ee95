package table

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidCapacity = errors.New("table capacity must be at least 1")

// Table carries only what booking logic consumes: identity and capacity.
// Floor-plan position is display-only data owned by the layout editor.
type Table struct {
	id       uuid.UUID
	name     string
	capacity int
}

func NewTable(id uuid.UUID, name string, capacity int) (*Table, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Table{id: id, name: name, capacity: capacity}, nil
}

func (t *Table) Fits(partySize int) bool {
	return partySize <= t.capacity
}

func (t *Table) ID() uuid.UUID { return t.id }
func (t *Table) Name() string  { return t.name }
func (t *Table) Capacity() int { return t.capacity }
