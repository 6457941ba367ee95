package draft

import (
	"tablebook/internal/domain/reservation"

	"github.com/google/uuid"
)

// Action is the sealed union of wizard events. Views never mutate a Draft
// directly; every change goes through Reduce with one of these.
type Action interface {
	isAction()
}

type Advance struct{}

type Retreat struct{}

// SetDate also clears any selected time: slots for the old date are
// meaningless on the new one.
type SetDate struct{ DateISO string }

type SetTime struct{ TimeHHMM string }

type SetPartySize struct{ Size int }

type SelectTable struct{ TableID uuid.UUID }

type DeselectTable struct{}

// AddLine merges into an existing cart line when the item and option set
// match; otherwise it appends a new line.
type AddLine struct{ Line CartLine }

type RemoveLine struct {
	ItemID  uuid.UUID
	Options []reservation.Option
}

// SetLineQuantity with a quantity below 1 removes the line.
type SetLineQuantity struct {
	ItemID   uuid.UUID
	Options  []reservation.Option
	Quantity int
}

type EnterCheckout struct{}

type ExitCheckout struct{}

type SetField struct{ Name, Value string }

type SetAgreed struct{ Agreed bool }

type AttachProof struct{ Proof ProofFile }

type ApplyPromotion struct{ Snapshot PromoSnapshot }

// ClearPromotion records why the snapshot was dropped; the UI shows the
// reason as a dismissible notice.
type ClearPromotion struct{ Reason string }

type DismissPromoNotice struct{}

type BeginSubmit struct{}

type EndSubmit struct{}

// Reset returns to a fresh draft for the same channel. Loaded reference data
// (menu, tables, settings) lives outside the draft and survives.
type Reset struct{}

func (Advance) isAction()            {}
func (Retreat) isAction()            {}
func (SetDate) isAction()            {}
func (SetTime) isAction()            {}
func (SetPartySize) isAction()       {}
func (SelectTable) isAction()        {}
func (DeselectTable) isAction()      {}
func (AddLine) isAction()            {}
func (RemoveLine) isAction()         {}
func (SetLineQuantity) isAction()    {}
func (EnterCheckout) isAction()      {}
func (ExitCheckout) isAction()       {}
func (SetField) isAction()           {}
func (SetAgreed) isAction()          {}
func (AttachProof) isAction()        {}
func (ApplyPromotion) isAction()     {}
func (ClearPromotion) isAction()     {}
func (DismissPromoNotice) isAction() {}
func (BeginSubmit) isAction()        {}
func (EndSubmit) isAction()          {}
func (Reset) isAction()              {}
