package draft

import "tablebook/internal/domain/reservation"

// Reduce applies one action to a draft and returns the next draft. It is
// pure: the input draft is never mutated, and unknown actions fall through
// unchanged.
func Reduce(d Draft, action Action) Draft {
	next := d.clone()

	switch a := action.(type) {
	case Advance:
		next.Direction = 1
		if next.Step < lastStep {
			next.Step = nextStep(next)
		}

	case Retreat:
		next.Direction = -1
		if next.InCheckout {
			next.InCheckout = false
			break
		}
		if next.Step > StepSchedule {
			next.Step = prevStep(next)
		}

	case SetDate:
		next.DateISO = a.DateISO
		next.TimeHHMM = ""

	case SetTime:
		next.TimeHHMM = a.TimeHHMM

	case SetPartySize:
		if a.Size >= 1 {
			next.PartySize = a.Size
		}

	case SelectTable:
		id := a.TableID
		next.TableID = &id

	case DeselectTable:
		next.TableID = nil

	case AddLine:
		next.Cart = addLine(next.Cart, a.Line)

	case RemoveLine:
		next.Cart = removeLine(next.Cart, lineKey(a.ItemID.String(), a.Options))

	case SetLineQuantity:
		key := lineKey(a.ItemID.String(), a.Options)
		if a.Quantity < 1 {
			next.Cart = removeLine(next.Cart, key)
			break
		}
		for i, l := range next.Cart {
			if l.Key() == key {
				next.Cart[i].Quantity = a.Quantity
			}
		}

	case EnterCheckout:
		if next.Step == lastStep {
			next.InCheckout = true
		}

	case ExitCheckout:
		next.InCheckout = false

	case SetField:
		next.Fields[a.Name] = a.Value

	case SetAgreed:
		next.Agreed = a.Agreed

	case AttachProof:
		proof := a.Proof
		next.Proof = &proof

	case ApplyPromotion:
		snapshot := a.Snapshot
		next.Promo = &snapshot
		next.PromoNotice = ""

	case ClearPromotion:
		next.Promo = nil
		next.PromoNotice = a.Reason

	case DismissPromoNotice:
		next.PromoNotice = ""

	case BeginSubmit:
		next.Submitting = true

	case EndSubmit:
		next.Submitting = false

	case Reset:
		return New(d.Channel)
	}

	return next
}

// Pickup has no table step.
func nextStep(d Draft) Step {
	if d.Step == StepSchedule && d.Channel == reservation.ChannelPickup {
		return StepFood
	}
	return d.Step + 1
}

func prevStep(d Draft) Step {
	if d.Step == StepFood && d.Channel == reservation.ChannelPickup {
		return StepSchedule
	}
	return d.Step - 1
}

func lineKey(itemID string, opts []reservation.Option) string {
	return itemID + "|" + reservation.OptionsKey(opts)
}

func addLine(cart []CartLine, line CartLine) []CartLine {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i, l := range cart {
		if l.Key() == line.Key() {
			cart[i].Quantity += line.Quantity
			return cart
		}
	}
	return append(cart, line)
}

func removeLine(cart []CartLine, key string) []CartLine {
	out := cart[:0]
	for _, l := range cart {
		if l.Key() != key {
			out = append(out, l)
		}
	}
	return out
}
