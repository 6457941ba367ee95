package reservation

// The lifecycle tables below are the single source of truth for which states
// exist per channel, how staff may move between them, and which states count
// as "active" (occupying a table / visible in a customer's current orders).
//
// Dine-in: pending -> confirmed -> seated -> completed
// Pickup:  pending -> confirmed -> preparing -> ready -> completed
// Cancellation-style exits are reachable from every non-terminal state.

var dineInPipeline = []Status{StatusPending, StatusConfirmed, StatusSeated, StatusCompleted}

var pickupPipeline = []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted}

var dineInExits = []Status{StatusCancelled}

var pickupExits = []Status{StatusCancelled, StatusRejected, StatusVoid}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected, StatusVoid:
		return true
	default:
		return false
	}
}

// IsActive reports whether s occupies its table for availability purposes.
func IsActive(s Status) bool {
	return !IsTerminal(s)
}

func pipeline(c Channel) []Status {
	if c == ChannelPickup {
		return pickupPipeline
	}
	return dineInPipeline
}

func exits(c Channel) []Status {
	if c == ChannelPickup {
		return pickupExits
	}
	return dineInExits
}

// StatusesFor lists every status the channel's graph contains.
func StatusesFor(c Channel) []Status {
	all := make([]Status, 0, len(pipeline(c))+len(exits(c)))
	all = append(all, pipeline(c)...)
	all = append(all, exits(c)...)
	return all
}

// Ordinal is the display position of s in the channel's forward pipeline,
// used for progress rendering. Cancellation-style states return -1.
func Ordinal(c Channel, s Status) int {
	for i, st := range pipeline(c) {
		if st == s {
			return i
		}
	}
	return -1
}

// NextStatuses returns the statuses staff may move a reservation in state
// `from` to. Terminal states have no successors.
func NextStatuses(c Channel, from Status) []Status {
	if IsTerminal(from) {
		return nil
	}

	var next []Status
	pl := pipeline(c)
	for i, st := range pl {
		if st == from && i+1 < len(pl) {
			next = append(next, pl[i+1])
		}
	}
	next = append(next, exits(c)...)
	return next
}

func CanTransition(c Channel, from, to Status) bool {
	for _, st := range NextStatuses(c, from) {
		if st == to {
			return true
		}
	}
	return false
}

// CanExportProof gates proof-of-payment download: allowed once the
// reservation has left pending (staff have confirmed or moved it further).
func CanExportProof(s Status) bool {
	return s != StatusPending
}
