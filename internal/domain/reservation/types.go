package reservation

// Channel is the service channel a reservation was placed through. Each
// channel has its own default service duration and status pipeline.
type Channel string

const (
	ChannelDineIn Channel = "dine_in"
	ChannelPickup Channel = "pickup"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelDineIn, ChannelPickup:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
	StatusVoid      Status = "void"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusSeated, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled, StatusRejected, StatusVoid:
		return true
	default:
		return false
	}
}
