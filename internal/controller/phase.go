package controller

// Phase is the state of one feature's request cycle: Idle -> Pending -> Idle
type Phase int

const (
	Idle Phase = iota
	Pending
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	default:
		return "unknown"
	}
}
