package payment

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the ledger state machine:
// pending → processing → {completed | failed | cancelled}, with pending
// allowed to jump straight to any terminal state. Terminal states are sticky.
// Same-status transitions are not moves; callers treat them as no-ops.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() || s == next {
		return false
	}
	switch s {
	case StatusPending:
		return next == StatusProcessing || next.IsTerminal()
	case StatusProcessing:
		return next.IsTerminal()
	default:
		return false
	}
}

// AllowedPredecessors lists the statuses from which next may be entered.
// The repository embeds this set in the conditional UPDATE's WHERE clause so
// legality and terminal-stickiness are checked at write time, not read time.
func AllowedPredecessors(next Status) []Status {
	switch {
	case next == StatusProcessing:
		return []Status{StatusPending}
	case next.IsTerminal():
		return []Status{StatusPending, StatusProcessing}
	default:
		return nil
	}
}

// Source identifies what produced a status transition.
type Source string

const (
	SourceCreated  Source = "created"
	SourceProvider Source = "provider"
	SourcePoll     Source = "poll"
	SourceOperator Source = "operator"
)
