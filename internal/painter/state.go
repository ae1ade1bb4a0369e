package painter

// State is the verify/push lifecycle of a canvas.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateReadyToPush
	StateInvalid
	StatePushing
	StatePushSucceeded
	StatePushFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateReadyToPush:
		return "ready"
	case StateInvalid:
		return "invalid"
	case StatePushing:
		return "pushing"
	case StatePushSucceeded:
		return "pushed"
	case StatePushFailed:
		return "push_failed"
	default:
		return "unknown"
	}
}

// Kind selects how a status message is styled.
type Kind int

const (
	KindNone Kind = iota
	KindSuccess
	KindError
	KindPending
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindPending:
		return "pending"
	default:
		return "none"
	}
}

// Message is a status line. A zero Message is hidden.
type Message struct {
	Text string
	Kind Kind
}

// Visible reports whether the message should be shown.
func (m Message) Visible() bool {
	return m.Text != ""
}

// Status texts.
const (
	MsgInvalid    = "Invalid data. Please ensure at least 1 commit contains the darkest color."
	MsgProcessing = "Processing..."
	msgReady      = "%d commits ready to be pushed."
)
