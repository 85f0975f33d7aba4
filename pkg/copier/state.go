package copier

// Phase names the logical state a controller is in
type Phase int

const (
	// PhaseIdle: nothing copied, no error
	PhaseIdle Phase = iota
	// PhaseCopied: the last copy succeeded and the reset delay is running
	PhaseCopied
	// PhaseStale: the reset delay elapsed but the copied text is still known
	PhaseStale
	// PhaseFailed: the last copy or clear failed
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseCopied:
		return "copied"
	case PhaseStale:
		return "stale"
	case PhaseFailed:
		return "failed"
	}
	return "idle"
}

// State is a snapshot of a controller's observable fields
type State struct {
	Copied bool
	// CopiedText is only meaningful when HasText is true
	CopiedText string
	HasText    bool
	Err        error
	Supported  bool
}

// Phase derives the logical state from the snapshot
func (s State) Phase() Phase {
	switch {
	case s.Err != nil:
		return PhaseFailed
	case s.Copied:
		return PhaseCopied
	case s.HasText:
		return PhaseStale
	}
	return PhaseIdle
}
