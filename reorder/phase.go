package reorder

// Phase is the state of the long-press gesture driving a drag.
type Phase int

// Gesture phases as emitted by the gesture source.
const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseBegan:     "began",
	PhaseChanged:   "changed",
	PhaseEnded:     "ended",
	PhaseCancelled: "cancelled",
	PhaseFailed:    "failed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether the phase finishes a gesture.
func (p Phase) Terminal() bool {
	return p == PhaseEnded || p == PhaseCancelled || p == PhaseFailed
}
