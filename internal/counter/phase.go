package counter

// Phase is a position in a counter's run. It is derived from the value and
// the phase-one flag, never stored.
type Phase int

const (
	Idle Phase = iota
	CountingUp
	PhaseOneDone
	CountingDown
	Done
)

var phaseNames = [...]string{
	Idle:         "idle",
	CountingUp:   "counting_up",
	PhaseOneDone: "phase_one_done",
	CountingDown: "counting_down",
	Done:         "done",
}

func (p Phase) String() string {
	if p < Idle || p > Done {
		return "unknown"
	}
	return phaseNames[p]
}

func phaseOf(value int, phaseOneComplete bool) Phase {
	switch {
	case !phaseOneComplete && value == 0:
		return Idle
	case !phaseOneComplete:
		return CountingUp
	case value == Max:
		return PhaseOneDone
	case value > 0:
		return CountingDown
	default:
		return Done
	}
}
