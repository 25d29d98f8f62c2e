package round

// Phase is the gameplay state of a session.
type Phase uint8

const (
	// PhasePreRound waits for a click on the anchor circle.
	PhasePreRound Phase = iota
	// PhaseWaiting counts down before the target appears; clicks are ignored.
	PhaseWaiting
	// PhasePlaying shows the target until it is hit or the response window closes.
	PhasePlaying
	// PhaseGameOver is terminal.
	PhaseGameOver

	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhasePreRound:
		return "PREROUND"
	case PhaseWaiting:
		return "WAITING"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAMEOVER"
	}
	return "UNKNOWN"
}

// Event drives the state machine.
type Event uint8

const (
	EventTick Event = iota
	EventClick

	eventCount
)

// Outcome reports what a single Step did.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	// OutcomeArmed: the anchor was clicked and the countdown started.
	OutcomeArmed
	// OutcomeTargetShown: the countdown elapsed and a target was placed.
	OutcomeTargetShown
	OutcomeHit
	OutcomeTimeout
	// OutcomeFinished fires exactly once, on the first tick spent in PhaseGameOver.
	OutcomeFinished
)
