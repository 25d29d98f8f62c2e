package round

import (
	"time"

	"github.com/iburimskiy/fitts/internal/config"
)

// Env supplies the nondeterministic inputs of a step.
type Env struct {
	Rand Rand
	Now  func() time.Time
}

type transition func(s Session, env Env) (Session, Outcome)

// transitions is the full phase x event table. Empty cells are no-ops.
var transitions = [phaseCount][eventCount]transition{
	PhasePreRound: {
		EventClick: startCountdown,
	},
	PhaseWaiting: {
		EventTick: countdownTick,
	},
	PhasePlaying: {
		EventTick:  responseTick,
		EventClick: targetClick,
	},
	PhaseGameOver: {
		EventTick: finish,
	},
}

// Step applies ev to s and returns the resulting session.
func Step(s Session, ev Event, env Env) (Session, Outcome) {
	if s.Phase >= phaseCount || ev >= eventCount {
		return s, OutcomeNone
	}
	t := transitions[s.Phase][ev]
	if t == nil {
		return s, OutcomeNone
	}
	return t(s, env)
}

func startCountdown(s Session, env Env) (Session, Outcome) {
	if !Inside(s.Pointer, Anchor) {
		return s, OutcomeNone
	}
	s.Phase = PhaseWaiting
	s.Countdown = waitFrames(env.Rand)
	return s, OutcomeArmed
}

func countdownTick(s Session, env Env) (Session, Outcome) {
	if s.Countdown > 0 {
		s.Countdown--
		return s, OutcomeNone
	}
	s.Phase = PhasePlaying
	s.Countdown = config.ResponseFrames
	s.startedAt = env.Now()
	s.Target, s.Difficulty = GenerateTarget(s.Round, env.Rand)
	return s, OutcomeTargetShown
}

func responseTick(s Session, _ Env) (Session, Outcome) {
	if s.Countdown > 0 {
		s.Countdown--
		return s, OutcomeNone
	}
	return s.finishRound(0), OutcomeTimeout
}

func targetClick(s Session, env Env) (Session, Outcome) {
	if !Inside(s.Pointer, s.Target) {
		return s, OutcomeNone
	}
	s.Score++
	return s.finishRound(millis(env.Now().Sub(s.startedAt))), OutcomeHit
}

func finish(s Session, _ Env) (Session, Outcome) {
	if s.exported {
		return s, OutcomeNone
	}
	s.exported = true
	return s, OutcomeFinished
}
