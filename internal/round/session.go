package round

import (
	"math"
	"time"

	"github.com/iburimskiy/fitts/internal/config"
)

// Record is one completed round. ReactionTime is 0 when the round timed out.
type Record struct {
	ReactionTime float64 // milliseconds, 3 decimals
	Difficulty   float64 // 3 decimals
	Diameter     float64
}

// Session is the whole gameplay state. It is a plain value: Step returns a new one.
type Session struct {
	Phase      Phase
	Round      int
	Score      int
	Countdown  int
	Pointer    Point
	Target     Circle
	Difficulty float64

	records   []Record
	startedAt time.Time
	exported  bool
}

// NewSession returns a session at the start of round 0.
func NewSession() Session {
	return Session{
		Phase:   PhasePreRound,
		Pointer: Point{X: -100, Y: -100},
		records: make([]Record, 0, config.Rounds),
	}
}

// Records returns the completed rounds in order.
func (s Session) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// WithPointer returns s with the pointer moved to p.
func (s Session) WithPointer(p Point) Session {
	s.Pointer = p
	return s
}

// finishRound appends the round's record and advances to the next round or game over.
func (s Session) finishRound(reactionMs float64) Session {
	s.records = append(s.records, Record{
		ReactionTime: reactionMs,
		Difficulty:   round3(s.Difficulty),
		Diameter:     s.Target.Diameter,
	})
	if s.Round+1 < config.Rounds {
		s.Phase = PhasePreRound
	} else {
		s.Phase = PhaseGameOver
	}
	s.Round++
	return s
}

func round3(v float64) float64 {
	return math.Floor(v*1000+0.5) / 1000
}

func millis(d time.Duration) float64 {
	return round3(float64(d) / float64(time.Millisecond))
}
