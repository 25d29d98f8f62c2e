package round

import (
	"math"
	"testing"

	"github.com/iburimskiy/fitts/internal/config"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	if s.Phase != PhasePreRound || s.Round != 0 || s.Score != 0 {
		t.Fatalf("unexpected initial session: %+v", s)
	}
	if len(s.Records()) != 0 {
		t.Fatalf("expected no records, got %d", len(s.Records()))
	}
	if Inside(s.Pointer, Anchor) {
		t.Fatal("initial pointer should be outside the anchor")
	}
}

func TestPreRoundClickOutsideAnchorIsIgnored(t *testing.T) {
	s := NewSession().WithPointer(Point{X: 16, Y: 0})
	next, out := Step(s, EventClick, Env{Rand: &seqRand{vals: []float64{0}}})
	if out != OutcomeNone || next.Phase != PhasePreRound {
		t.Fatalf("got phase %v outcome %v, want PREROUND/none", next.Phase, out)
	}
}

func TestPreRoundTickDoesNothing(t *testing.T) {
	s := NewSession()
	next, out := Step(s, EventTick, Env{})
	if out != OutcomeNone || next.Phase != PhasePreRound || next.Countdown != 0 {
		t.Fatalf("tick in PREROUND changed state: %+v", next)
	}
}

func TestAnchorClickStartsCountdown(t *testing.T) {
	s := NewSession().WithPointer(Point{X: 15, Y: 0})
	next, out := Step(s, EventClick, Env{Rand: &seqRand{vals: []float64{0.5}}})
	if out != OutcomeArmed || next.Phase != PhaseWaiting {
		t.Fatalf("got phase %v outcome %v, want WAITING/armed", next.Phase, out)
	}
	if next.Countdown != 120 {
		t.Fatalf("Countdown = %d, want 120", next.Countdown)
	}
}

func TestWaitingIgnoresClicks(t *testing.T) {
	h := newHarness(0)
	h.ctrl.MovePointer(Point{})
	h.ctrl.Click()
	before := h.ctrl.Session()
	if out := h.ctrl.Click(); out != OutcomeNone {
		t.Fatalf("click while waiting: outcome %v", out)
	}
	after := h.ctrl.Session()
	if after.Phase != PhaseWaiting || after.Countdown != before.Countdown {
		t.Fatalf("click while waiting changed state: %+v", after)
	}
}

func TestCountdownElapsesIntoPlaying(t *testing.T) {
	h := newHarness(0, 0, 0)
	h.ctrl.MovePointer(Point{})
	h.ctrl.Click()
	if got := h.ctrl.Session().Countdown; got != 60 {
		t.Fatalf("Countdown = %d, want 60", got)
	}
	for i := 0; i < 60; i++ {
		if f := h.tick(); f.Outcome != OutcomeNone {
			t.Fatalf("tick %d: outcome %v", i, f.Outcome)
		}
	}
	if h.ctrl.Session().Phase != PhaseWaiting {
		t.Fatal("target appeared too early")
	}
	f := h.tick()
	if f.Outcome != OutcomeTargetShown {
		t.Fatalf("outcome %v, want OutcomeTargetShown", f.Outcome)
	}
	s := h.ctrl.Session()
	if s.Phase != PhasePlaying || s.Countdown != config.ResponseFrames {
		t.Fatalf("got phase %v countdown %d", s.Phase, s.Countdown)
	}
	wantX := (math.Pow(2, 1.7) - 1) * 10
	if s.Target.Diameter != 10 || math.Abs(s.Target.Center.X-wantX) > 1e-9 || s.Target.Center.Y != 0 {
		t.Fatalf("target = %+v, want diameter 10 at (%v, 0)", s.Target, wantX)
	}
}

func TestMissClickDuringPlayingIsIgnored(t *testing.T) {
	h := newHarness(0, 0, 0)
	h.showTarget(t)
	h.ctrl.MovePointer(Point{X: -200, Y: -200})
	if out := h.ctrl.Click(); out != OutcomeNone {
		t.Fatalf("miss click outcome %v", out)
	}
	s := h.ctrl.Session()
	if s.Phase != PhasePlaying || s.Score != 0 || s.Round != 0 {
		t.Fatalf("miss click changed state: %+v", s)
	}
}

func TestHitAfterFortyTwoFrames(t *testing.T) {
	h := newHarness(0, 0, 0)
	h.showTarget(t)
	for i := 0; i < 42; i++ {
		h.tick()
	}
	h.ctrl.MovePointer(h.ctrl.Session().Target.Center)
	if out := h.ctrl.Click(); out != OutcomeHit {
		t.Fatalf("outcome %v, want OutcomeHit", out)
	}

	s := h.ctrl.Session()
	if s.Score != 1 || s.Round != 1 || s.Phase != PhasePreRound {
		t.Fatalf("after hit: score %d round %d phase %v", s.Score, s.Round, s.Phase)
	}
	recs := s.Records()
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if math.Abs(recs[0].ReactionTime-700) > 0.01 {
		t.Errorf("ReactionTime = %v, want ~700", recs[0].ReactionTime)
	}
	if recs[0].ReactionTime != math.Round(recs[0].ReactionTime*1000)/1000 {
		t.Errorf("ReactionTime %v not rounded to 3 decimals", recs[0].ReactionTime)
	}
	if recs[0].Difficulty != 1.7 || recs[0].Diameter != 10 {
		t.Errorf("record = %+v, want difficulty 1.7 diameter 10", recs[0])
	}
}

func TestTimeoutRecordsZero(t *testing.T) {
	h := newHarness(0.5)
	h.showTarget(t)
	for i := 0; i < config.ResponseFrames; i++ {
		if f := h.tick(); f.Outcome != OutcomeNone {
			t.Fatalf("tick %d: outcome %v", i, f.Outcome)
		}
	}
	if h.ctrl.Session().Phase != PhasePlaying {
		t.Fatal("round ended before the response window closed")
	}
	if f := h.tick(); f.Outcome != OutcomeTimeout {
		t.Fatalf("outcome %v, want OutcomeTimeout", f.Outcome)
	}

	s := h.ctrl.Session()
	if s.Score != 0 || s.Round != 1 || s.Phase != PhasePreRound {
		t.Fatalf("after timeout: score %d round %d phase %v", s.Score, s.Round, s.Phase)
	}
	recs := s.Records()
	if len(recs) != 1 || recs[0].ReactionTime != 0 {
		t.Fatalf("records = %+v, want one zero reaction time", recs)
	}
	if recs[0].Diameter != 30 {
		t.Errorf("Diameter = %v, want 30", recs[0].Diameter)
	}
}

func TestFullSessionReachesGameOver(t *testing.T) {
	h := newHarness(0.5, 0.1, 0.9, 0.3)
	hits := 0
	for r := 0; r < config.Rounds; r++ {
		h.showTarget(t)
		if r%3 == 0 {
			for i := 0; i <= config.ResponseFrames; i++ {
				h.tick()
			}
		} else {
			h.tick()
			h.ctrl.MovePointer(h.ctrl.Session().Target.Center)
			if out := h.ctrl.Click(); out != OutcomeHit {
				t.Fatalf("round %d: outcome %v, want hit", r, out)
			}
			hits++
		}
		s := h.ctrl.Session()
		if s.Round != r+1 || s.Score != hits {
			t.Fatalf("round %d: got round %d score %d, want %d/%d", r, s.Round, s.Score, r+1, hits)
		}
		if len(s.Records()) != r+1 {
			t.Fatalf("round %d: %d records", r, len(s.Records()))
		}
	}

	s := h.ctrl.Session()
	if s.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want GAMEOVER", s.Phase)
	}
	recs := s.Records()
	if len(recs) != config.Rounds {
		t.Fatalf("records = %d, want %d", len(recs), config.Rounds)
	}
	for r, rec := range recs {
		if want := round3(Difficulty(r)); rec.Difficulty != want {
			t.Errorf("round %d difficulty = %v, want %v", r, rec.Difficulty, want)
		}
		if (r%3 == 0) != (rec.ReactionTime == 0) {
			t.Errorf("round %d reaction time = %v", r, rec.ReactionTime)
		}
	}

	f := h.tick()
	if f.Outcome != OutcomeFinished || !f.Halted || len(f.Commands) != 0 {
		t.Fatalf("first GAMEOVER tick = %+v", f)
	}
	for i := 0; i < 10; i++ {
		h.ctrl.MovePointer(Point{})
		h.ctrl.Click()
		f := h.tick()
		if f.Outcome != OutcomeNone || !f.Halted || len(f.Commands) != 0 {
			t.Fatalf("tick after halt = %+v", f)
		}
	}
	if got := h.ctrl.Session(); got.Phase != PhaseGameOver || len(got.Records()) != config.Rounds {
		t.Fatalf("session mutated after game over: %+v", got)
	}
}

func TestStepFinishFiresOnce(t *testing.T) {
	s := NewSession()
	s.Phase = PhaseGameOver
	s, out := Step(s, EventTick, Env{})
	if out != OutcomeFinished {
		t.Fatalf("first tick outcome %v", out)
	}
	if _, out = Step(s, EventTick, Env{}); out != OutcomeNone {
		t.Fatalf("second tick outcome %v", out)
	}
}

func TestStepUnknownPhaseIsNoop(t *testing.T) {
	s := NewSession()
	s.Phase = Phase(42)
	next, out := Step(s, EventClick, Env{})
	if out != OutcomeNone || next.Phase != s.Phase {
		t.Fatalf("unknown phase stepped: %+v %v", next, out)
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "PLAYING" || Phase(9).String() != "UNKNOWN" {
		t.Fatal("unexpected phase names")
	}
}
