package round

import "time"

// seqRand replays a fixed list of values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type virtualClock struct {
	t time.Time
}

func (c *virtualClock) Now() time.Time { return c.t }

const frame = time.Second / 60

type harness struct {
	clock *virtualClock
	ctrl  *Controller
}

func newHarness(vals ...float64) *harness {
	clock := &virtualClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return &harness{
		clock: clock,
		ctrl:  NewController(Env{Rand: &seqRand{vals: vals}, Now: clock.Now}),
	}
}

// tick advances the virtual clock by one frame and then ticks the controller.
func (h *harness) tick() Frame {
	h.clock.t = h.clock.t.Add(frame)
	return h.ctrl.Tick()
}

// showTarget clicks the anchor and ticks until the target appears.
func (h *harness) showTarget(t interface{ Fatalf(string, ...any) }) {
	h.ctrl.MovePointer(Point{})
	if out := h.ctrl.Click(); out != OutcomeArmed {
		t.Fatalf("anchor click: got outcome %v, want OutcomeArmed", out)
	}
	for i := 0; i < 200; i++ {
		if h.tick().Outcome == OutcomeTargetShown {
			return
		}
	}
	t.Fatalf("target never appeared")
}
