package round

import (
	"math/rand/v2"
	"time"
)

// Frame is the result of one tick.
type Frame struct {
	Commands []Command
	Outcome  Outcome
	// Halted is set from the tick that finishes the session onwards.
	Halted bool
}

// Controller owns a Session and feeds it events from the host loop.
type Controller struct {
	session Session
	env     Env
	halted  bool
}

// NewController creates a controller for a fresh session. A nil Rand or Now
// is replaced with a time-seeded PCG source and time.Now.
func NewController(env Env) *Controller {
	if env.Rand == nil {
		env.Rand = NewRand(0)
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	return &Controller{session: NewSession(), env: env}
}

// NewRand returns a PCG source for seed; seed 0 picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func (c *Controller) Session() Session { return c.session }

// MovePointer records the latest center-relative pointer position.
func (c *Controller) MovePointer(p Point) {
	c.session = c.session.WithPointer(p)
}

// Click delivers a click at the current pointer position.
func (c *Controller) Click() Outcome {
	var out Outcome
	c.session, out = Step(c.session, EventClick, c.env)
	return out
}

// Tick advances one frame and returns what to draw.
func (c *Controller) Tick() Frame {
	if c.halted {
		return Frame{Halted: true}
	}
	var out Outcome
	c.session, out = Step(c.session, EventTick, c.env)
	if out == OutcomeFinished {
		c.halted = true
		return Frame{Outcome: out, Halted: true}
	}
	return Frame{Commands: Render(c.session), Outcome: out}
}
