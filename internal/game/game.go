package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/fitts/internal/audio"
	"github.com/iburimskiy/fitts/internal/config"
	"github.com/iburimskiy/fitts/internal/export"
	"github.com/iburimskiy/fitts/internal/round"
)

// CuePlayer plays feedback sounds.
type CuePlayer interface {
	Play(c audio.Cue)
}

type Options struct {
	Env  round.Env
	Sink export.Sink
	// Cues may be nil for a silent session.
	Cues CuePlayer
	// Input defaults to ReadPointer.
	Input        func() PointerInput
	ExitOnFinish bool
}

// Game adapts a round.Controller to ebiten's update/draw loop.
type Game struct {
	ctrl  *round.Controller
	sink  export.Sink
	cues  CuePlayer
	input func() PointerInput
	face  *text.GoTextFace

	frame        round.Frame
	lastX, lastY int
	moved        bool

	exitOnFinish bool
	done         bool
	exportPath   string
	lastErr      error
}

func NewGame(opts Options) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	if opts.Sink == nil {
		opts.Sink = export.FileSink{Dir: "."}
	}
	if opts.Input == nil {
		opts.Input = ReadPointer
	}
	return &Game{
		ctrl:         round.NewController(opts.Env),
		sink:         opts.Sink,
		cues:         opts.Cues,
		input:        opts.Input,
		face:         &text.GoTextFace{Source: src, Size: config.FontSize},
		exitOnFinish: opts.ExitOnFinish,
	}, nil
}

func (g *Game) Update() error {
	if g.done {
		if g.exitOnFinish {
			return ebiten.Termination
		}
		return nil
	}

	in := g.input()
	if !g.moved || in.X != g.lastX || in.Y != g.lastY {
		g.lastX, g.lastY, g.moved = in.X, in.Y, true
		g.ctrl.MovePointer(round.FromSurface(float64(in.X), float64(in.Y)))
	}
	if in.JustPressed {
		g.react(g.ctrl.Click())
	}

	g.frame = g.ctrl.Tick()
	g.react(g.frame.Outcome)
	return nil
}

func (g *Game) react(out round.Outcome) {
	s := g.ctrl.Session()
	switch out {
	case round.OutcomeArmed:
		log.Printf("[Game] Round %d armed, target in %d frames", s.Round, s.Countdown+1)
	case round.OutcomeTargetShown:
		if !s.Target.Fits(config.WindowWidth, config.WindowHeight) {
			log.Printf("[Game] Warning: round %d target at (%.1f, %.1f) extends past the surface",
				s.Round, s.Target.Center.X, s.Target.Center.Y)
		}
	case round.OutcomeHit:
		recs := s.Records()
		log.Printf("[Game] Round %d hit in %v ms", s.Round-1, recs[len(recs)-1].ReactionTime)
		g.playCue(audio.CueHit)
	case round.OutcomeTimeout:
		log.Printf("[Game] Round %d timed out", s.Round-1)
		g.playCue(audio.CueTimeout)
	case round.OutcomeFinished:
		g.finish(s)
	}
}

func (g *Game) playCue(c audio.Cue) {
	if g.cues != nil {
		g.cues.Play(c)
	}
}

// finish exports the results once. Failures are logged, not retried.
func (g *Game) finish(s round.Session) {
	g.done = true
	log.Printf("[Game] Session over: score %d/%d", s.Score, config.Rounds)
	path, err := export.Export(g.sink, config.ResultsFileName, s.Records())
	if err != nil {
		log.Printf("[Game] Error: %v", err)
		g.lastErr = err
		return
	}
	g.exportPath = path
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Done reports whether the session finished and export was attempted.
func (g *Game) Done() bool { return g.done }

// ExportPath returns where the results were saved, if anywhere.
func (g *Game) ExportPath() string { return g.exportPath }

func (g *Game) Err() error { return g.lastErr }
