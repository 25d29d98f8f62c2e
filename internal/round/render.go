package round

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/fitts/internal/config"
)

// Command is a single draw instruction in surface coordinates.
type Command interface {
	command()
}

// Clear wipes the surface.
type Clear struct{}

// FillCircle draws a filled circle centered at (X, Y).
type FillCircle struct {
	X, Y, Radius float64
	Color        color.RGBA
}

// Text draws Body with its baseline starting at (X, Y).
type Text struct {
	Body  string
	X, Y  float64
	Color color.RGBA
}

func (Clear) command()      {}
func (FillCircle) command() {}
func (Text) command()       {}

const tooltipPreRound = "Click the circle to begin"

// Render returns the draw commands for s. A finished session renders nothing.
func Render(s Session) []Command {
	if s.Phase == PhaseGameOver {
		return nil
	}
	cmds := []Command{Clear{}, fill(Anchor)}
	if s.Phase == PhasePlaying {
		cmds = append(cmds, fill(s.Target))
	}
	if s.Phase == PhasePreRound {
		c := colorWarn
		if Inside(s.Pointer, Anchor) {
			c = colorText
		}
		x, y := toSurface(s.Pointer)
		cmds = append(cmds, Text{Body: tooltipPreRound, X: x, Y: y, Color: c})
	}
	return append(cmds,
		Text{Body: fmt.Sprintf("Round: %d", s.Round), X: config.StatsX, Y: config.StatsY, Color: colorText},
		Text{Body: fmt.Sprintf("Score: %d", s.Score), X: config.StatsX, Y: config.StatsY + config.StatsGap, Color: colorText},
	)
}

func fill(c Circle) FillCircle {
	x, y := toSurface(c.Center)
	return FillCircle{X: x, Y: y, Radius: c.Diameter / 2, Color: c.Color}
}

func toSurface(p Point) (float64, float64) {
	return p.X + config.WindowWidth/2, p.Y + config.WindowHeight/2
}

// FromSurface converts absolute surface coordinates to center-relative ones.
func FromSurface(x, y float64) Point {
	return Point{X: x - config.WindowWidth/2, Y: y - config.WindowHeight/2}
}
