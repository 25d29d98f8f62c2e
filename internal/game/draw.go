package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fitts/internal/round"
)

// Draw replays the commands of the last tick. After the session halts nothing
// is drawn, so the final frame stays on screen (the screen is not auto-cleared).
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame.Halted {
		return
	}
	for _, cmd := range g.frame.Commands {
		switch c := cmd.(type) {
		case round.Clear:
			screen.Fill(color.White)
		case round.FillCircle:
			vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), c.Color, true)
		case round.Text:
			g.drawText(screen, c)
		}
	}
}

func (g *Game) drawText(screen *ebiten.Image, t round.Text) {
	if t.Body == "" {
		return
	}
	op := &text.DrawOptions{}
	// Commands carry the baseline; text/v2 draws from the top of the line.
	op.GeoM.Translate(t.X, t.Y-g.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(t.Color)
	text.Draw(screen, t.Body, g.face, op)
}
