package round

import (
	"image/color"
	"math"

	"github.com/iburimskiy/fitts/internal/config"
)

var (
	colorAnchor = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorTarget = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorText   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorWarn   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Point is a position relative to the center of the surface.
type Point struct {
	X, Y float64
}

// Circle is a filled circle positioned relative to the surface center.
type Circle struct {
	Center   Point
	Diameter float64
	Color    color.RGBA
}

// Anchor is the fixed circle at the surface center that starts each round.
var Anchor = Circle{Diameter: config.AnchorDiameter, Color: colorAnchor}

// Inside reports whether p lies within c, boundary included.
func Inside(p Point, c Circle) bool {
	return math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y) <= c.Diameter/2
}

// Fits reports whether the whole circle lies on a w x h surface.
func (c Circle) Fits(w, h float64) bool {
	r := c.Diameter / 2
	return math.Abs(c.Center.X)+r <= w/2 && math.Abs(c.Center.Y)+r <= h/2
}
