package round

import (
	"math"

	"github.com/iburimskiy/fitts/internal/config"
)

// Rand is the random source used for countdowns and target placement.
// Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// Difficulty returns the index of difficulty for round r.
// The range over a session is [1.70, 3.03); some far targets may leave the surface.
func Difficulty(r int) float64 {
	return float64(r)/float64(config.Rounds)*config.DifficultySlope + config.DifficultyBase
}

// Distance inverts the index of difficulty into a center-to-center distance.
func Distance(difficulty, diameter float64) float64 {
	return (math.Pow(2, difficulty) - 1) * diameter
}

// PlaceTarget builds the target for a given difficulty, diameter and angle in degrees.
func PlaceTarget(difficulty, diameter, angleDeg float64) Circle {
	dist := Distance(difficulty, diameter)
	rad := angleDeg * math.Pi / 180
	return Circle{
		Center:   Point{X: dist * math.Cos(rad), Y: dist * math.Sin(rad)},
		Diameter: diameter,
		Color:    colorTarget,
	}
}

// GenerateTarget samples a diameter and then an angle for round r.
func GenerateTarget(r int, rnd Rand) (Circle, float64) {
	d := Difficulty(r)
	size := config.TargetSizes[int(rnd.Float64()*float64(len(config.TargetSizes)))]
	angle := rnd.Float64() * 360
	return PlaceTarget(d, size, angle), d
}

// waitFrames samples the pre-target countdown in [MinWaitFrames, MinWaitFrames+WaitJitterFrames).
func waitFrames(rnd Rand) int {
	return int(math.Floor(rnd.Float64()*config.WaitJitterFrames)) + config.MinWaitFrames
}
