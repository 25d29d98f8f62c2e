package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Frames per second of the update loop; all countdowns are in frames.
	TPS = 60

	Rounds = 60

	// Countdown before a target appears: MinWaitFrames + floor(rand*WaitJitterFrames).
	MinWaitFrames    = 60
	WaitJitterFrames = 120
	ResponseFrames   = 2 * TPS

	AnchorDiameter = 30

	// Difficulty index for round r is r/Rounds*DifficultySlope + DifficultyBase.
	DifficultySlope = 1.33
	DifficultyBase  = 1.70

	// Text
	FontSize = 20
	StatsX   = 10
	StatsY   = 20
	StatsGap = 20

	ResultsFileName = "resultsVisual.csv"
)

// TargetSizes are the diameters a target may be drawn with.
var TargetSizes = [...]float64{10, 30, 50}
