package game

type Difficulty struct {
	Name             string
	SliderMultiplier float64
	SliderTickRate   float64
}

// TimingPoint controls the beat length and slider velocity from Time onwards.
// Inherited points only carry a velocity multiplier.
type TimingPoint struct {
	Time               float64
	BeatLength         float64
	VelocityMultiplier float64
	Inherited          bool
}
