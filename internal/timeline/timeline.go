package timeline

import (
	"math"
	"time"
)

// Progress is the position of a slider ball at a point in time.
// Value is the fraction of the current leg travelled, Repeat the leg index.
type Progress struct {
	Value  float64
	Repeat int
}

// At converts the current time into progress along a slider that starts at
// start, lasts duration and reverses direction repeats times.
// Output is clamped: Value is within [0, 1] and Repeat within [0, repeats].
func At(now, start, duration time.Duration, repeats int) Progress {
	if repeats < 0 {
		repeats = 0
	}
	raw := rawProgress(now, start, duration)

	legs := float64(repeats + 1)
	repeat := int(math.Floor(raw * legs))
	if repeat > repeats {
		repeat = repeats
	}
	if repeat < 0 {
		repeat = 0
	}

	value := raw*legs - float64(repeat)
	return Progress{Value: clamp(value, 0, 1), Repeat: repeat}
}

func rawProgress(now, start, duration time.Duration) float64 {
	if duration <= 0 {
		if now < start {
			return 0
		}
		return 1
	}
	return clamp(float64(now-start)/float64(duration), 0, 1)
}

// PathProgress is the distance along the path as a fraction of its length.
// Odd legs travel the path backwards.
func (p Progress) PathProgress() float64 {
	if p.Repeat%2 == 1 {
		return 1 - p.Value
	}
	return p.Value
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
