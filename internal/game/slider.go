package game

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

type Vec2 = mgl64.Vec2

// NestedDescriptor describes a tick or repeat marker belonging to a slider
type NestedDescriptor struct {
	StartTime   time.Duration
	RepeatIndex int // The leg the object sits on
	Position    Vec2
}

type Slider struct {
	Index       int
	StartTime   time.Duration
	Duration    time.Duration
	RepeatCount int     // Number of direction reversals, legs = RepeatCount+1
	Velocity    float64 // Path units per millisecond
	Length      float64
	Position    Vec2
	Points      []Vec2 // Path control points, Points[0] == Position
	Ticks       []NestedDescriptor
	Repeats     []NestedDescriptor
}

func (s *Slider) EndTime() time.Duration {
	return s.StartTime + s.Duration
}

// LegDuration is the time taken to travel the path once
func (s *Slider) LegDuration() time.Duration {
	if s.Velocity <= 0 {
		return 0
	}
	return time.Duration(math.Round(s.Length / s.Velocity * float64(time.Millisecond)))
}
