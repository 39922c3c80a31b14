package path

import (
	"errors"

	"git.lost.host/meutraa/slide/internal/game"
)

// Path maps progress along a slider onto the playfield
type Path interface {
	PositionAt(progress float64) game.Vec2
	Length() float64
}

var ErrTooFewPoints = errors.New("a path needs at least two distinct points")

// Linear treats the control points as a polyline.
// The polyline is cut at length, or its last segment extended to reach it.
type Linear struct {
	points   []game.Vec2
	segments []float64
	length   float64
}

func NewLinear(points []game.Vec2, length float64) (*Linear, error) {
	poly := make([]game.Vec2, 0, len(points))
	for _, p := range points {
		if n := len(poly); n > 0 && poly[n-1].ApproxEqual(p) {
			continue
		}
		poly = append(poly, p)
	}
	if len(poly) < 2 {
		return nil, ErrTooFewPoints
	}

	segments := make([]float64, len(poly)-1)
	for i := 1; i < len(poly); i++ {
		segments[i-1] = poly[i].Sub(poly[i-1]).Len()
	}

	if length <= 0 {
		for _, s := range segments {
			length += s
		}
	}

	return &Linear{points: poly, segments: segments, length: length}, nil
}

func (l *Linear) Length() float64 {
	return l.length
}

func (l *Linear) PositionAt(progress float64) game.Vec2 {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	distance := progress * l.length

	for i, s := range l.segments {
		if distance <= s {
			return lerp(l.points[i], l.points[i+1], distance/s)
		}
		distance -= s
	}

	// Past the final control point, continue along the last segment
	n := len(l.points)
	last := l.segments[len(l.segments)-1]
	return lerp(l.points[n-2], l.points[n-1], 1+distance/last)
}

func lerp(a, b game.Vec2, t float64) game.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
