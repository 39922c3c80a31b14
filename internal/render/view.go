package render

import (
	"math"
	"time"

	"git.lost.host/meutraa/slide/internal/game"
	"git.lost.host/meutraa/slide/internal/slider"
	"git.lost.host/meutraa/slide/internal/theme"
)

// osu! playfield size in path units
const (
	playfieldWidth  = 512.0
	playfieldHeight = 384.0

	pathSteps = 64
)

// View draws sliders into a rectangle of terminal cells
type View struct {
	R     Renderer
	Theme theme.Theme

	Top, Left  uint16
	Rows, Cols uint16
}

// Project maps a playfield position onto a terminal cell, 1-based
func (v *View) Project(p game.Vec2) (row, col uint16) {
	x := clamp(p.X()/playfieldWidth, 0, 1)
	y := clamp(p.Y()/playfieldHeight, 0, 1)
	col = v.Left + uint16(math.Round(x*float64(v.Cols-1)))
	row = v.Top + uint16(math.Round(y*float64(v.Rows-1)))
	return row, col
}

func (v *View) fill(p game.Vec2, message string) {
	row, col := v.Project(p)
	v.R.Fill(row, col, message)
}

// DrawSlider draws the body, nested objects and ball of s
func (v *View) DrawSlider(s *slider.Slider, now time.Duration) {
	if s.Alpha(now) <= 0 {
		return
	}

	if s.BodyAlpha(now) > 0 {
		body := s.Body()
		for i := 0; i <= pathSteps; i++ {
			progress := float64(i) / pathSteps
			v.fill(s.Path().PositionAt(progress), v.Theme.RenderPath(travelled(progress, body)))
		}
	}

	for _, t := range s.Ticks() {
		if t.Alpha(now) > 0 {
			v.fill(t.Position(), v.Theme.RenderTick(t.Highlighted()))
		}
	}
	for _, r := range s.Repeats() {
		if r.Alpha(now) > 0 {
			v.fill(r.Position(), v.Theme.RenderRepeat(r.Approaching()))
		}
	}

	if initial := s.Initial(); !initial.Judged() && s.State() < slider.Judged {
		v.fill(initial.Position(), v.Theme.RenderInitial())
	}

	if s.BallAlpha(now) > 0 {
		v.fill(s.Ball().Position(), v.Theme.RenderBall(s.Tracking()))
	}
}

// DrawProxied draws the approach ring of s, after every slider body
func (v *View) DrawProxied(s *slider.Slider, now time.Duration) {
	ring := s.ProxiedLayer()
	if ring.Alpha(now) <= 0 {
		return
	}
	row, col := v.Project(s.Initial().Position())
	d := int(math.Round(ring.Scale(now)))
	for _, o := range [][2]int{{0, -2 * d}, {0, 2 * d}, {-d, 0}, {d, 0}} {
		r, c := int(row)+o[0], int(col)+o[1]
		if r < 1 || c < 1 {
			continue
		}
		v.R.Fill(uint16(r), uint16(c), v.Theme.RenderApproach())
	}
}

// travelled reports whether the ball already passed progress on its current leg
func travelled(progress float64, body *slider.Body) bool {
	if body.Repeat%2 == 1 {
		return progress >= 1-body.Progress
	}
	return progress <= body.Progress
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
