package slider

import (
	"time"

	"git.lost.host/meutraa/slide/internal/game"
)

// ProgressListener is anything drawn relative to the slider's progress
type ProgressListener interface {
	UpdateProgress(progress float64, repeat int)
}

type Kind uint8

const (
	KindInitial Kind = iota
	KindTick
	KindRepeat
)

// Nested is a sub object whose outcome feeds the slider's judgement
type Nested interface {
	Kind() Kind
	StartTime() time.Duration
	Judged() bool
	IsHit() bool
	Result() game.HitResult
	CheckForJudgements(userTriggered bool, now time.Duration)
}

// ApproachRing is the shrinking ring around the initial marker.
// It is drawn above the other layers by the renderer.
type ApproachRing struct {
	start, preempt time.Duration
	hidden         bool
}

// Scale shrinks from 4 to 1 over the preempt window
func (a *ApproachRing) Scale(now time.Duration) float64 {
	return 4 - 3*ramp(now, a.start-a.preempt, a.preempt)
}

func (a *ApproachRing) Alpha(now time.Duration) float64 {
	if a.hidden || now > a.start {
		return 0
	}
	return ramp(now, a.start-a.preempt, a.preempt/2)
}

// InitialMarker is the hit circle at the head of the slider
type InitialMarker struct {
	record
	start    time.Duration
	position game.Vec2
	windows  []game.Judgement
	approach *ApproachRing
}

func newInitialMarker(s *game.Slider, windows []game.Judgement, preempt time.Duration) *InitialMarker {
	return &InitialMarker{
		start:    s.StartTime,
		position: s.Position,
		windows:  windows,
		approach: &ApproachRing{start: s.StartTime, preempt: preempt},
	}
}

func (m *InitialMarker) Kind() Kind                  { return KindInitial }
func (m *InitialMarker) StartTime() time.Duration    { return m.start }
func (m *InitialMarker) Position() game.Vec2         { return m.position }
func (m *InitialMarker) ApproachRing() *ApproachRing { return m.approach }

// Hit applies a press of the tracking key at now.
// Presses outside the outermost window are ignored.
func (m *InitialMarker) Hit(now time.Duration) bool {
	if m.Judged() {
		return false
	}
	offset := now - m.start
	if offset < 0 {
		offset = -offset
	}
	if offset >= game.Outermost(m.windows) {
		return false
	}
	if !m.add(game.Judge(m.windows, offset), now) {
		return false
	}
	m.approach.hidden = true
	return true
}

func (m *InitialMarker) CheckForJudgements(userTriggered bool, now time.Duration) {
	if userTriggered {
		m.Hit(now)
		return
	}
	if now-m.start >= game.Outermost(m.windows) && m.add(game.Miss, now) {
		m.approach.hidden = true
	}
}

// marker is the state shared by ticks and repeat markers
type marker struct {
	record
	desc            game.NestedDescriptor
	FadeIn, FadeOut time.Duration

	// Tracking mirrors the slider's tracking flag for highlighting
	Tracking bool

	leg int
}

func (m *marker) StartTime() time.Duration { return m.desc.StartTime }
func (m *marker) RepeatIndex() int         { return m.desc.RepeatIndex }
func (m *marker) Position() game.Vec2      { return m.desc.Position }

// Alpha fades the marker in from FadeIn and removes it at FadeOut or once judged
func (m *marker) Alpha(now time.Duration) float64 {
	if m.Judged() || now >= m.FadeOut {
		return 0
	}
	return ramp(now, m.FadeIn, nestedFadeIn)
}

// CheckForJudgements judges the marker once the ball reaches it
func (m *marker) CheckForJudgements(userTriggered bool, now time.Duration) {
	if userTriggered || now < m.desc.StartTime {
		return
	}
	if m.Tracking {
		m.add(game.Great, now)
	} else {
		m.add(game.Miss, now)
	}
}

type Tick struct {
	marker
}

func (t *Tick) Kind() Kind { return KindTick }

func (t *Tick) UpdateProgress(progress float64, repeat int) {
	t.leg = repeat
}

// Highlighted is true while the ball is tracked on the tick's leg
func (t *Tick) Highlighted() bool {
	return t.Tracking && t.leg == t.desc.RepeatIndex && !t.Judged()
}

// RepeatMarker sits at the end of a leg where the ball reverses
type RepeatMarker struct {
	marker
}

func (r *RepeatMarker) Kind() Kind { return KindRepeat }

func (r *RepeatMarker) UpdateProgress(progress float64, repeat int) {
	r.leg = repeat
}

// Approaching is true while the ball travels the leg ending at this marker
func (r *RepeatMarker) Approaching() bool {
	return r.leg == r.desc.RepeatIndex && !r.Judged()
}
