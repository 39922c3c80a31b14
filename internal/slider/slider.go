package slider

import (
	"math"
	"time"

	"git.lost.host/meutraa/slide/internal/game"
	"git.lost.host/meutraa/slide/internal/path"
	"git.lost.host/meutraa/slide/internal/timeline"
)

// SamplePlayer plays the slider's hit sound
type SamplePlayer interface {
	Play()
}

// JudgementListener receives the final judgement of each slider, once
type JudgementListener interface {
	Judged(index int, result game.HitResult)
}

type Options struct {
	Windows  []game.Judgement
	Preempt  time.Duration
	Sample   SamplePlayer
	Listener JudgementListener
}

type Slider struct {
	slider *game.Slider
	path   path.Path
	ball   Ball
	body   *Body

	initial *InitialMarker
	ticks   []*Tick
	repeats []*RepeatMarker

	subscribers []ProgressListener
	judgeables  []Nested

	state         State
	progress      timeline.Progress
	tracking      bool
	highestRepeat int
	judgement     record
	schedule      schedule

	ballAlwaysPresent bool
	bodyVisible       bool
	ballVisible       bool

	sample   SamplePlayer
	listener JudgementListener
}

// New builds the nested objects of s. The slider starts Idle and must be
// loaded before updates have any effect.
func New(s *game.Slider, p path.Path, ball Ball, opts Options) *Slider {
	if len(opts.Windows) == 0 {
		opts.Windows = game.DefaultJudgements
	}
	if opts.Preempt <= 0 {
		opts.Preempt = DefaultPreempt
	}
	if ball == nil {
		ball = NewFollowBall(p, nil)
	}

	sl := &Slider{
		slider:   s,
		path:     p,
		ball:     ball,
		body:     &Body{},
		initial:  newInitialMarker(s, opts.Windows, opts.Preempt),
		sample:   opts.Sample,
		listener: opts.Listener,
	}

	sl.subscribers = append(sl.subscribers, sl.body, ball)
	sl.judgeables = append(sl.judgeables, sl.initial)

	leg := legDuration(p, s)
	for _, d := range s.Ticks {
		fadeIn, fadeOut := FadeWindow(s.StartTime, leg, d)
		tick := &Tick{marker{desc: d, FadeIn: fadeIn, FadeOut: fadeOut}}
		sl.ticks = append(sl.ticks, tick)
		sl.subscribers = append(sl.subscribers, tick)
		sl.judgeables = append(sl.judgeables, tick)
	}
	for _, d := range s.Repeats {
		fadeIn, fadeOut := FadeWindow(s.StartTime, leg, d)
		repeat := &RepeatMarker{marker{desc: d, FadeIn: fadeIn, FadeOut: fadeOut}}
		sl.repeats = append(sl.repeats, repeat)
		sl.subscribers = append(sl.subscribers, repeat)
		sl.judgeables = append(sl.judgeables, repeat)
	}

	if len(sl.judgeables) == 0 {
		panic("slider: no judgeable objects")
	}

	return sl
}

// legDuration is the time to travel the path once, from the path length
// and the slider's velocity
func legDuration(p path.Path, s *game.Slider) time.Duration {
	if s.Velocity <= 0 {
		return 0
	}
	return time.Duration(math.Round(p.Length() / s.Velocity * float64(time.Millisecond)))
}

// Load shows the body and makes the ball receive input while still invisible
func (s *Slider) Load() {
	if s.state != Idle {
		return
	}
	s.bodyVisible = true
	s.ballAlwaysPresent = true
	s.ballVisible = false
	s.state = Armed
}

// Hit applies a press of the tracking key to the initial marker
func (s *Slider) Hit(now time.Duration) bool {
	if s.state != Armed && s.state != Active {
		return false
	}
	return s.initial.Hit(now)
}

// Update advances the slider to now. It is called once per frame.
func (s *Slider) Update(now time.Duration) {
	if s.state == Idle || s.state == Retired {
		return
	}

	s.tracking = s.ball.Tracking()
	s.progress = timeline.At(now, s.slider.StartTime, s.slider.Duration, s.slider.RepeatCount)

	if s.state == Armed && now >= s.slider.StartTime {
		s.ballVisible = true
		s.state = Active
	}

	if s.state != Armed {
		s.broadcast()
	}

	// nested objects left open by the slider's judgement stay unset
	if s.state < Judged {
		for _, o := range s.judgeables {
			o.CheckForJudgements(false, now)
		}
		s.CheckForJudgements(false, now)
	}

	s.schedule.advance(now)
}

func (s *Slider) broadcast() {
	if s.progress.Repeat > s.highestRepeat {
		if s.progress.Repeat < s.slider.RepeatCount && s.tracking && s.sample != nil {
			s.sample.Play()
		}
		s.highestRepeat = s.progress.Repeat
	}

	if !s.initial.Judged() {
		s.initial.position = s.path.PositionAt(s.progress.PathProgress())
	}

	for _, c := range s.subscribers {
		c.UpdateProgress(s.progress.Value, s.progress.Repeat)
	}
	for _, t := range s.ticks {
		t.Tracking = s.tracking
	}
	for _, r := range s.repeats {
		r.Tracking = s.tracking
	}
}

// CheckForJudgements records the slider's judgement on the first automatic
// check at or after its end time. It returns true only when it did so.
func (s *Slider) CheckForJudgements(userTriggered bool, now time.Duration) bool {
	if userTriggered || s.judgement.Judged() || now < s.slider.EndTime() {
		return false
	}
	if s.state != Armed && s.state != Active {
		return false
	}

	hits, total := countHits(s.judgeables)
	result := Aggregate(s.initial.Result(), hits, total)
	s.judgement.add(result, now)
	s.state = Judged

	if s.listener != nil {
		s.listener.Judged(s.slider.Index, result)
	}

	end := s.slider.EndTime()
	s.schedule.at(end, func(time.Duration) {
		s.bodyVisible = false
		s.ballVisible = false
	})
	s.schedule.at(end+ExpireFadeOut, func(time.Duration) {
		s.retire()
	})
	return true
}

func (s *Slider) retire() {
	s.state = Retired
	s.subscribers = nil
	s.schedule.clear()
}

func (s *Slider) State() State                { return s.state }
func (s *Slider) Slider() *game.Slider        { return s.slider }
func (s *Slider) Result() game.HitResult      { return s.judgement.Result() }
func (s *Slider) Progress() timeline.Progress { return s.progress }
func (s *Slider) Tracking() bool              { return s.tracking }
func (s *Slider) Initial() *InitialMarker     { return s.initial }
func (s *Slider) Ticks() []*Tick              { return s.ticks }
func (s *Slider) Repeats() []*RepeatMarker    { return s.repeats }
func (s *Slider) Ball() Ball                  { return s.ball }
func (s *Slider) Body() *Body                 { return s.body }
func (s *Slider) Path() path.Path             { return s.path }
func (s *Slider) BallAlwaysPresent() bool     { return s.ballAlwaysPresent }

// ProxiedLayer is drawn above every other slider by the renderer
func (s *Slider) ProxiedLayer() *ApproachRing { return s.initial.approach }

// Subscribers returns the objects receiving progress updates
func (s *Slider) Subscribers() []ProgressListener {
	out := make([]ProgressListener, len(s.subscribers))
	copy(out, s.subscribers)
	return out
}

// Judgeables returns the objects counted by the judgement
func (s *Slider) Judgeables() []Nested {
	out := make([]Nested, len(s.judgeables))
	copy(out, s.judgeables)
	return out
}

// Alpha is the opacity of the slider as a whole
func (s *Slider) Alpha(now time.Duration) float64 {
	if s.state == Idle || s.state == Retired {
		return 0
	}
	return 1 - ramp(now, s.slider.EndTime(), ExpireFadeOut)
}

func (s *Slider) BodyAlpha(now time.Duration) float64 {
	if !s.bodyVisible {
		if s.state < Judged {
			return 0
		}
		return 1 - ramp(now, s.slider.EndTime(), PieceFadeOut)
	}
	return 1
}

func (s *Slider) BallAlpha(now time.Duration) float64 {
	if !s.ballVisible {
		if s.state < Judged {
			return 0
		}
		return 1 - ramp(now, s.slider.EndTime(), PieceFadeOut)
	}
	return 1
}
