package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"git.lost.host/meutraa/slide/internal/audio"
	"git.lost.host/meutraa/slide/internal/config"
	"git.lost.host/meutraa/slide/internal/game"
	"git.lost.host/meutraa/slide/internal/input"
	"git.lost.host/meutraa/slide/internal/parser"
	"git.lost.host/meutraa/slide/internal/path"
	"git.lost.host/meutraa/slide/internal/render"
	"git.lost.host/meutraa/slide/internal/score"
	"git.lost.host/meutraa/slide/internal/slider"
	"git.lost.host/meutraa/slide/internal/theme"
)

// Number of frames a judgement stays on screen
const judgementFrames = 240

var titleColor = color.RGBA{R: 173, G: 236, B: 236, A: 255}

type Program struct {
	Parser   parser.Parser
	Scorer   score.Scorer
	Theme    theme.Theme
	Renderer render.Renderer

	chart    *game.Chart
	sliders  []*slider.Slider
	tracker  *input.KeyTracker
	recorder *score.Recorder
	sample   slider.SamplePlayer
	view     *render.View

	sideCol uint16
	counts  map[game.HitResult]int
}

// chartTime converts time since the song started into chart time
func chartTime(duration, offset time.Duration, rate float64) time.Duration {
	return time.Duration(math.Round(float64(duration+offset) * rate))
}

// Init loads the beatmap and builds a runtime slider for every slider in it
func (p *Program) Init(tracker *input.KeyTracker, sample slider.SamplePlayer) error {
	chart, err := p.Parser.Parse(*config.Beatmap)
	if nil != err {
		return err
	}
	if len(chart.Sliders) == 0 {
		return fmt.Errorf("no sliders in %v", *config.Beatmap)
	}

	p.chart = chart
	p.tracker = tracker
	p.sample = sample
	p.counts = map[game.HitResult]int{}
	p.recorder = score.NewRecorder(chart, p.onJudge)

	return p.build()
}

func (p *Program) build() error {
	p.sliders = make([]*slider.Slider, 0, len(p.chart.Sliders))
	for _, s := range p.chart.Sliders {
		pth, err := path.NewLinear(s.Points, s.Length)
		if nil != err {
			return fmt.Errorf("slider %v: %w", s.Index, err)
		}

		var ball slider.Ball
		if nil != p.tracker {
			ball = slider.NewFollowBall(pth, p.tracker)
		}

		p.sliders = append(p.sliders, slider.New(s, pth, ball, slider.Options{
			Windows:  config.Judgements,
			Preempt:  *config.Preempt,
			Sample:   p.sample,
			Listener: p.recorder,
		}))
	}
	p.chart.SetActive(0, 0)
	return nil
}

// Resize lays the playfield out in the terminal, leaving room for the stats
func (p *Program) Resize() {
	rows, cols := p.Renderer.Size()

	fieldCols := cols
	if cols > 40 {
		fieldCols = cols - 24
	}
	p.sideCol = fieldCols + 2

	p.view = &render.View{
		R:     p.Renderer,
		Theme: p.Theme,
		Top:   2,
		Left:  2,
		Rows:  rows - 2,
		Cols:  fieldCols - 2,
	}
}

func (p *Program) onJudge(index int, result game.HitResult) {
	p.counts[result]++
	if nil == p.view {
		return
	}
	row, col := p.view.Project(p.chart.Sliders[index].Position)
	p.Renderer.AddDecoration(col, row+1, p.Theme.RenderJudgement(result), judgementFrames)
}

// advance loads sliders entering the preempt window and drops retired ones
// from the front of the active range
func (p *Program) advance(now time.Duration) {
	_, start, end := p.chart.Active()

	for end < len(p.sliders) && p.chart.Sliders[end].StartTime-*config.Preempt <= now {
		p.sliders[end].Load()
		end++
	}
	for start < end && p.sliders[start].State() == slider.Retired {
		start++
	}

	p.chart.SetActive(start, end)
}

// press applies a press of the tracking key to the earliest slider that takes it
func (p *Program) press(now time.Duration) {
	_, start, end := p.chart.Active()
	for i := start; i < end; i++ {
		if p.sliders[i].Hit(now) {
			p.recorder.Press(game.Input{Index: i, HitTime: now})
			return
		}
	}
	p.recorder.Press(game.Input{Index: -1, HitTime: now})
}

// Update advances every active slider, returning false once the chart is over
func (p *Program) Update(now time.Duration) bool {
	if nil != p.tracker {
		p.tracker.Poll(now)
		if p.tracker.Quit() {
			return false
		}
	}

	p.advance(now)

	if nil != p.tracker {
		for _, t := range p.tracker.Presses() {
			p.press(t)
		}
	}

	_, start, end := p.chart.Active()
	for i := start; i < end; i++ {
		p.sliders[i].Update(now)
	}

	return start < len(p.sliders)
}

func (p *Program) Render(now time.Duration) {
	p.Renderer.Clear()

	_, start, end := p.chart.Active()
	for i := start; i < end; i++ {
		p.view.DrawSlider(p.sliders[i], now)
	}
	for i := start; i < end; i++ {
		p.view.DrawProxied(p.sliders[i], now)
	}

	p.RenderStatic()
}

func (p *Program) RenderStatic() {
	p.Renderer.FillColor(2, p.sideCol, titleColor, p.chart.Title)
	p.Renderer.Fill(3, p.sideCol, p.chart.Difficulty.Name)
	p.Renderer.Fill(5, p.sideCol, fmt.Sprintf("  Sliders: %5v", len(p.sliders)))
	p.Renderer.Fill(6, p.sideCol, fmt.Sprintf("   Nested: %5v", p.chart.NestedCount()))
	for i, j := range config.Judgements {
		p.Renderer.Fill(uint16(8+i), p.sideCol, fmt.Sprintf("%9v: %5v", j.Name, p.counts[j.Result]))
	}
}

// Save stores the play and prints its tally
func (p *Program) Save() error {
	if err := p.Scorer.Save(p.chart, p.recorder.Results, p.recorder.Inputs, *config.Rate); nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}

	tally := p.Scorer.Tally(p.recorder.Results)
	fmt.Printf("%v [%v]\n", p.chart.Title, p.chart.Difficulty.Name)
	for _, j := range config.Judgements {
		fmt.Printf("%6v: %v\n", j.Name, tally.Counts[j.Result])
	}
	fmt.Printf("Judged %v of %v sliders\n", tally.Judged, tally.Total)

	history := p.Scorer.Load(p.chart)
	if len(history) > 1 {
		log.Printf("%v previous plays of this chart\n", len(history)-1)
	}
	return nil
}

// newSample loads the configured hit sound, or synthesises a click
func newSample() (*audio.Player, error) {
	if "" == *config.Sample {
		return audio.NewPlayer(audio.NewClick(audio.Format, 30*time.Millisecond), 0), nil
	}
	buffer, err := audio.Load(*config.Sample, audio.Format)
	if nil != err {
		return nil, fmt.Errorf("unable to load sample: %w", err)
	}
	return audio.NewPlayer(buffer, 0), nil
}
