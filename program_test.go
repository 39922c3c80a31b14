package main

import (
	"testing"
	"time"

	"git.lost.host/meutraa/slide/internal/config"
	"git.lost.host/meutraa/slide/internal/game"
	"git.lost.host/meutraa/slide/internal/score"
	"git.lost.host/meutraa/slide/internal/slider"
	"git.lost.host/meutraa/slide/internal/testdata"
)

const ms = time.Millisecond

func newProgram(t *testing.T) *Program {
	*config.Preempt = 800 * ms

	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	p := &Program{chart: chart, counts: map[game.HitResult]int{}}
	p.recorder = score.NewRecorder(chart, p.onJudge)
	if err := p.build(); nil != err {
		t.Fatal(err)
	}
	return p
}

func TestChartTime(t *testing.T) {
	tests := []struct {
		duration, offset time.Duration
		rate             float64
		expected         time.Duration
	}{
		{1000 * ms, 0, 1, 1000 * ms},
		{1000 * ms, 20 * ms, 1, 1020 * ms},
		{1000 * ms, 0, 1.5, 1500 * ms},
		{-500 * ms, 0, 2, -1000 * ms},
	}
	for _, test := range tests {
		if out := chartTime(test.duration, test.offset, test.rate); out != test.expected {
			t.Errorf("%+v: got %v", test, out)
		}
	}
}

func TestAdvance(t *testing.T) {
	p := newProgram(t)

	p.advance(1000 * ms)
	if _, start, end := p.chart.Active(); start != 0 || end != 0 {
		t.Errorf("sliders loaded early: %v-%v", start, end)
	}

	p.advance(1200 * ms)
	if _, start, end := p.chart.Active(); start != 0 || end != 1 {
		t.Errorf("expected first slider active, got %v-%v", start, end)
	}
	if p.sliders[0].State() != slider.Armed {
		t.Errorf("expected armed, got %v", p.sliders[0].State())
	}
	if p.sliders[1].State() != slider.Idle {
		t.Errorf("expected idle, got %v", p.sliders[1].State())
	}
}

func TestPlayWithoutInput(t *testing.T) {
	p := newProgram(t)

	var now time.Duration
	for now = 0; now < 10*time.Second; now += 10 * ms {
		if !p.Update(now) {
			break
		}
	}

	// the last slider ends at 5.5s and retires after its fade
	if now < 6300*ms || now > 6400*ms {
		t.Errorf("play ended at %v", now)
	}
	for i, r := range p.recorder.Results {
		if r != game.Miss {
			t.Errorf("slider %v: expected Miss, got %v", i, r)
		}
	}
	if p.counts[game.Miss] != 2 {
		t.Errorf("expected 2 misses counted, got %v", p.counts[game.Miss])
	}
}

func TestPress(t *testing.T) {
	p := newProgram(t)
	p.Update(1990 * ms)

	p.press(2000 * ms)
	p.press(2010 * ms)

	inputs := p.recorder.Inputs
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %v", len(inputs))
	}
	if inputs[0].Index != 0 || inputs[0].HitTime != 2000*ms {
		t.Errorf("first press not applied: %+v", inputs[0])
	}
	if inputs[1].Index != -1 {
		t.Errorf("second press should hit nothing: %+v", inputs[1])
	}
	if p.sliders[0].Initial().Result() != game.Great {
		t.Errorf("expected Great, got %v", p.sliders[0].Initial().Result())
	}
}
