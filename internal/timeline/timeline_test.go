package timeline

import (
	"testing"
	"time"
)

const (
	start    = 1000 * time.Millisecond
	duration = 3000 * time.Millisecond
	repeats  = 2
)

var atTests = map[time.Duration]Progress{
	0:                             {Value: 0, Repeat: 0},
	start - time.Millisecond:      {Value: 0, Repeat: 0},
	start:                         {Value: 0, Repeat: 0},
	start + 500*time.Millisecond:  {Value: 0.5, Repeat: 0},
	start + 1000*time.Millisecond: {Value: 0, Repeat: 1},
	start + 1500*time.Millisecond: {Value: 0.5, Repeat: 1},
	start + 2250*time.Millisecond: {Value: 0.25, Repeat: 2},
	start + duration:              {Value: 1, Repeat: repeats},
	start + duration + time.Hour:  {Value: 1, Repeat: repeats},
}

func almost(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestAt(t *testing.T) {
	for now, expected := range atTests {
		out := At(now, start, duration, repeats)
		if out.Repeat != expected.Repeat || !almost(out.Value, expected.Value) {
			t.Log("now     ", now)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestAtEndDoesNotRollOver(t *testing.T) {
	for r := 0; r < 10; r++ {
		out := At(start+duration, start, duration, r)
		if out.Repeat != r || out.Value != 1 {
			t.Errorf("repeats %v: got %+v at end time", r, out)
		}
	}
}

func TestAtMonotonicRepeat(t *testing.T) {
	last := 0
	for now := start; now <= start+duration; now += time.Millisecond {
		out := At(now, start, duration, 7)
		if out.Repeat < last {
			t.Fatalf("repeat went from %v to %v at %v", last, out.Repeat, now)
		}
		if out.Value < 0 || out.Value > 1 {
			t.Fatalf("value %v out of range at %v", out.Value, now)
		}
		last = out.Repeat
	}
}

func TestAtZeroDuration(t *testing.T) {
	if out := At(start-1, start, 0, 3); out.Value != 0 || out.Repeat != 0 {
		t.Errorf("before start: %+v", out)
	}
	if out := At(start, start, 0, 3); out.Value != 1 || out.Repeat != 3 {
		t.Errorf("at start: %+v", out)
	}
}

func TestAtNegativeRepeats(t *testing.T) {
	out := At(start+duration/2, start, duration, -4)
	if out.Repeat != 0 || !almost(out.Value, 0.5) {
		t.Errorf("got %+v", out)
	}
}

func TestPathProgress(t *testing.T) {
	tests := map[Progress]float64{
		{Value: 0.25, Repeat: 0}: 0.25,
		{Value: 0.25, Repeat: 1}: 0.75,
		{Value: 1, Repeat: 1}:    0,
		{Value: 1, Repeat: 2}:    1,
	}
	for in, expected := range tests {
		if out := in.PathProgress(); !almost(out, expected) {
			t.Errorf("%+v: got %v expected %v", in, out, expected)
		}
	}
}
