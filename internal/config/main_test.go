package config

import (
	"testing"
	"time"

	"git.lost.host/meutraa/slide/internal/game"
)

func TestWindows(t *testing.T) {
	table, err := Windows(20*time.Millisecond, 40*time.Millisecond, 60*time.Millisecond)
	if nil != err {
		t.Fatal(err)
	}
	if len(table) != 4 || table[2].Time != 60*time.Millisecond || table[3].Result != game.Miss {
		t.Errorf("table %v", table)
	}
	if game.Judge(table, 30*time.Millisecond) != game.Good {
		t.Error("30ms should be Good")
	}
}

func TestWindowsOrder(t *testing.T) {
	invalid := [][3]time.Duration{
		{0, 10, 20},
		{30, 20, 40},
		{10, 40, 30},
	}
	for _, w := range invalid {
		if _, err := Windows(w[0], w[1], w[2]); nil == err {
			t.Errorf("%v accepted", w)
		}
	}
}

func TestParse(t *testing.T) {
	if err := Parse([]string{"--great=30ms", "--good=60ms", "--meh=90ms", "-k", "x", "main_test.go"}); nil != err {
		t.Fatal(err)
	}
	if *Beatmap != "main_test.go" || TrackingKey() != 'x' {
		t.Errorf("beatmap %v key %q", *Beatmap, TrackingKey())
	}
	if Judgements[0].Time != 30*time.Millisecond || game.Outermost(Judgements) != 90*time.Millisecond {
		t.Errorf("judgements %v", Judgements)
	}
	if *Rate != 1.0 || *Delay != 1500*time.Millisecond {
		t.Errorf("defaults rate %v delay %v", *Rate, *Delay)
	}
}

func TestParseMissingBeatmap(t *testing.T) {
	if err := Parse([]string{"does-not-exist.osu"}); nil == err {
		t.Error("missing beatmap accepted")
	}
}
