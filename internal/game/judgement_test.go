package game

import (
	"testing"
	"time"
)

var judgeTests = map[time.Duration]HitResult{
	0:                       Great,
	-49 * time.Millisecond:  Great,
	50 * time.Millisecond:   Good,
	-99 * time.Millisecond:  Good,
	120 * time.Millisecond:  Meh,
	150 * time.Millisecond:  Miss,
	-400 * time.Millisecond: Miss,
}

func TestJudge(t *testing.T) {
	for offset, expected := range judgeTests {
		out := Judge(DefaultJudgements, offset)
		if out != expected {
			t.Log("offset  ", offset)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestOutermost(t *testing.T) {
	if o := Outermost(DefaultJudgements); o != 150*time.Millisecond {
		t.Errorf("expected 150ms, got %v", o)
	}
	if o := Outermost(nil); o != 0 {
		t.Errorf("expected 0 for an empty table, got %v", o)
	}
}

func TestHitResultOrder(t *testing.T) {
	if !(None < Miss && Miss < Meh && Meh < Good && Good < Great) {
		t.Error("results out of order")
	}
	if None.IsHit() || Miss.IsHit() || !Meh.IsHit() || !Great.IsHit() {
		t.Error("IsHit")
	}
	if Great.String() != "Great" || HitResult(42).String() != "Unknown" {
		t.Error("String")
	}
}
