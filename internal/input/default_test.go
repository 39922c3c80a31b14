package input

import (
	"errors"
	"testing"
	"time"

	"github.com/eiannone/keyboard"
)

const ms = time.Millisecond

func TestKeyTracker(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 8)
	k := NewKeyTracker(events, 'x', 100*ms)

	k.Poll(0)
	if k.Tracking() || len(k.Presses()) != 0 {
		t.Fatal("tracking without input")
	}

	events <- keyboard.KeyEvent{Rune: 'x'}
	k.Poll(1000 * ms)
	if !k.Tracking() {
		t.Error("not tracking after a press")
	}
	if p := k.Presses(); len(p) != 1 || p[0] != 1000*ms {
		t.Errorf("presses %v", p)
	}

	// Auto-repeat keeps the key held without new presses
	events <- keyboard.KeyEvent{Rune: 'x'}
	events <- keyboard.KeyEvent{Rune: 'y'}
	k.Poll(1050 * ms)
	if !k.Tracking() || len(k.Presses()) != 0 {
		t.Error("repeat treated as a new press")
	}

	k.Poll(1140 * ms)
	if !k.Tracking() {
		t.Error("released inside the hold window")
	}
	k.Poll(1200 * ms)
	if k.Tracking() {
		t.Error("still tracking after the hold window")
	}

	events <- keyboard.KeyEvent{Rune: 'x'}
	k.Poll(1500 * ms)
	if p := k.Presses(); len(p) != 1 || p[0] != 1500*ms {
		t.Errorf("second press %v", p)
	}
}

func TestKeyTrackerSpace(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 1)
	k := NewKeyTracker(events, ' ', 100*ms)
	events <- keyboard.KeyEvent{Key: keyboard.KeySpace}
	k.Poll(0)
	if !k.Tracking() {
		t.Error("space not tracked")
	}
}

func TestKeyTrackerQuit(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 2)
	k := NewKeyTracker(events, 'x', 100*ms)
	events <- keyboard.KeyEvent{Err: errors.New("broken")}
	events <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	k.Poll(0)
	if !k.Quit() || k.Tracking() {
		t.Error("escape did not quit")
	}
}
