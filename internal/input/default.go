package input

import (
	"log"
	"time"

	"github.com/eiannone/keyboard"
)

// KeyTracker turns terminal key events into a held state.
// Terminals only report presses, so a key counts as held while its
// auto-repeat keeps arriving within the hold window.
type KeyTracker struct {
	events <-chan keyboard.KeyEvent
	key    rune
	hold   time.Duration

	now       time.Duration
	lastPress time.Duration
	held      bool
	presses   []time.Duration
	quit      bool
}

func NewKeyTracker(events <-chan keyboard.KeyEvent, key rune, hold time.Duration) *KeyTracker {
	return &KeyTracker{events: events, key: key, hold: hold}
}

func (k *KeyTracker) matches(ev keyboard.KeyEvent) bool {
	if k.key == ' ' {
		return ev.Key == keyboard.KeySpace || ev.Rune == ' '
	}
	return ev.Rune == k.key
}

// Poll consumes every pending event without blocking
func (k *KeyTracker) Poll(now time.Duration) {
	k.now = now
	k.held = k.Tracking()

	for len(k.events) > 0 {
		ev := <-k.events
		if nil != ev.Err {
			log.Println("unable to read key", ev.Err)
			continue
		}
		switch {
		case ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC:
			k.quit = true
		case k.matches(ev):
			if !k.held {
				k.presses = append(k.presses, now)
				k.held = true
			}
			k.lastPress = now
		}
	}
}

// Tracking is true while the key is held
func (k *KeyTracker) Tracking() bool {
	return k.held && k.now-k.lastPress <= k.hold
}

// Presses returns the presses seen since the last call
func (k *KeyTracker) Presses() []time.Duration {
	p := k.presses
	k.presses = nil
	return p
}

func (k *KeyTracker) Quit() bool {
	return k.quit
}
