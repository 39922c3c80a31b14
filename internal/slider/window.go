package slider

import (
	"time"

	"git.lost.host/meutraa/slide/internal/game"
)

const (
	// FullFade is how early a nested object on the first leg starts appearing
	FullFade = 400 * time.Millisecond

	// PieceFadeOut is the fade of the body and ball once the slider ends
	PieceFadeOut = 160 * time.Millisecond

	// ExpireFadeOut is the fade of the whole slider before it expires
	ExpireFadeOut = 800 * time.Millisecond

	// DefaultPreempt is how long before its start the approach ring appears
	DefaultPreempt = 800 * time.Millisecond

	nestedFadeIn = 150 * time.Millisecond
)

// FadeWindow returns when a nested object becomes visible and when it leaves.
// Objects on later legs reappear mid animation so get half the lead time.
func FadeWindow(sliderStart, leg time.Duration, d game.NestedDescriptor) (fadeIn, fadeOut time.Duration) {
	repeatStart := sliderStart + time.Duration(d.RepeatIndex)*leg

	lead := FullFade
	if d.RepeatIndex != 0 {
		lead = FullFade / 2
	}

	fadeIn = repeatStart + (d.StartTime-repeatStart)/2 - lead
	fadeOut = repeatStart + leg
	return fadeIn, fadeOut
}

func ramp(now, from, over time.Duration) float64 {
	if now <= from {
		return 0
	}
	if over <= 0 || now >= from+over {
		return 1
	}
	return float64(now-from) / float64(over)
}
