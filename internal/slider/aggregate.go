package slider

import "git.lost.host/meutraa/slide/internal/game"

// Aggregate combines the outcomes of a slider's nested objects into one result.
//
// The initial marker caps what the slider can score. Great needs every nested
// object hit and a Great initial hit. Good needs at least half hit and an
// initial hit of Good or better, so a full run with a Good start stays Good.
// Any hit at all is a Meh.
func Aggregate(initial game.HitResult, hits, total int) game.HitResult {
	fraction := float64(hits) / float64(total)
	switch {
	case fraction == 1 && initial == game.Great:
		return game.Great
	case fraction >= 0.5 && initial >= game.Good:
		return game.Good
	case fraction > 0:
		return game.Meh
	}
	return game.Miss
}

func countHits(objects []Nested) (hits, total int) {
	for _, o := range objects {
		if o.IsHit() {
			hits++
		}
	}
	return hits, len(objects)
}
