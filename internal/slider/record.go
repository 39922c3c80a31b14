package slider

import (
	"time"

	"git.lost.host/meutraa/slide/internal/game"
)

// record holds the single judgement an object may receive
type record struct {
	result game.HitResult
	time   time.Duration
}

func (r *record) Judged() bool {
	return r.result != game.None
}

func (r *record) Result() game.HitResult {
	return r.result
}

func (r *record) IsHit() bool {
	return r.result.IsHit()
}

// JudgedAt is the time the judgement was recorded
func (r *record) JudgedAt() time.Duration {
	return r.time
}

// add stores result unless a judgement already exists
func (r *record) add(result game.HitResult, now time.Duration) bool {
	if r.Judged() || result == game.None {
		return false
	}
	r.result = result
	r.time = now
	return true
}
