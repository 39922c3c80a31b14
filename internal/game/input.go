package game

import "time"

// Input is a single press of the tracking key
type Input struct {
	Index   int // The slider the press was applied to, -1 if none
	HitTime time.Duration
}
