package score

import (
	"git.lost.host/meutraa/slide/internal/game"
)

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the state of this performance
	Save(chart *game.Chart, results []game.HitResult, inputs []game.Input, rate float64) error

	// Load up previous state for the chart
	Load(chart *game.Chart) []History

	Tally(results []game.HitResult) Tally
}

type History struct {
	Sum     string
	Results []game.HitResult
	Inputs  []game.Input
	Rate    float64
}

// Tally counts the final judgement of every slider in a play
type Tally struct {
	Counts map[game.HitResult]int
	Judged int
	Total  int
}
