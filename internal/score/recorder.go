package score

import (
	"log"

	"git.lost.host/meutraa/slide/internal/game"
)

// Recorder collects the judgement of each slider of a chart.
// It is handed to sliders as their judgement listener.
type Recorder struct {
	Results []game.HitResult
	Inputs  []game.Input
	onJudge func(index int, result game.HitResult)
}

func NewRecorder(chart *game.Chart, onJudge func(index int, result game.HitResult)) *Recorder {
	return &Recorder{Results: make([]game.HitResult, len(chart.Sliders)), onJudge: onJudge}
}

func (r *Recorder) Judged(index int, result game.HitResult) {
	if index < 0 || index >= len(r.Results) {
		log.Println("judgement for unknown slider", index)
		return
	}
	if r.Results[index] != game.None {
		log.Println("slider judged twice", index)
		return
	}
	r.Results[index] = result
	if nil != r.onJudge {
		r.onJudge(index, result)
	}
}

// Press records a press of the tracking key against a slider, -1 for none
func (r *Recorder) Press(input game.Input) {
	r.Inputs = append(r.Inputs, input)
}
