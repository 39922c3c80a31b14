package testdata

import (
	"encoding/json"
	"strings"

	"git.lost.host/meutraa/slide/internal/game"
)

// Reader returns the sample beatmap
func Reader() *strings.Reader {
	return strings.NewReader(beatmap)
}

// GetChart returns the chart the sample beatmap decodes to
func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal([]byte(data), &chart); nil != err {
		return nil, err
	}
	return &chart, nil
}

const beatmap = `osu file format v14

[General]
AudioFilename: audio.mp3

[Metadata]
Title:Slide Test
Version:Normal

[Difficulty]
CircleSize:4
SliderMultiplier:1
SliderTickRate:2

[TimingPoints]
1000,500,4,1,0,100,1,0
4000,-50,4,1,0,100,0,0

[HitObjects]
0,0,2000,2,0,L|200:0,2,200
50,50,4500,1,0,0:0:0:0:
100,100,5000,6,0,L|100:300,1,200
`

const data = `{
	"Title": "Slide Test",
	"Difficulty": {"Name": "Normal", "SliderMultiplier": 1, "SliderTickRate": 2},
	"Sliders": [
		{
			"Index": 0,
			"StartTime": 2000000000,
			"Duration": 2000000000,
			"RepeatCount": 1,
			"Velocity": 0.2,
			"Length": 200,
			"Position": [0, 0],
			"Points": [[0, 0], [200, 0]],
			"Ticks": [
				{"StartTime": 2250000000, "RepeatIndex": 0, "Position": [50, 0]},
				{"StartTime": 2500000000, "RepeatIndex": 0, "Position": [100, 0]},
				{"StartTime": 2750000000, "RepeatIndex": 0, "Position": [150, 0]},
				{"StartTime": 3250000000, "RepeatIndex": 1, "Position": [150, 0]},
				{"StartTime": 3500000000, "RepeatIndex": 1, "Position": [100, 0]},
				{"StartTime": 3750000000, "RepeatIndex": 1, "Position": [50, 0]}
			],
			"Repeats": [
				{"StartTime": 3000000000, "RepeatIndex": 0, "Position": [200, 0]}
			]
		},
		{
			"Index": 1,
			"StartTime": 5000000000,
			"Duration": 500000000,
			"RepeatCount": 0,
			"Velocity": 0.4,
			"Length": 200,
			"Position": [100, 100],
			"Points": [[100, 100], [100, 300]],
			"Ticks": [
				{"StartTime": 5250000000, "RepeatIndex": 0, "Position": [100, 200]}
			]
		}
	]
}`
