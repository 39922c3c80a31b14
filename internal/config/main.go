package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/slide/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("slide", "Play the sliders of an osu! beatmap in the terminal")

	Beatmap     = app.Arg("beatmap", "Beatmap (.osu) file").Required().ExistingFile()
	Rate        = app.Flag("rate", "Playback rate").Default("1.0").Short('r').Float64()
	Offset      = app.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay       = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod = app.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	Preempt     = app.Flag("preempt", "Time an object is shown before it is due").Default("800ms").Duration()
	HoldWindow  = app.Flag("hold-window", "Time a key press keeps the ball tracked").Default("120ms").Duration()
	Key         = app.Flag("key", "Key used to hit and hold sliders").Default(" ").Short('k').String()
	Sample      = app.Flag("sample", "Hit sound played on slider repeats (.wav, .mp3, .ogg)").Short('s').String()
	Database    = app.Flag("database", "Score database").Default("./scores.db").String()
	windowGreat = app.Flag("great", "Great hit window").Default("50ms").Duration()
	windowGood  = app.Flag("good", "Good hit window").Default("100ms").Duration()
	windowMeh   = app.Flag("meh", "Meh hit window").Default("150ms").Duration()

	Judgements = game.DefaultJudgements
)

func init() {
	app.Version("0.1.0")
}

// Parse reads the command line and derives the judgement table
func Parse(args []string) error {
	if _, err := app.Parse(args); nil != err {
		return err
	}

	judgements, err := Windows(*windowGreat, *windowGood, *windowMeh)
	if nil != err {
		return err
	}
	Judgements = judgements
	return nil
}

// Windows builds a judgement table from the three hit windows
func Windows(great, good, meh time.Duration) ([]game.Judgement, error) {
	if !(great > 0 && great <= good && good <= meh) {
		return nil, fmt.Errorf("hit windows must increase: great %v, good %v, meh %v", great, good, meh)
	}
	return []game.Judgement{
		{Time: great, Name: "Great", Result: game.Great},
		{Time: good, Name: "Good", Result: game.Good},
		{Time: meh, Name: "Meh", Result: game.Meh},
		{Time: -1, Name: "Miss", Result: game.Miss},
	}, nil
}

// TrackingKey is the rune of the configured key
func TrackingKey() rune {
	for _, r := range *Key {
		return r
	}
	return ' '
}
