package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

const clickFrequency = 1760.0

// Format is the format samples are buffered in
var Format = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

// Player plays one buffered sample, it satisfies slider.SamplePlayer
type Player struct {
	buffer *beep.Buffer
	volume float64
	play   func(s ...beep.Streamer)
}

func NewPlayer(buffer *beep.Buffer, volume float64) *Player {
	return &Player{buffer: buffer, volume: volume, play: speaker.Play}
}

// Init starts the speaker at the sample's rate
func (p *Player) Init() error {
	sr := p.buffer.Format().SampleRate
	return speaker.Init(sr, sr.N(time.Second/60))
}

func (p *Player) Play() {
	s := p.buffer.Streamer(0, p.buffer.Len())
	p.play(&effects.Volume{Streamer: s, Base: 2, Volume: p.volume})
}

// Load decodes a .wav, .mp3 or .ogg sample into a buffer of the given format
func Load(file string, format beep.Format) (*beep.Buffer, error) {
	ext := strings.ToLower(filepath.Ext(file))
	if ext != ".wav" && ext != ".mp3" && ext != ".ogg" {
		return nil, fmt.Errorf("unsupported sample format %q", ext)
	}

	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var sf beep.Format
	switch ext {
	case ".wav":
		streamer, sf, err = wav.Decode(f)
	case ".mp3":
		streamer, sf, err = mp3.Decode(f)
	case ".ogg":
		streamer, sf, err = vorbis.Decode(f)
	}
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if sf.SampleRate != format.SampleRate {
		s = beep.Resample(4, sf.SampleRate, format.SampleRate, streamer)
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(s)
	return buffer, nil
}

// NewClick generates a short decaying tone used when no sample is configured
func NewClick(format beep.Format, d time.Duration) *beep.Buffer {
	n := format.SampleRate.N(d)
	step := 2 * math.Pi * clickFrequency / float64(format.SampleRate)

	i := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			v := math.Sin(float64(i)*step) * math.Exp(-5*float64(i)/float64(n))
			samples[j][0], samples[j][1] = v, v
			i++
		}
		return len(samples), true
	})

	buffer := beep.NewBuffer(format)
	buffer.Append(beep.Take(n, tone))
	return buffer
}
