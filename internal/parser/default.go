package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/slide/internal/game"
	"git.lost.host/meutraa/slide/internal/path"
)

const (
	earlyVersionOffset = 24 // ms added to every time before format v5

	// Ticks closer than this much travel to the end of a leg are dropped
	minTickDistanceFromEnd = 10.0 // ms
)

var ErrNoTimingPoints = errors.New("beatmap has no timing points")

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return p.Decode(f)
}

type section int

const (
	secNone section = iota
	secMetadata
	secDifficulty
	secTimingPoints
	secHitObjects
)

// Decode reads a .osu beatmap and returns its sliders as a chart
func (p *DefaultParser) Decode(r io.Reader) (*game.Chart, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var header string
	for sc.Scan() {
		if header = strings.TrimSpace(sc.Text()); header != "" {
			break
		}
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}
	header = strings.TrimPrefix(header, "\ufeff")
	if !strings.HasPrefix(strings.ToLower(header), "osu file format v") {
		return nil, fmt.Errorf("invalid .osu header: %q", header)
	}
	version, err := strconv.Atoi(strings.TrimSpace(header[len("osu file format v"):]))
	if nil != err {
		return nil, fmt.Errorf("invalid .osu version in header %q: %w", header, err)
	}

	offset := 0.0
	if version < 5 {
		offset = earlyVersionOffset
	}

	chart := &game.Chart{
		Difficulty: game.Difficulty{SliderMultiplier: 1.4, SliderTickRate: 1},
	}
	var points []game.TimingPoint
	var objects []string
	var raw strings.Builder

	sec := secNone
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			switch strings.ToLower(line) {
			case "[metadata]":
				sec = secMetadata
			case "[difficulty]":
				sec = secDifficulty
			case "[timingpoints]":
				sec = secTimingPoints
			case "[hitobjects]":
				sec = secHitObjects
			default:
				sec = secNone
			}
			continue
		}

		switch sec {
		case secMetadata:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "title":
				chart.Title = v
			case "version":
				chart.Difficulty.Name = v
			}
		case secDifficulty:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "slidermultiplier":
				chart.Difficulty.SliderMultiplier = clamp(parseFloat(v, 1.4), 0.4, 3.6)
			case "slidertickrate":
				chart.Difficulty.SliderTickRate = clamp(parseFloat(v, 1), 0.5, 8)
			}
		case secTimingPoints:
			tp, err := parseTimingPoint(line, offset)
			if nil != err {
				return nil, err
			}
			points = append(points, tp)
		case secHitObjects:
			objects = append(objects, line)
			raw.WriteString(line)
			raw.WriteString("\n")
		}
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}

	if len(points) == 0 {
		return nil, ErrNoTimingPoints
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time < points[j].Time })

	for _, line := range objects {
		s, err := parseSlider(line, offset, chart.Difficulty, points)
		if nil != err {
			return nil, err
		}
		if s == nil {
			continue
		}
		s.Index = len(chart.Sliders)
		chart.Sliders = append(chart.Sliders, s)
	}
	chart.Section = raw.String()

	return chart, nil
}

func parseTimingPoint(line string, offset float64) (game.TimingPoint, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return game.TimingPoint{}, fmt.Errorf("invalid timing point: %q", line)
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if nil != err {
		return game.TimingPoint{}, fmt.Errorf("invalid timing point time %q: %w", line, err)
	}
	beatLength, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if nil != err {
		return game.TimingPoint{}, fmt.Errorf("invalid timing point beat length %q: %w", line, err)
	}

	uninherited := true
	if len(parts) > 6 {
		uninherited = strings.TrimSpace(parts[6]) != "0"
	}

	tp := game.TimingPoint{Time: t + offset, VelocityMultiplier: 1}
	if uninherited && beatLength > 0 {
		tp.BeatLength = beatLength
	} else {
		tp.Inherited = true
		if beatLength < 0 {
			tp.VelocityMultiplier = clamp(-100/beatLength, 0.1, 10)
		}
	}
	return tp, nil
}

// timingAt returns the beat length and velocity multiplier in effect at t
func timingAt(points []game.TimingPoint, t float64) (beatLength, multiplier float64) {
	multiplier = 1
	for _, tp := range points {
		if !tp.Inherited {
			if beatLength == 0 || tp.Time <= t {
				beatLength = tp.BeatLength
				multiplier = 1
			}
			continue
		}
		if tp.Time <= t && beatLength != 0 {
			multiplier = tp.VelocityMultiplier
		}
	}
	if beatLength == 0 {
		beatLength = 500
	}
	return beatLength, multiplier
}

// parseSlider returns nil for anything that is not a usable slider
func parseSlider(line string, offset float64, d game.Difficulty, points []game.TimingPoint) (*game.Slider, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid hit object: %q", line)
	}
	kind, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if nil != err {
		return nil, fmt.Errorf("invalid hit object type %q: %w", line, err)
	}
	if kind&2 == 0 {
		return nil, nil
	}
	if len(parts) < 8 {
		return nil, fmt.Errorf("invalid slider: %q", line)
	}

	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	start, errT := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	slides, errS := strconv.Atoi(strings.TrimSpace(parts[6]))
	length, errL := strconv.ParseFloat(strings.TrimSpace(parts[7]), 64)
	for _, err := range []error{errX, errY, errT, errS, errL} {
		if nil != err {
			return nil, fmt.Errorf("invalid slider %q: %w", line, err)
		}
	}
	start += offset
	if slides < 1 {
		slides = 1
	}

	head := game.Vec2{x, y}
	controls := append([]game.Vec2{head}, parseCurve(parts[5])...)
	sp, err := path.NewLinear(controls, length)
	if nil != err {
		log.Println("skipping slider at", start, err)
		return nil, nil
	}
	length = sp.Length()

	beatLength, multiplier := timingAt(points, start)
	scoringDistance := 100 * d.SliderMultiplier * multiplier
	velocity := scoringDistance / beatLength
	leg := length / velocity

	s := &game.Slider{
		StartTime:   ms(start),
		Duration:    ms(leg * float64(slides)),
		RepeatCount: slides - 1,
		Velocity:    velocity,
		Length:      length,
		Position:    head,
		Points:      controls,
	}

	tickDistance := scoringDistance / d.SliderTickRate
	limit := length - velocity*minTickDistanceFromEnd
	for span := 0; span < slides; span++ {
		spanStart := start + float64(span)*leg
		reversed := span%2 == 1

		for dist := tickDistance; tickDistance > 0 && dist < limit; dist += tickDistance {
			progress := dist / length
			if reversed {
				progress = 1 - progress
			}
			s.Ticks = append(s.Ticks, game.NestedDescriptor{
				StartTime:   ms(spanStart + dist/velocity),
				RepeatIndex: span,
				Position:    sp.PositionAt(progress),
			})
		}

		if span < slides-1 {
			end := 1.0
			if reversed {
				end = 0
			}
			s.Repeats = append(s.Repeats, game.NestedDescriptor{
				StartTime:   ms(spanStart + leg),
				RepeatIndex: span,
				Position:    sp.PositionAt(end),
			})
		}
	}

	return s, nil
}

// parseCurve reads "B|x:y|x:y" control points, the curve type is ignored
func parseCurve(curve string) []game.Vec2 {
	var out []game.Vec2
	for i, part := range strings.Split(curve, "|") {
		if i == 0 {
			continue
		}
		xy := strings.SplitN(part, ":", 2)
		if len(xy) != 2 {
			continue
		}
		x, errX := strconv.ParseFloat(xy[0], 64)
		y, errY := strconv.ParseFloat(xy[1], 64)
		if nil != errX || nil != errY {
			continue
		}
		out = append(out, game.Vec2{x, y})
	}
	return out
}

func ms(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Millisecond)))
}

func splitKeyVal(line string) (key, val string) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
