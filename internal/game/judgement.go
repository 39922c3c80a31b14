package game

import (
	"time"
)

// HitResult is the ordered quality scale of a judgement.
// None means the object has not been judged yet.
type HitResult uint8

const (
	None HitResult = iota
	Miss
	Meh
	Good
	Great
)

var resultNames = map[HitResult]string{
	None:  "None",
	Miss:  "Miss",
	Meh:   "Meh",
	Good:  "Good",
	Great: "Great",
}

func (r HitResult) String() string {
	name, ok := resultNames[r]
	if !ok {
		return "Unknown"
	}
	return name
}

// IsHit reports whether the result counts towards a slider's hit fraction
func (r HitResult) IsHit() bool {
	return r > Miss
}

// Results lists the judged results from best to worst
var Results = []HitResult{Great, Good, Meh, Miss}

// Judgement is one entry of the timing window table.
// A hit whose absolute offset is below Time is given Result.
type Judgement struct {
	Time   time.Duration
	Name   string
	Result HitResult
}

// Judge returns the first window in table the offset fits, the table is
// expected to be ordered from tightest to loosest with a trailing Miss entry.
func Judge(table []Judgement, offset time.Duration) HitResult {
	if offset < 0 {
		offset = -offset
	}
	for i := 0; i < len(table)-1; i++ {
		if offset < table[i].Time {
			return table[i].Result
		}
	}
	return Miss
}

// Outermost returns the widest window that still produces a hit
func Outermost(table []Judgement) time.Duration {
	if len(table) < 2 {
		return 0
	}
	return table[len(table)-2].Time
}

// DefaultJudgements is the window table used when none is configured
var DefaultJudgements = []Judgement{
	{Time: 50 * time.Millisecond, Name: "Great", Result: Great},
	{Time: 100 * time.Millisecond, Name: "Good", Result: Good},
	{Time: 150 * time.Millisecond, Name: "Meh", Result: Meh},
	{Time: -1, Name: "Miss", Result: Miss},
}
