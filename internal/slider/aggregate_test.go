package slider

import (
	"testing"

	"git.lost.host/meutraa/slide/internal/game"
)

type aggregateTest struct {
	Initial game.HitResult
	Hits    int
	Total   int
}

var aggregateTests = map[aggregateTest]game.HitResult{
	{Initial: game.Great, Hits: 5, Total: 5}: game.Great,
	{Initial: game.Good, Hits: 5, Total: 5}:  game.Good,
	{Initial: game.Meh, Hits: 5, Total: 5}:   game.Meh,
	{Initial: game.Great, Hits: 3, Total: 5}: game.Good,
	{Initial: game.Good, Hits: 3, Total: 5}:  game.Good,
	{Initial: game.Great, Hits: 2, Total: 5}: game.Meh,
	{Initial: game.Good, Hits: 2, Total: 5}:  game.Meh,
	{Initial: game.Miss, Hits: 2, Total: 5}:  game.Meh,
	{Initial: game.Miss, Hits: 4, Total: 5}:  game.Meh,
	{Initial: game.Miss, Hits: 0, Total: 5}:  game.Miss,
	{Initial: game.Great, Hits: 1, Total: 1}: game.Great,
	{Initial: game.Miss, Hits: 0, Total: 1}:  game.Miss,
	{Initial: game.Great, Hits: 1, Total: 2}: game.Good,
}

func TestAggregate(t *testing.T) {
	for in, expected := range aggregateTests {
		out := Aggregate(in.Initial, in.Hits, in.Total)
		if out != expected {
			t.Log("in      ", in)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}
