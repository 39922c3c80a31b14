package theme

import "git.lost.host/meutraa/slide/internal/game"

type Theme interface {
	RenderPath(travelled bool) string
	RenderBall(tracking bool) string
	RenderTick(highlighted bool) string
	RenderRepeat(approaching bool) string
	RenderInitial() string
	RenderApproach() string
	RenderJudgement(result game.HitResult) string
}
