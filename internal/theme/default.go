package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/slide/internal/game"
)

type DefaultTheme struct {
}

func colored(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderPath(travelled bool) string {
	if travelled {
		return colored(pathTravelled, pathSym)
	}
	return colored(pathColor, pathSym)
}

func (t *DefaultTheme) RenderBall(tracking bool) string {
	if tracking {
		return colored(trackingColor, ballSym)
	}
	return colored(pathColor, ballSym)
}

func (t *DefaultTheme) RenderTick(highlighted bool) string {
	if highlighted {
		return colored(trackingColor, tickSym)
	}
	return colored(tickColor, tickSym)
}

func (t *DefaultTheme) RenderRepeat(approaching bool) string {
	if approaching {
		return colored(trackingColor, repeatSym)
	}
	return colored(tickColor, repeatSym)
}

func (t *DefaultTheme) RenderInitial() string {
	return colored(initialColor, initialSym)
}

func (t *DefaultTheme) RenderApproach() string {
	return colored(initialColor, approachSym)
}

func (t *DefaultTheme) RenderJudgement(result game.HitResult) string {
	c, ok := judgementColors[result]
	if !ok {
		c = judgementColors[game.None]
	}
	return colored(c, fmt.Sprintf("%5v", result))
}

const (
	pathSym     = "·"
	ballSym     = "●"
	tickSym     = "•"
	repeatSym   = "↺"
	initialSym  = "◯"
	approachSym = "○"
)

var (
	pathColor     = color.RGBA{106, 106, 106, 255}
	pathTravelled = color.RGBA{173, 236, 236, 255}
	trackingColor = color.RGBA{0, 236, 128, 255}
	tickColor     = color.RGBA{236, 236, 236, 255}
	initialColor  = color.RGBA{0, 118, 236, 255}

	judgementColors = map[game.HitResult]color.RGBA{
		game.Great: {0, 118, 236, 255},
		game.Good:  {0, 236, 128, 255},
		game.Meh:   {236, 195, 0, 255},
		game.Miss:  {236, 30, 0, 255},
		game.None:  {255, 255, 255, 255},
	}
)
