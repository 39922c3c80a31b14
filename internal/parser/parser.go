package parser

import "git.lost.host/meutraa/slide/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
