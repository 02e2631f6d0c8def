package parser

import "git.lost.host/meutraa/linefall/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
