package render

import (
	"git.lost.host/meutraa/linefall/internal/game"
	"git.lost.host/meutraa/linefall/internal/resolve"
)

type Renderer interface {
	// Build creates the visual for a note and binds it.
	Build(note *game.Note) error
	Draw(notes []*game.Note, transforms []resolve.Transform, vp resolve.Viewport)
	Fill(row, column int, message string)
	Flush() error
}
