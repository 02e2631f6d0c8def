package theme

import "git.lost.host/meutraa/linefall/internal/game"

type Theme interface {
	// Glyph builds the visual for a note. It fails for kinds it cannot draw.
	Glyph(note *game.Note) (Glyph, error)
}

type Color struct {
	R, G, B uint8
}

// Glyph is the terminal visual of a note.
type Glyph struct {
	Symbol string
	Body   string // Hold body, empty for other kinds
	Color  Color
}
