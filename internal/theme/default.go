package theme

import (
	"fmt"

	"git.lost.host/meutraa/linefall/internal/game"
)

// UnsupportedKindError is returned when no visual exists for a note kind.
type UnsupportedKindError struct {
	Kind game.Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported note type: %v", int(e.Kind))
}

type DefaultTheme struct {
	// MultiHighlight enables the highlighted glyphs for notes sharing a time.
	MultiHighlight bool
}

func (t *DefaultTheme) Glyph(note *game.Note) (Glyph, error) {
	sym, ok := syms[note.Kind]
	if !ok {
		return Glyph{}, &UnsupportedKindError{Kind: note.Kind}
	}
	g := Glyph{Symbol: sym, Color: noteColors[note.Kind]}
	if note.Kind == game.Hold {
		g.Body = holdBodySym
	}
	if note.IsMulti && t.MultiHighlight {
		g.Color = highlight
	}
	if note.Texture != "" {
		g.Symbol = customSym
	}
	return g, nil
}

// Render wraps s in the escape codes for c.
func Render(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	holdBodySym = "┃"
	customSym   = "◆"
)

var (
	syms = map[game.Kind]string{
		game.Tap:   "●",
		game.Drag:  "▬",
		game.Hold:  "▼",
		game.Flick: "▲",
	}
	noteColors = map[game.Kind]Color{
		game.Tap:   {10, 195, 255},  // blue
		game.Drag:  {240, 237, 105}, // yellow
		game.Hold:  {10, 195, 255},  // blue, same as tap
		game.Flick: {254, 67, 101},  // red
	}
	highlight = Color{255, 236, 160} // gold
)
