package theme

import (
	"errors"
	"testing"

	"git.lost.host/meutraa/linefall/internal/game"
)

var line = &game.StaticLine{LineState: game.NewLineState(0, 0, 0, 0, 1, false)}

func note(t *testing.T, raw game.Raw) *game.Note {
	n, err := game.NewNote(raw, line)
	if nil != err {
		t.Fatal(err)
	}
	return n
}

func TestGlyph(t *testing.T) {
	th := DefaultTheme{MultiHighlight: true}
	for kind, sym := range syms {
		g, err := th.Glyph(note(t, game.Raw{"type": int(kind)}))
		if nil != err || g.Symbol != sym || g.Color != noteColors[kind] {
			t.Log(kind, g, err)
			t.Fail()
		}
		if (kind == game.Hold) != (g.Body != "") {
			t.Log("hold body", kind, g)
			t.Fail()
		}
	}
}

func TestGlyphUnsupported(t *testing.T) {
	th := DefaultTheme{}
	for _, raw := range []game.Raw{{"type": 0}, {"type": 5}, {"type": 2.5}, {"type": -1}} {
		n := note(t, raw)
		_, err := th.Glyph(n)
		var kerr *UnsupportedKindError
		if !errors.As(err, &kerr) || kerr.Kind != n.Kind {
			t.Log(raw, err)
			t.Fail()
		}
	}
}

func TestGlyphHighlight(t *testing.T) {
	n := note(t, game.Raw{"type": 1, "isMulti": true})
	g, _ := (&DefaultTheme{MultiHighlight: true}).Glyph(n)
	if g.Color != highlight {
		t.Fail()
	}
	g, _ = (&DefaultTheme{}).Glyph(n)
	if g.Color != noteColors[game.Tap] {
		t.Fail()
	}
}

func TestGlyphTexture(t *testing.T) {
	g, err := (&DefaultTheme{}).Glyph(note(t, game.Raw{"type": 4, "texture": "flick.png"}))
	if nil != err || g.Symbol != customSym {
		t.Log(g, err)
		t.Fail()
	}
}
