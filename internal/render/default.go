package render

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/linefall/internal/game"
	"git.lost.host/meutraa/linefall/internal/resolve"
	"git.lost.host/meutraa/linefall/internal/theme"
	"golang.org/x/term"
)

// DefaultRenderer plots resolved notes onto a terminal cell grid.
type DefaultRenderer struct {
	Theme theme.Theme
	Out   io.Writer

	Rows, Columns int

	buffer strings.Builder
	glyphs map[*game.Note]theme.Glyph
}

// NewDefaultRenderer sizes the grid from the terminal behind out, falling
// back to columns x rows when out is not a terminal.
func NewDefaultRenderer(out io.Writer, th theme.Theme, columns, rows int) *DefaultRenderer {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if c, r, err := term.GetSize(int(f.Fd())); nil == err {
			columns, rows = c, r
		}
	}
	return &DefaultRenderer{
		Theme:   th,
		Out:     out,
		Rows:    rows,
		Columns: columns,
		glyphs:  map[*game.Note]theme.Glyph{},
	}
}

func (r *DefaultRenderer) Build(note *game.Note) error {
	if note.Bound() {
		return nil
	}
	g, err := r.Theme.Glyph(note)
	if nil != err {
		return err
	}
	r.glyphs[note] = g
	note.Bind()
	return nil
}

// cell maps a stage position to a 1 based terminal row and column.
func (r *DefaultRenderer) cell(p resolve.Point, vp resolve.Viewport) (int, int, bool) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return 0, 0, false
	}
	col := int(math.Floor(p.X/vp.Width*float64(r.Columns))) + 1
	row := int(math.Floor(p.Y/vp.Height*float64(r.Rows))) + 1
	if col < 1 || col > r.Columns || row < 1 || row > r.Rows {
		return 0, 0, false
	}
	return row, col, true
}

func (r *DefaultRenderer) Draw(notes []*game.Note, transforms []resolve.Transform, vp resolve.Viewport) {
	r.buffer.WriteString("\033[H\033[J")
	for i, tr := range transforms {
		if !tr.Visible || i >= len(notes) {
			continue
		}
		g, ok := r.glyphs[notes[i]]
		if !ok {
			continue
		}
		// Hold bodies are drawn from the tail back to the head, so the head
		// ends up on top.
		if nil != tr.Hold && g.Body != "" && vp.NoteScale > 0 {
			rad := tr.Angle * math.Pi / 180
			length := tr.Hold.Length * vp.NoteScale
			steps := int(math.Abs(length)/vp.Height*float64(r.Rows)) + 1
			for s := steps; s > 0; s-- {
				d := length * float64(s) / float64(steps)
				p := resolve.Point{X: tr.Position.X + d*math.Sin(rad), Y: tr.Position.Y - d*math.Cos(rad)}
				if row, col, ok := r.cell(p, vp); ok {
					r.Fill(row, col, theme.Render(g.Color, g.Body))
				}
			}
			if !tr.Hold.HeadVisible {
				continue
			}
		}
		if row, col, ok := r.cell(tr.Position, vp); ok {
			r.Fill(row, col, theme.Render(g.Color, g.Symbol))
		}
	}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) Flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}
