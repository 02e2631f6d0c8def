package resolve

import (
	"git.lost.host/meutraa/linefall/internal/area"
	"git.lost.host/meutraa/linefall/internal/game"
)

type Point struct {
	X, Y float64
}

// HoldBody is the live geometry of a Hold note, in note local units.
type HoldBody struct {
	HeadVisible bool
	Length      float64
	TailY       float64 // offset of the tail from the head, always -Length
}

// Transform is everything the render layer needs to place a note for one
// frame. It is recomputed from scratch each frame.
type Transform struct {
	NoteID    float64
	LineID    int
	Position  Point
	Landing   Point // where the note meets its line
	Angle     float64
	Alpha     float64
	Visible   bool
	OutScreen bool
	Hold      *HoldBody
}

func fround(x float64) float64 {
	return float64(float32(x))
}

// distance converts a floor position into a pixel offset from the line.
func distance(n *game.Note, floor float64, line game.LineState, vp Viewport) float64 {
	return fround((floor - line.FloorPosition) * n.Speed * vp.NoteSpeed)
}

// Resolve computes the transform of n at time now. ok is false when the note
// has no visual yet, in which case nothing is computed.
//
// The line state must already be updated for now.
func Resolve(n *game.Note, now float64, vp Viewport) (tr Transform, ok bool) {
	if !n.Bound() {
		return tr, false
	}
	line := n.Line.State()

	side := 1.0
	if n.IsAbove {
		side = -1
	}

	originX := vp.WidthBasis * n.PositionX
	rawY := distance(n, n.FloorPosition, line, vp)
	originY := rawY * side

	realX := originY * line.Sin * -1
	realY := originY * line.Cos

	tail := originY
	if n.Kind == game.Hold {
		rawHold := distance(n, n.EndFloorPosition, line, vp)
		tail = rawHold * side

		body := &HoldBody{HeadVisible: true}
		if n.HoldingAt(now) {
			// The head sits on the line and the body shrinks towards it.
			realX, realY = 0, 0
			body.HeadVisible = false
			body.Length = rawHold / vp.NoteScale
		} else {
			body.Length = fround(n.HoldLength*n.Speed*vp.NoteSpeed) / vp.NoteScale
		}
		body.TailY = -body.Length
		tr.Hold = body
	}

	yOffset := vp.Height * n.YOffset
	tr.Landing = Point{
		X: yOffset*line.Sin + originX*line.Cos + line.X,
		Y: yOffset*line.Cos + originX*line.Sin + line.Y,
	}
	tr.Position = Point{X: tr.Landing.X + realX, Y: tr.Landing.Y + realY}

	tr.NoteID = n.ID
	tr.LineID = n.Line.ID()
	tr.Alpha = n.BasicAlpha
	tr.Angle = line.Angle
	if !n.IsAbove {
		tr.Angle += 180
	}

	tr.OutScreen = !area.Overlaps(area.Rect{
		StartX: tr.Position.X,
		StartY: tr.Position.Y,
		EndX:   originX*line.Cos - tail*line.Sin + line.X,
		EndY:   tail*line.Cos + originX*line.Sin + line.Y,
	}, vp.Area)
	tr.Visible = !tr.OutScreen
	if tr.OutScreen {
		return tr, true
	}

	tr.Visible = visible(n, now, line, rawY+yOffset < 0)
	return tr, true
}

// visible applies the per note hiding rules to a note that is on screen.
// behind is true when the note is on the far side of its line.
func visible(n *game.Note, now float64, line game.LineState, behind bool) bool {
	if line.Alpha < 0 {
		return false
	}

	pending := n.Time > now && behind && line.IsCover
	if n.Kind == game.Hold {
		if pending || n.HoldEndTime <= now {
			return false
		}
	} else {
		if pending {
			return false
		}
		// Fake notes never score, so they vanish at their time.
		if n.IsFake && n.Time <= now {
			return false
		}
	}

	if !n.Unbounded() && n.Time-now > n.VisibleTime {
		return false
	}
	return true
}
