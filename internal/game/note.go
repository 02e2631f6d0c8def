package game

import (
	"fmt"
	"math"
)

// Unbounded is the visible window value at and above which a note is never
// hidden by its lead time.
const Unbounded = 999999

// ValidationError is returned when a note cannot be constructed at all.
type ValidationError struct {
	NoteID float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid note %v: %s", e.NoteID, e.Reason)
}

type Note struct {
	ID    float64 // as authored, not necessarily integral
	Kind  Kind
	Time  float64 // single precision, ms
	Speed float64

	HoldTime    float64 // Hold only
	HoldEndTime float64 // Time + HoldTime, Hold only

	FloorPosition    float64
	HoldLength       float64 // floor distance covered while held, Hold only
	EndFloorPosition float64

	PositionX   float64 // along the line, 6 decimal places
	BasicAlpha  float64
	VisibleTime float64 // NaN when unbounded
	YOffset     float64
	XScale      float64

	IsAbove bool
	IsFake  bool
	IsMulti bool

	Texture  string
	Hitsound string

	Line Line

	bound bool

	// Judging state, owned by the scorer
	IsScored        bool
	IsScoreAnimated bool
	IsHolding       bool
	LastHoldTime    float64
	Score           int
	ScoreTime       float64
}

// NewNote builds a note from a raw chart record. Malformed numbers fall back
// to their defaults; only a missing line is an error.
//
// The kind is stored as given, an unsupported kind fails later when a visual
// is built for the note.
func NewNote(raw Raw, line Line) (*Note, error) {
	n := &Note{}

	n.ID = -1
	if id := raw.Number("id"); !math.IsNaN(id) {
		n.ID = id
	}

	n.Kind = Tap
	if k := raw.Number("type"); !math.IsNaN(k) {
		if k == math.Trunc(k) && !math.IsInf(k, 0) {
			n.Kind = Kind(k)
		} else {
			n.Kind = KindUnknown
		}
	}

	n.Time = -1
	if t := raw.Number("time"); !math.IsNaN(t) {
		n.Time = fround(t)
	}

	if n.Kind == Hold {
		if h := raw.Number("holdTime"); !math.IsNaN(h) {
			n.HoldTime = fround(h)
		}
		n.HoldEndTime = fround(n.Time + n.HoldTime)
	}

	n.Speed = numberOr(raw, "speed", 1)

	n.FloorPosition = n.Time
	if f := raw.Number("floorPosition"); !math.IsNaN(f) {
		n.FloorPosition = fround(f)
	}

	if n.Kind == Hold {
		if l := raw.Number("holdLength"); !math.IsNaN(l) {
			n.HoldLength = fround(l)
		}
	}
	n.EndFloorPosition = fround(n.FloorPosition + n.HoldLength)

	if x := raw.Number("positionX"); !math.IsNaN(x) {
		n.PositionX = toFixed6(x)
	}

	n.BasicAlpha = 1
	if a := raw.Number("basicAlpha"); a >= 0 && a <= 1 {
		n.BasicAlpha = a
	}

	n.VisibleTime = math.NaN()
	if v := raw.Number("visibleTime"); v < Unbounded {
		n.VisibleTime = v
	}

	n.YOffset = numberOr(raw, "yOffset", 0)
	n.XScale = numberOr(raw, "xScale", 1)

	n.IsAbove = raw.Truthy("isAbove")
	n.IsFake = raw.Truthy("isFake")
	n.IsMulti = raw.Truthy("isMulti")

	n.Texture, _ = raw.String("texture")
	n.Hitsound, _ = raw.String("hitsound")

	if nil == line {
		return nil, &ValidationError{NoteID: raw.Number("id"), Reason: "note must have a judgement line"}
	}
	n.Line = line

	n.Reset()
	return n, nil
}

func numberOr(raw Raw, key string, def float64) float64 {
	if v := raw.Number(key); !math.IsNaN(v) {
		return v
	}
	return def
}

// Reset clears the judging state.
func (n *Note) Reset() {
	n.IsScored = false
	n.IsScoreAnimated = false
	n.IsHolding = false
	n.LastHoldTime = math.NaN()
	n.Score = 0
	n.ScoreTime = 0
}

// Bind marks the note as having a visual. Notes without one are skipped
// when resolving a frame.
func (n *Note) Bind() {
	n.bound = true
}

func (n *Note) Bound() bool {
	return n.bound
}

// Unbounded reports whether the note has no lead time limit.
func (n *Note) Unbounded() bool {
	return math.IsNaN(n.VisibleTime)
}

// HoldingAt reports whether a Hold note is inside its held window.
func (n *Note) HoldingAt(now float64) bool {
	return n.Kind == Hold && n.Time <= now && n.HoldEndTime > now
}
