package game

import "math"

// LineState is the transform of a judgement line for the current frame.
// It is produced upstream, before any note of that frame is resolved.
type LineState struct {
	X, Y  float64
	Angle float64 // degrees

	// Sin and Cos of Angle, cached by the producer.
	Sin, Cos      float64
	FloorPosition float64
	Alpha         float64
	IsCover       bool
}

// NewLineState derives the sine and cosine from an angle in degrees.
func NewLineState(x, y, angle, floorPosition, alpha float64, isCover bool) LineState {
	rad := angle * math.Pi / 180
	return LineState{
		X:             x,
		Y:             y,
		Angle:         angle,
		Sin:           math.Sin(rad),
		Cos:           math.Cos(rad),
		FloorPosition: floorPosition,
		Alpha:         alpha,
		IsCover:       isCover,
	}
}

// Line is a read only view of a judgement line. Notes never write to it.
type Line interface {
	ID() int
	State() LineState
}

// StaticLine is a judgement line frozen at a single state.
type StaticLine struct {
	Index int
	LineState
}

func (l *StaticLine) ID() int {
	return l.Index
}

func (l *StaticLine) State() LineState {
	return l.LineState
}
