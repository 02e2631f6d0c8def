package resolve

import "git.lost.host/meutraa/linefall/internal/area"

// Viewport holds the stage sizing every note of a frame is resolved against.
type Viewport struct {
	WidthBasis float64 // pixels per unit of note PositionX
	Width      float64
	Height     float64
	NoteSpeed  float64 // pixels per unit of floor position
	NoteScale  float64 // divisor applied to Hold bodies
	Area       area.Rect
}

// NewViewport derives the sizing for a stage of the given pixel size.
// speed scales the default note speed and scaleDivisor is the texture width
// a note is drawn at when the stage is scaleDivisor pixels wide.
func NewViewport(width, height, speed, scaleDivisor float64) Viewport {
	return Viewport{
		WidthBasis: width * 9 / 160,
		Width:      width,
		Height:     height,
		NoteSpeed:  height * 0.6 * speed,
		NoteScale:  width / scaleDivisor,
		Area:       area.Rect{EndX: width, EndY: height},
	}
}
