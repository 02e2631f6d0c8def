package game

import "strconv"

// Kind is the chart note type. The values are the ones charts use on disk.
type Kind int

const (
	KindUnknown Kind = 0
	Tap         Kind = 1
	Drag        Kind = 2
	Hold        Kind = 3
	Flick       Kind = 4
)

// Valid reports whether a visual can be built for this kind.
func (k Kind) Valid() bool {
	switch k {
	case Tap, Drag, Hold, Flick:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case Drag:
		return "drag"
	case Hold:
		return "hold"
	case Flick:
		return "flick"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}
