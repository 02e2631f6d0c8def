package area

// Rect is an axis aligned box described by two corners. It is used both for
// the viewport and for the (possibly zero length) segment a note covers.
type Rect struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// Normalize orders the corners so start <= end, each axis on its own.
func (r Rect) Normalize() Rect {
	if r.StartX > r.EndX {
		r.StartX, r.EndX = r.EndX, r.StartX
	}
	if r.StartY > r.EndY {
		r.StartY, r.EndY = r.EndY, r.StartY
	}
	return r
}

// Contains reports whether the point lies inside the closed bounds of r.
// r must already be normalized.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.StartX && x <= r.EndX && y >= r.StartY && y <= r.EndY
}

// Overlaps reports whether either corner of the normalized segment lies
// inside the normalized area.
//
// This is a containment check on the two extremities only. A long segment
// passing through the area with both corners outside of it is reported as
// not overlapping; charts are authored against this behaviour.
func Overlaps(segment, area Rect) bool {
	s, a := segment.Normalize(), area.Normalize()
	return a.Contains(s.StartX, s.StartY) || a.Contains(s.EndX, s.EndY)
}
