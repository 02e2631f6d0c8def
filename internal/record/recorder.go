package record

import (
	"git.lost.host/meutraa/linefall/internal/game"
	"git.lost.host/meutraa/linefall/internal/resolve"
)

type Recorder interface {
	Init(path string) error
	Deinit()

	// Save the transforms resolved for a chart at one time
	Save(chart *game.Chart, now float64, transforms []resolve.Transform) error

	// Load the transforms previously saved for the chart at that time
	Load(chart *game.Chart, now float64) ([]resolve.Transform, error)
}

// Mismatch is a note whose transform differs between two recordings.
type Mismatch struct {
	Index    int
	Expected resolve.Transform
	Actual   resolve.Transform
}
