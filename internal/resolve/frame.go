package resolve

import (
	"context"

	"git.lost.host/meutraa/linefall/internal/game"
	"golang.org/x/sync/errgroup"
)

// Frame resolves every note for one frame, splitting the notes between at
// most workers goroutines. The result is index aligned with notes. Notes
// without a visual come back off screen.
//
// All line states must be final for now before Frame is called.
func Frame(ctx context.Context, notes []*game.Note, now float64, vp Viewport, workers int) ([]Transform, error) {
	out := make([]Transform, len(notes))
	if len(notes) == 0 {
		return out, nil
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(notes) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(notes); start += chunk {
		start, end := start, min(start+chunk, len(notes))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); nil != err {
					return err
				}
				n := notes[i]
				tr, ok := Resolve(n, now, vp)
				if !ok {
					tr = Transform{NoteID: n.ID, LineID: n.Line.ID(), OutScreen: true}
				}
				out[i] = tr
			}
			return nil
		})
	}
	if err := g.Wait(); nil != err {
		return nil, err
	}
	return out, nil
}
