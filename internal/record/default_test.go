package record

import (
	"context"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/linefall/internal/game"
	"git.lost.host/meutraa/linefall/internal/parser"
	"git.lost.host/meutraa/linefall/internal/resolve"
	"git.lost.host/meutraa/linefall/internal/testdata"
	"github.com/davecgh/go-spew/spew"
)

func frame(t *testing.T, now float64) (*game.Chart, []resolve.Transform) {
	p := parser.DefaultParser{}
	chart, err := p.ParseBytes(testdata.Snapshot)
	if nil != err {
		t.Fatal(err)
	}
	for _, n := range chart.Notes {
		n.Bind()
	}
	transforms, err := resolve.Frame(context.Background(), chart.Notes, now, resolve.NewViewport(1920, 1080, 1, 8000), 2)
	if nil != err {
		t.Fatal(err)
	}
	return chart, transforms
}

func open(t *testing.T) *DefaultRecorder {
	r := &DefaultRecorder{}
	if err := r.Init(filepath.Join(t.TempDir(), "frames.db")); nil != err {
		t.Fatal(err)
	}
	t.Cleanup(r.Deinit)
	return r
}

func TestSaveLoad(t *testing.T) {
	r := open(t)
	chart, transforms := frame(t, 2000)
	if err := r.Save(chart, 2000, transforms); nil != err {
		t.Fatal(err)
	}
	// Saving the same frame twice replaces it
	if err := r.Save(chart, 2000, transforms); nil != err {
		t.Fatal(err)
	}

	loaded, err := r.Load(chart, 2000)
	if nil != err {
		t.Fatal(err)
	}
	if mismatches := Compare(transforms, loaded); len(mismatches) != 0 {
		t.Log(spew.Sdump(mismatches))
		t.Fail()
	}

	other, err := r.Load(chart, 2001)
	if nil != err || len(other) != 0 {
		t.Log(other, err)
		t.Fail()
	}
}

func TestCompare(t *testing.T) {
	_, a := frame(t, 2000)
	_, b := frame(t, 2000)
	if len(Compare(a, b)) != 0 {
		t.Fail()
	}

	b[3].Position.X += 1e-9
	b[5].Visible = !b[5].Visible
	mismatches := Compare(a, b[:8])
	if len(mismatches) != 3 || mismatches[0].Index != 3 || mismatches[1].Index != 5 || mismatches[2].Index != 8 {
		t.Log(spew.Sdump(mismatches))
		t.Fail()
	}
}

func TestCompareHold(t *testing.T) {
	a := []resolve.Transform{{Hold: &resolve.HoldBody{Length: 3, TailY: -3}}}
	b := []resolve.Transform{{}}
	c := []resolve.Transform{{Hold: &resolve.HoldBody{Length: 3, TailY: -3}}}
	if len(Compare(a, b)) != 1 || len(Compare(a, c)) != 0 {
		t.Fail()
	}
}
