package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"git.lost.host/meutraa/linefall/internal/config"
	"git.lost.host/meutraa/linefall/internal/game"
	"git.lost.host/meutraa/linefall/internal/parser"
	"git.lost.host/meutraa/linefall/internal/record"
	"git.lost.host/meutraa/linefall/internal/render"
	"git.lost.host/meutraa/linefall/internal/resolve"
	"git.lost.host/meutraa/linefall/internal/theme"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

type Program struct {
	Config   *config.Config
	Parser   parser.Parser
	Renderer render.Renderer
	Recorder record.Recorder // records to Config.Record
	Expected record.Recorder // reads from Config.Compare
	Out      io.Writer

	chart    *game.Chart
	viewport resolve.Viewport
	skipped  int

	// Stats over every resolved frame
	frames, visible, outScreen, mismatches int
}

func (p *Program) Init() error {
	if nil == p.Parser {
		p.Parser = &parser.DefaultParser{}
	}
	if nil == p.Renderer {
		p.Renderer = render.NewDefaultRenderer(p.Out, &theme.DefaultTheme{MultiHighlight: p.Config.Multi}, 80, 24)
	}

	var err error
	p.chart, err = p.Parser.Parse(p.Config.Chart)
	if nil != err {
		return err
	}
	p.viewport = p.Config.Viewport()

	// Notes without a visual are skipped by the resolver, the chart still
	// plays without them.
	for _, n := range p.chart.Notes {
		if err := p.Renderer.Build(n); nil != err {
			log.Printf("note %v on line %v: %v\n", n.ID, n.Line.ID(), err)
			p.skipped++
		}
	}

	if p.Config.Record != "" && nil == p.Recorder {
		r := &record.DefaultRecorder{}
		if err := r.Init(p.Config.Record); nil != err {
			return err
		}
		p.Recorder = r
	}
	if p.Config.Compare != "" && nil == p.Expected {
		r := &record.DefaultRecorder{}
		if err := r.Init(p.Config.Compare); nil != err {
			return err
		}
		p.Expected = r
	}
	return nil
}

func (p *Program) Deinit() {
	if nil != p.Recorder {
		p.Recorder.Deinit()
	}
	if nil != p.Expected {
		p.Expected.Deinit()
	}
}

// Update resolves the chart at now and hands the frame to the recorders.
func (p *Program) Update(ctx context.Context, now float64) ([]resolve.Transform, error) {
	transforms, err := resolve.Frame(ctx, p.chart.Notes, now, p.viewport, p.Config.Workers)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to resolve frame %v", now)
	}

	p.frames++
	visible, outScreen := 0, 0
	for _, tr := range transforms {
		if tr.Visible {
			visible++
		}
		if tr.OutScreen {
			outScreen++
		}
	}
	p.visible += visible
	p.outScreen += outScreen
	fmt.Fprintf(p.Out, "%10.3f  visible %5v  off screen %5v  notes %5v\n", now, visible, outScreen, len(transforms))

	if p.Config.Debug {
		spew.Fdump(p.Out, transforms)
	}

	if nil != p.Recorder {
		if err := p.Recorder.Save(p.chart, now, transforms); nil != err {
			return nil, err
		}
	}
	if nil != p.Expected {
		expected, err := p.Expected.Load(p.chart, now)
		if nil != err {
			return nil, err
		}
		for _, m := range record.Compare(expected, transforms) {
			p.mismatches++
			log.Printf("frame %v note %v (line %v) differs\n", now, m.Actual.NoteID, m.Actual.LineID)
		}
	}
	return transforms, nil
}

func (p *Program) Render(transforms []resolve.Transform) error {
	p.Renderer.Draw(p.chart.Notes, transforms, p.viewport)
	return p.Renderer.Flush()
}

// Run resolves every configured frame and previews the last one.
func (p *Program) Run(ctx context.Context) error {
	var last []resolve.Transform
	for _, now := range p.Config.Times() {
		transforms, err := p.Update(ctx, now)
		if nil != err {
			return err
		}
		last = transforms
	}

	fmt.Fprintf(p.Out, "      Lines:  %6v\n", len(p.chart.Lines))
	fmt.Fprintf(p.Out, "      Notes:  %6v\n", p.chart.NoteCount)
	fmt.Fprintf(p.Out, "      Holds:  %6v\n", p.chart.HoldCount)
	fmt.Fprintf(p.Out, "      Fakes:  %6v\n", p.chart.FakeCount)
	fmt.Fprintf(p.Out, "    Skipped:  %6v\n", p.skipped)
	fmt.Fprintf(p.Out, "     Frames:  %6v\n", p.frames)

	if p.Config.Preview {
		if err := p.Render(last); nil != err {
			return errors.Wrap(err, "unable to draw preview")
		}
	}

	if p.mismatches > 0 {
		return errors.Errorf("%v notes differ from %v", p.mismatches, p.Config.Compare)
	}
	return nil
}
