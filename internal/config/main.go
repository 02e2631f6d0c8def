package config

import (
	"git.lost.host/meutraa/linefall/internal/resolve"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Config struct {
	Chart   string
	Time    float64 // ms
	Until   float64
	Step    float64
	Width   float64
	Height  float64
	Speed   float64
	Scale   float64
	Workers int
	Record  string
	Compare string
	Preview bool
	Multi   bool
	Debug   bool
}

// Viewport derives the stage sizing from the configured resolution.
func (c *Config) Viewport() resolve.Viewport {
	return resolve.NewViewport(c.Width, c.Height, c.Speed, c.Scale)
}

// Times lists every frame time from Time to Until, Step apart.
func (c *Config) Times() []float64 {
	times := []float64{c.Time}
	if c.Step <= 0 {
		return times
	}
	for t := c.Time + c.Step; t <= c.Until; t += c.Step {
		times = append(times, t)
	}
	return times
}

// Parse reads the command line into a Config.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	app := kingpin.New("linefall", "Resolve note positions of a chart snapshot")
	app.Version("0.1.0")
	app.Arg("chart", "Chart snapshot (yaml or json)").Required().ExistingFileVar(&c.Chart)
	app.Flag("time", "Playback time in ms").Default("0").Short('t').FloatVar(&c.Time)
	app.Flag("until", "Last playback time in ms").Default("0").Short('u').FloatVar(&c.Until)
	app.Flag("step", "Time between frames in ms").Default("16.666").Short('s').FloatVar(&c.Step)
	app.Flag("width", "Stage width").Default("1920").Short('W').FloatVar(&c.Width)
	app.Flag("height", "Stage height").Default("1080").Short('H').FloatVar(&c.Height)
	app.Flag("speed", "Note speed multiplier").Default("1").FloatVar(&c.Speed)
	app.Flag("note-scale", "Stage width notes are drawn at full size").Default("8000").FloatVar(&c.Scale)
	app.Flag("workers", "Goroutines per frame").Default("1").Short('w').IntVar(&c.Workers)
	app.Flag("record", "Save resolved frames to this database").StringVar(&c.Record)
	app.Flag("compare", "Compare resolved frames against this database").StringVar(&c.Compare)
	app.Flag("preview", "Draw the last frame to the terminal").Short('p').BoolVar(&c.Preview)
	app.Flag("multi-highlight", "Highlight notes sharing a time").Default("true").BoolVar(&c.Multi)
	app.Flag("debug", "Dump every transform").Short('d').BoolVar(&c.Debug)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if c.Until < c.Time {
		c.Until = c.Time
	}
	return c, nil
}
