package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"math"
	"os"

	"git.lost.host/meutraa/linefall/internal/game"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultParser reads a chart snapshot: every judgement line frozen at one
// state together with the raw records of its notes. JSON snapshots are read
// as well since they are valid YAML.
type DefaultParser struct{}

type snapshot struct {
	Lines []lineSnapshot `yaml:"lines"`
	// Notes that name their line by id instead of being nested in it
	Notes []game.Raw `yaml:"notes"`
}

type lineSnapshot struct {
	ID            int        `yaml:"id"`
	X             float64    `yaml:"x"`
	Y             float64    `yaml:"y"`
	Angle         float64    `yaml:"angle"`
	FloorPosition float64    `yaml:"floorPosition"`
	Alpha         *float64   `yaml:"alpha"`
	IsCover       bool       `yaml:"isCover"`
	NotesAbove    []game.Raw `yaml:"notesAbove"`
	NotesBelow    []game.Raw `yaml:"notesBelow"`
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read chart")
	}
	chart, err := p.ParseBytes(data)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to parse %v", file)
	}
	return chart, nil
}

func (p *DefaultParser) ParseBytes(data []byte) (*game.Chart, error) {
	var s snapshot
	if err := yaml.Unmarshal(data, &s); nil != err {
		return nil, err
	}

	sum := sha256.Sum256(data)
	chart := &game.Chart{Sum: base64.StdEncoding.EncodeToString(sum[:])}
	byID := map[int]game.Line{}

	add := func(raw game.Raw, line game.Line) error {
		if nil == raw {
			raw = game.Raw{}
		}
		note, err := game.NewNote(raw, line)
		if nil != err {
			return err
		}
		chart.Add(note)
		return nil
	}

	for _, ls := range s.Lines {
		alpha := 1.0
		if nil != ls.Alpha {
			alpha = *ls.Alpha
		}
		line := &game.StaticLine{
			Index:     ls.ID,
			LineState: game.NewLineState(ls.X, ls.Y, ls.Angle, ls.FloorPosition, alpha, ls.IsCover),
		}
		if _, ok := byID[ls.ID]; ok {
			return nil, errors.Errorf("duplicate judgement line %v", ls.ID)
		}
		byID[ls.ID] = line
		chart.Lines = append(chart.Lines, line)

		for _, raw := range ls.NotesAbove {
			if nil == raw {
				raw = game.Raw{}
			}
			raw["isAbove"] = true
			if err := add(raw, line); nil != err {
				return nil, err
			}
		}
		for _, raw := range ls.NotesBelow {
			if nil == raw {
				raw = game.Raw{}
			}
			raw["isAbove"] = false
			if err := add(raw, line); nil != err {
				return nil, err
			}
		}
	}

	for _, raw := range s.Notes {
		var line game.Line
		if id, ok := lineID(raw); ok {
			line = byID[id]
		}
		if err := add(raw, line); nil != err {
			return nil, err
		}
	}

	return chart, nil
}

func lineID(raw game.Raw) (int, bool) {
	f := raw.Number("line")
	if math.IsNaN(f) {
		return 0, false
	}
	return int(f), true
}
