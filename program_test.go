package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/linefall/internal/config"
	"git.lost.host/meutraa/linefall/internal/testdata"
)

func writeChart(t *testing.T, dir string, data []byte) string {
	file := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(file, data, 0644); nil != err {
		t.Fatal(err)
	}
	return file
}

func program(t *testing.T, args ...string) (*Program, *bytes.Buffer) {
	cfg, err := config.Parse(args)
	if nil != err {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	p := &Program{Config: cfg, Out: out}
	if err := p.Init(); nil != err {
		t.Fatal(err)
	}
	t.Cleanup(p.Deinit)
	return p, out
}

func TestProgramRecordCompare(t *testing.T) {
	dir := t.TempDir()
	file := writeChart(t, dir, testdata.Snapshot)
	db := filepath.Join(dir, "frames.db")

	p, out := program(t, file, "-t", "1500", "--until", "2500", "--step", "250", "--record", db, "-w", "3")
	if err := p.Run(context.Background()); nil != err {
		t.Fatal(err)
	}
	if p.frames != 5 || !strings.Contains(out.String(), "Frames:       5") {
		t.Log(out.String())
		t.Fail()
	}
	p.Deinit()

	q, _ := program(t, file, "-t", "1500", "--until", "2500", "--step", "250", "--compare", db)
	if err := q.Run(context.Background()); nil != err || q.mismatches != 0 {
		t.Log(err)
		t.Fail()
	}

	// A different resolution gives different frames
	r, _ := program(t, file, "-t", "1500", "--until", "2500", "--step", "250", "--compare", db, "-W", "1280", "-H", "720")
	if err := r.Run(context.Background()); nil == err || r.mismatches == 0 {
		t.Log(err)
		t.Fail()
	}
}

func TestProgramSkipsUnsupportedKinds(t *testing.T) {
	dir := t.TempDir()
	file := writeChart(t, dir, []byte("lines:\n  - {id: 0, x: 960, y: 540, notesAbove: [{type: 1, time: 0, floorPosition: 0}, {type: 8}, {type: 3, time: 0, holdTime: 100, floorPosition: 0, holdLength: 1}]}\n"))

	p, out := program(t, file, "--preview")
	if p.skipped != 1 {
		t.Log(p.skipped)
		t.Fail()
	}
	if err := p.Run(context.Background()); nil != err {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Skipped:       1") || !strings.Contains(out.String(), "●") {
		t.Log(out.String())
		t.Fail()
	}
}

func TestProgramDebug(t *testing.T) {
	dir := t.TempDir()
	file := writeChart(t, dir, testdata.Snapshot)
	p, out := program(t, file, "-t", "2000", "--debug")
	if err := p.Run(context.Background()); nil != err {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "resolve.Transform") {
		t.Log(out.String())
		t.Fail()
	}
}

func TestProgramCancelled(t *testing.T) {
	dir := t.TempDir()
	file := writeChart(t, dir, testdata.Snapshot)
	p, _ := program(t, file)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Run(ctx); nil == err {
		t.Fail()
	}
}
