package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chart(t *testing.T) string {
	file := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(file, []byte("lines: []\n"), 0644); nil != err {
		t.Fatal(err)
	}
	return file
}

func TestParseDefaults(t *testing.T) {
	file := chart(t)
	c, err := Parse([]string{file})
	if nil != err {
		t.Fatal(err)
	}
	if c.Chart != file || c.Width != 1920 || c.Height != 1080 || c.Workers != 1 || !c.Multi || c.Preview {
		t.Log(c)
		t.Fail()
	}
	vp := c.Viewport()
	if vp.WidthBasis != 108 || vp.NoteSpeed != 648 {
		t.Log(vp)
		t.Fail()
	}
	if times := c.Times(); len(times) != 1 || times[0] != 0 {
		t.Log(times)
		t.Fail()
	}
}

func TestParseFlags(t *testing.T) {
	c, err := Parse([]string{chart(t), "-t", "1000", "--until", "1100", "--step", "50", "-W", "1280", "-H", "720", "-w", "4", "--no-multi-highlight", "-p"})
	if nil != err {
		t.Fatal(err)
	}
	if c.Width != 1280 || c.Height != 720 || c.Workers != 4 || c.Multi || !c.Preview {
		t.Log(c)
		t.Fail()
	}
	times := c.Times()
	if len(times) != 3 || times[0] != 1000 || times[1] != 1050 || times[2] != 1100 {
		t.Log(times)
		t.Fail()
	}
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{filepath.Join(t.TempDir(), "missing.yaml")},
		{chart(t), "--width", "wide"},
	} {
		if _, err := Parse(args); nil == err {
			t.Log(args)
			t.Fail()
		}
	}
}
