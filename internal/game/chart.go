package game

type Chart struct {
	Lines     []Line
	Notes     []*Note
	NoteCount int64
	HoldCount int64
	FakeCount int64
	Sum       string // identifies the chart source
}

// Add appends the note and keeps the counters in step.
func (c *Chart) Add(n *Note) {
	c.Notes = append(c.Notes, n)
	if n.IsFake {
		c.FakeCount++
		return
	}
	c.NoteCount++
	if n.Kind == Hold {
		c.HoldCount++
	}
}

// Reset clears the judging state of every note.
func (c *Chart) Reset() {
	for _, n := range c.Notes {
		n.Reset()
	}
}
