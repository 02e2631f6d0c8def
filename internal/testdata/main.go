package testdata

import _ "embed"

// Snapshot is a small chart with two judgement lines, one of them rotated
// and covering, and a note of every kind.
//
//go:embed chart.yaml
var Snapshot []byte
