package ingest

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Series holds aligned, finite displacement and load samples.
type Series struct {
	Displacement []float64
	Load         []float64
	// Dropped counts cells discarded from each column before alignment.
	DroppedDisplacement int
	DroppedLoad         int
}

func (s Series) Len() int { return len(s.Load) }

// Dataset is a resolved and cleaned input file.
type Dataset struct {
	Series  Series
	Columns Columns
}

// Extract coerces both columns to numbers. Each column drops its own
// unparseable or non-finite cells, then both are truncated to the shorter
// length. Alignment is positional; no values are interpolated.
func Extract(t *Table, cols Columns) Series {
	disp, droppedDisp := numeric(t.Column(cols.Displacement))
	load, droppedLoad := numeric(t.Column(cols.Load))

	n := min(len(disp), len(load))
	return Series{
		Displacement:        disp[:n],
		Load:                load[:n],
		DroppedDisplacement: droppedDisp,
		DroppedLoad:         droppedLoad,
	}
}

func numeric(cells []string) ([]float64, int) {
	out := make([]float64, 0, len(cells))
	dropped := 0
	for _, c := range cells {
		v, ok := ParseNumber(c)
		if !ok {
			dropped++
			continue
		}
		out = append(out, v)
	}
	return out, dropped
}

// ParseNumber parses a finite decimal number, ignoring surrounding space.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func Parse(r io.Reader, format Format, res Resolver) (*Dataset, error) {
	t, err := Read(r, format)
	if err != nil {
		return nil, err
	}
	return FromTable(t, res)
}

func Load(path string, res Resolver) (*Dataset, error) {
	t, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromTable(t, res)
}

func FromTable(t *Table, res Resolver) (*Dataset, error) {
	cols, err := res.Resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	return &Dataset{Series: Extract(t, cols), Columns: cols}, nil
}
