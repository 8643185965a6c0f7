package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var ErrColumnsNotFound = errors.New("ingest: could not detect displacement and load columns")

// ColumnError lists the normalized headers that were searched.
type ColumnError struct {
	Found []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%v; found %v (expected headers containing 'displacement' or 'extension' and 'load' or 'force')",
		ErrColumnsNotFound, e.Found)
}

func (e *ColumnError) Unwrap() error {
	return ErrColumnsNotFound
}

// Columns identifies the two input columns of a table.
type Columns struct {
	Displacement int    `json:"-"`
	Load         int    `json:"-"`
	DispName     string `json:"displacement"`
	LoadName     string `json:"load"`
}

// Resolver matches normalized headers against substring keys.
type Resolver struct {
	DisplacementKeys []string
	LoadKeys         []string
}

func DefaultResolver() Resolver {
	return Resolver{
		DisplacementKeys: []string{"disp", "extension", "delta"},
		LoadKeys:         []string{"load", "force"},
	}
}

// Resolve scans headers left to right; when several headers match a role
// the rightmost one wins.
func (r Resolver) Resolve(headers []string) (Columns, error) {
	cols := Columns{Displacement: -1, Load: -1}
	normalized := make([]string, len(headers))

	for i, h := range headers {
		name := Normalize(h)
		normalized[i] = name
		if containsAny(name, r.DisplacementKeys) {
			cols.Displacement, cols.DispName = i, name
		}
		if containsAny(name, r.LoadKeys) {
			cols.Load, cols.LoadName = i, name
		}
	}

	if cols.Displacement < 0 || cols.Load < 0 {
		return Columns{}, &ColumnError{Found: normalized}
	}
	return cols, nil
}

// Normalize trims and lowercases a header.
func Normalize(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if k != "" && strings.Contains(s, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
