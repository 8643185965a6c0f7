package config

import (
	"math"
	"sort"

	"github.com/san-kum/tensile/internal/tensile"
)

func roundBar(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4
}

// Presets are common standard specimen geometries in SI units (m², m).
var Presets = map[string]tensile.Specimen{
	"astm-e8-round": {Area: roundBar(0.0125), GaugeLength: 0.050},
	"astm-e8-small": {Area: roundBar(0.00625), GaugeLength: 0.025},
	"astm-e8-sheet": {Area: 0.0125 * 0.002, GaugeLength: 0.050},
	"astm-d638-i":   {Area: 0.013 * 0.0032, GaugeLength: 0.050},
	"iso-6892-r10":  {Area: roundBar(0.010), GaugeLength: 0.050},
	"original":      {Area: DefaultArea, GaugeLength: DefaultGaugeLength},
}

func GetPreset(name string) (tensile.Specimen, bool) {
	sp, ok := Presets[name]
	return sp, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
