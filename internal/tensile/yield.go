package tensile

// OffsetStrain is the plastic strain offset of the proof-stress construction.
const OffsetStrain = 0.002

// OffsetStress evaluates the offset line E·(x − 0.002) at strain x.
func OffsetStress(modulus, strain float64) float64 {
	return modulus * (strain - OffsetStrain)
}

// LocateYield returns the last sample on or above the 0.2% offset line
// before the curve first drops below it.
//
// ok is false when the curve never crosses the line, and also when the
// very first sample is already below it: there is no earlier sample to
// report, so that case is treated as no yield.
func LocateYield(strain, stress []float64, modulus float64) (index int, ok bool) {
	for i := range strain {
		if strain[i] > OffsetStrain && stress[i] < OffsetStress(modulus, strain[i]) {
			if i == 0 {
				return 0, false
			}
			return i - 1, true
		}
	}
	return 0, false
}

// OffsetLine is the segment from (0.002, 0) to the yield point.
func OffsetLine(yield Point) []XY {
	return []XY{
		{X: OffsetStrain, Y: 0},
		{X: yield.Strain, Y: yield.Stress},
	}
}
