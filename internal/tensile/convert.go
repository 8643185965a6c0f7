package tensile

// Convert maps raw samples to engineering stress and strain.
// Callers must have validated geometry, units and alignment.
func Convert(displacement, load []float64, sp Specimen, u Units) (stress, strain []float64) {
	stress = make([]float64, len(load))
	for i, f := range load {
		stress[i] = f / sp.Area * u.StressScale
	}

	strain = make([]float64, len(displacement))
	for i, d := range displacement {
		strain[i] = (d / u.DisplacementPerLength) / sp.GaugeLength
	}

	return stress, strain
}
