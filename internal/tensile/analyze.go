package tensile

import "math"

// Validate checks specimen geometry and unit factors.
func (in Input) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"area", in.Specimen.Area},
		{"gauge_length", in.Specimen.GaugeLength},
		{"stress_scale", in.Units.StressScale},
		{"displacement_per_length", in.Units.DisplacementPerLength},
	}
	for _, c := range checks {
		if !(c.value > 0) || math.IsInf(c.value, 0) {
			return &AnalysisError{Field: c.field, Value: c.value, Wrapped: ErrInvalidParameter}
		}
	}

	if len(in.Displacement) != len(in.Load) {
		return &AnalysisError{
			Field:   "load",
			Value:   float64(len(in.Load)),
			Wrapped: ErrLengthMismatch,
		}
	}
	if len(in.Load) < 2 {
		return &AnalysisError{Field: "samples", Value: float64(len(in.Load)), Wrapped: ErrInsufficientData}
	}

	if err := checkFinite("displacement", in.Displacement); err != nil {
		return err
	}
	return checkFinite("load", in.Load)
}

func checkFinite(field string, x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &AnalysisError{Field: field, Value: v, Index: i, Wrapped: ErrNonFiniteSample}
		}
	}
	return nil
}

// Analyze runs the full pipeline. It returns either a complete result or
// a single error classified by one of the package sentinels.
func Analyze(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	stress, strain := Convert(in.Displacement, in.Load, in.Specimen, in.Units)

	tangent := TangentModulus(stress, strain)
	secant := SecantModulus(stress, strain)
	angles := SlopeAngles(secant)
	modulus := EstimateModulus(stress, strain, tangent)

	res := &Result{
		Displacement:   clone(in.Displacement),
		Load:           clone(in.Load),
		Stress:         stress,
		Strain:         strain,
		TangentModulus: tangent,
		SecantModulus:  secant,
		SlopeAngles:    angles,
		Modulus:        modulus,
		OffsetLine:     []XY{},
	}

	if yi, ok := LocateYield(strain, stress, modulus); ok {
		p := res.PointAt(yi)
		res.YieldPoint = &p
		res.YieldIndex = &yi
		res.OffsetLine = OffsetLine(p)
	}

	res.FractureIndex, res.PeakIndex = LocateFracture(stress, tangent, modulus)
	res.FracturePoint = res.PointAt(res.FractureIndex)

	res.Metrics = Metrics{
		MaxStress: stress[res.PeakIndex],
		MaxStrain: maxOf(strain),
		MaxLoad:   maxOf(in.Load),
	}
	if res.YieldPoint != nil {
		res.Metrics.YieldStrength = res.YieldPoint.Stress
	}

	return res, nil
}

func clone(x []float64) []float64 {
	c := make([]float64, len(x))
	copy(c, x)
	return c
}
