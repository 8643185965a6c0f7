package tensile

import "math"

// Specimen holds the undeformed geometry of the test piece.
type Specimen struct {
	Area        float64 `json:"area" yaml:"area"`
	GaugeLength float64 `json:"gauge_length" yaml:"gauge_length"`
}

// Units maps raw machine units onto reporting units.
//
// StressScale multiplies load/area (N/m² to MPa by default) and
// DisplacementPerLength divides displacement before it is related to the
// gauge length (mm to m by default).
type Units struct {
	StressScale           float64 `json:"stress_scale" yaml:"stress_scale"`
	DisplacementPerLength float64 `json:"displacement_per_length" yaml:"displacement_per_length"`
}

func DefaultUnits() Units {
	return Units{
		StressScale:           1e-6,
		DisplacementPerLength: 1000,
	}
}

// Input is one tensile test: index-aligned samples plus specimen parameters.
type Input struct {
	Displacement []float64
	Load         []float64
	Specimen     Specimen
	Units        Units
}

// Point is a characteristic point on the stress-strain curve.
type Point struct {
	Strain     float64 `json:"strain"`
	Stress     float64 `json:"stress"`
	SlopeAngle float64 `json:"slope_angle"`
}

// XY is a vertex of a construction line in strain/stress coordinates.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Metrics struct {
	MaxStress     float64 `json:"max_stress"`
	YieldStrength float64 `json:"yield_strength"`
	MaxStrain     float64 `json:"max_strain"`
	MaxLoad       float64 `json:"max_load"`
}

// Rounded returns the metrics rounded for display.
func (m Metrics) Rounded() Metrics {
	return Metrics{
		MaxStress:     round(m.MaxStress, 2),
		YieldStrength: round(m.YieldStrength, 2),
		MaxStrain:     round(m.MaxStrain, 6),
		MaxLoad:       round(m.MaxLoad, 2),
	}
}

// Result is the complete output of one analysis.
type Result struct {
	Displacement   []float64
	Load           []float64
	Stress         []float64
	Strain         []float64
	TangentModulus []float64
	// SecantModulus is stress/strain per sample, 0 where strain is 0.
	SecantModulus []float64
	SlopeAngles   []float64

	Modulus       float64
	YieldPoint    *Point
	YieldIndex    *int
	FracturePoint Point
	FractureIndex int
	PeakIndex     int
	OffsetLine    []XY
	Metrics       Metrics
}

// HasYield reports whether the offset line intersected the curve.
func (r *Result) HasYield() bool {
	return r.YieldPoint != nil
}

// Len returns the number of samples.
func (r *Result) Len() int {
	return len(r.Stress)
}

// PointAt returns the curve point at sample i.
func (r *Result) PointAt(i int) Point {
	return Point{
		Strain:     r.Strain[i],
		Stress:     r.Stress[i],
		SlopeAngle: r.SlopeAngles[i],
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
