package tensile

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"empty", nil, 90, 0},
		{"single", []float64{3}, 90, 3},
		{"median odd", []float64{3, 1, 2}, 50, 2},
		{"interpolated", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 90, 9.1},
		{"max", []float64{4, 9, 1}, 100, 9},
		{"min", []float64{4, 9, 1}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentile(tt.values, tt.p); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.values, tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentile_DoesNotMutate(t *testing.T) {
	values := []float64{3, 1, 2}
	Percentile(values, 50)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestTangentModulus_Uniform(t *testing.T) {
	strain := []float64{0, 1, 2, 3}
	stress := []float64{0, 1, 4, 9}

	got := TangentModulus(stress, strain)
	want := []float64{1, 2, 4, 5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("tangent[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTangentModulus_NonUniform(t *testing.T) {
	// quadratic stress is differentiated exactly by the second-order scheme
	strain := []float64{0, 1, 3, 4}
	stress := make([]float64, len(strain))
	for i, e := range strain {
		stress[i] = e * e
	}

	got := TangentModulus(stress, strain)
	if math.Abs(got[1]-2) > 1e-12 {
		t.Errorf("tangent[1] = %v, want 2", got[1])
	}
	if math.Abs(got[2]-6) > 1e-12 {
		t.Errorf("tangent[2] = %v, want 6", got[2])
	}
}

func TestTangentModulus_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		strain []float64
		stress []float64
	}{
		{"single", []float64{1}, []float64{1}},
		{"constant strain", []float64{0, 0, 0}, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TangentModulus(tt.stress, tt.strain)
			if len(got) != len(tt.stress) {
				t.Fatalf("length %d, want %d", len(got), len(tt.stress))
			}
			for i, v := range got {
				if v != 0 {
					t.Errorf("tangent[%d] = %v, want 0", i, v)
				}
			}
		})
	}
}

func TestTangentModulus_RepeatedStrain(t *testing.T) {
	strain := []float64{0, 1, 1, 2}
	stress := []float64{0, 2, 3, 5}

	got := TangentModulus(stress, strain)
	for i, v := range got {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("tangent[%d] not finite: %v", i, v)
		}
	}
	if got[1] != 2 || got[2] != 2 {
		t.Errorf("expected one-sided slopes 2 and 2, got %v and %v", got[1], got[2])
	}
}

func TestSecantModulus(t *testing.T) {
	got := SecantModulus([]float64{0, 10, 30}, []float64{0, 0.5, 1.5})
	want := []float64{0, 20, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("secant[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEstimateModulus_Ductile(t *testing.T) {
	disp, load, sp := ductileSeries()
	stress, strain := Convert(disp, load, sp, DefaultUnits())
	tangent := TangentModulus(stress, strain)

	e := EstimateModulus(stress, strain, tangent)
	if math.Abs(e-70000)/70000 > 0.01 {
		t.Errorf("expected E near 70000 MPa, got %v", e)
	}
}

func TestEstimateModulus_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		stress []float64
		strain []float64
		want   float64
	}{
		{
			name:   "short series",
			stress: []float64{0, 0, 0},
			strain: []float64{0, 1, 2},
			want:   1.0,
		},
		{
			// all stress is zero, so no sample clears the toe threshold
			name:   "empty region",
			stress: []float64{0, 0, 0, 0, 0, 0},
			strain: []float64{0, 1, 2, 3, 4, 5},
			want:   0,
		},
		{
			name:   "decreasing stress uses head of series",
			stress: []float64{0, 0, 0, 0, 0, -1},
			strain: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tangent := TangentModulus(tt.stress, tt.strain)
			if got := EstimateModulus(tt.stress, tt.strain, tangent); got != tt.want {
				t.Errorf("EstimateModulus = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlopeAngle(t *testing.T) {
	if got := SlopeAngle(1); math.Abs(got-45) > 1e-12 {
		t.Errorf("SlopeAngle(1) = %v, want 45", got)
	}
	if got := SlopeAngle(0); got != 0 {
		t.Errorf("SlopeAngle(0) = %v, want 0", got)
	}
	if got := SlopeAngle(-1e12); math.Abs(got+90) > 1e-6 {
		t.Errorf("SlopeAngle(-1e12) = %v, want about -90", got)
	}
}
