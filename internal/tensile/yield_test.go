package tensile

import "testing"

func TestLocateYield(t *testing.T) {
	tests := []struct {
		name    string
		strain  []float64
		stress  []float64
		modulus float64
		want    int
		ok      bool
	}{
		{
			name:    "crossing",
			strain:  []float64{0, 0.001, 0.002, 0.003, 0.004},
			stress:  []float64{0, 100, 200, 210, 150},
			modulus: 100000,
			want:    3,
			ok:      true,
		},
		{
			name:    "never crosses",
			strain:  []float64{0, 0.001, 0.002, 0.003},
			stress:  []float64{0, 100, 200, 300},
			modulus: 100000,
			ok:      false,
		},
		{
			name:    "below offset strain is ignored",
			strain:  []float64{0, 0.001, 0.0015},
			stress:  []float64{0, -10, -20},
			modulus: 100000,
			ok:      false,
		},
		{
			name:    "first sample already below line",
			strain:  []float64{0.01, 0.02},
			stress:  []float64{1, 2},
			modulus: 100000,
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LocateYield(tt.strain, tt.stress, tt.modulus)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("index = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLocateYield_Bracket(t *testing.T) {
	disp, load, sp := ductileSeries()
	stress, strain := Convert(disp, load, sp, DefaultUnits())
	e := EstimateModulus(stress, strain, TangentModulus(stress, strain))

	yi, ok := LocateYield(strain, stress, e)
	if !ok {
		t.Fatal("expected a yield point")
	}
	if stress[yi] < OffsetStress(e, strain[yi]) {
		t.Errorf("yield sample below offset line: %v < %v", stress[yi], OffsetStress(e, strain[yi]))
	}
	if yi+1 < len(stress) && stress[yi+1] >= OffsetStress(e, strain[yi+1]) {
		t.Errorf("sample after yield not below offset line: %v >= %v", stress[yi+1], OffsetStress(e, strain[yi+1]))
	}
	if stress[yi] < 280 || stress[yi] > 300 {
		t.Errorf("expected proof stress in [280, 300] MPa, got %v", stress[yi])
	}
}

func TestOffsetLine(t *testing.T) {
	line := OffsetLine(Point{Strain: 0.01, Stress: 250})
	if len(line) != 2 {
		t.Fatalf("expected 2 points, got %d", len(line))
	}
	if line[0] != (XY{X: 0.002, Y: 0}) {
		t.Errorf("unexpected start %v", line[0])
	}
	if line[1] != (XY{X: 0.01, Y: 250}) {
		t.Errorf("unexpected end %v", line[1])
	}
}
