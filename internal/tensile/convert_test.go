package tensile

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	sp := Specimen{Area: 0.0003, GaugeLength: 0.05}
	stress, strain := Convert([]float64{0, 1, 2}, []float64{0, 300, 600}, sp, DefaultUnits())

	wantStress := []float64{0, 1, 2}
	wantStrain := []float64{0, 0.02, 0.04}
	for i := range wantStress {
		if math.Abs(stress[i]-wantStress[i]) > 1e-12 {
			t.Errorf("stress[%d] = %v, want %v", i, stress[i], wantStress[i])
		}
		if math.Abs(strain[i]-wantStrain[i]) > 1e-12 {
			t.Errorf("strain[%d] = %v, want %v", i, strain[i], wantStrain[i])
		}
	}
}

func TestConvert_AllZero(t *testing.T) {
	sp := Specimen{Area: 1, GaugeLength: 1}
	stress, strain := Convert(make([]float64, 4), make([]float64, 4), sp, DefaultUnits())

	if len(stress) != 4 || len(strain) != 4 {
		t.Fatalf("expected 4 samples, got %d/%d", len(stress), len(strain))
	}
	for i := range stress {
		if stress[i] != 0 || strain[i] != 0 {
			t.Errorf("sample %d: expected zeros, got %v/%v", i, stress[i], strain[i])
		}
	}
}

func TestConvert_CustomUnits(t *testing.T) {
	sp := Specimen{Area: 2, GaugeLength: 10}
	stress, strain := Convert([]float64{5}, []float64{8}, sp, Units{StressScale: 1, DisplacementPerLength: 1})

	if stress[0] != 4 {
		t.Errorf("expected stress 4, got %v", stress[0])
	}
	if strain[0] != 0.5 {
		t.Errorf("expected strain 0.5, got %v", strain[0])
	}
}
