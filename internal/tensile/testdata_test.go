package tensile

// ductileSeries builds a synthetic aluminium-like test: 70 GPa elastic line
// to 280 MPa, linear hardening to a peak at 10% strain, necking, and a final
// fracture sample at 40 MPa. Specimen: 1e-4 m² area, 50 mm gauge.
func ductileSeries() (disp, load []float64, sp Specimen) {
	sp = Specimen{Area: 1e-4, GaugeLength: 0.05}

	var strain, stress []float64
	for i := 0; i <= 40; i++ {
		e := 0.004 * float64(i) / 40
		strain = append(strain, e)
		stress = append(stress, 70000*e)
	}
	for i := 1; i <= 60; i++ {
		e := 0.004 + 0.096*float64(i)/60
		strain = append(strain, e)
		stress = append(stress, 280+1500*(e-0.004))
	}
	for i := 1; i <= 20; i++ {
		e := 0.1 + 0.03*float64(i)/20
		strain = append(strain, e)
		stress = append(stress, 424-500*(e-0.1))
	}
	strain = append(strain, 0.1305)
	stress = append(stress, 40)

	disp = make([]float64, len(strain))
	load = make([]float64, len(stress))
	for i := range strain {
		disp[i] = strain[i] * 1000 * sp.GaugeLength
		load[i] = stress[i] * sp.Area / 1e-6
	}
	return disp, load, sp
}

func linearSeries(n int, k float64) (disp, load []float64) {
	disp = make([]float64, n)
	load = make([]float64, n)
	for i := 0; i < n; i++ {
		disp[i] = 0.05 * float64(i+1)
		load[i] = k * disp[i]
	}
	return disp, load
}
