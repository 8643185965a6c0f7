// Package tensile derives the engineering stress-strain curve of a tensile
// test and its characteristic points from raw machine samples.
//
// The pipeline runs in a fixed order, each stage consuming the previous one:
//
//   - [Convert]: displacement/load to strain/stress
//   - [TangentModulus], [SecantModulus], [EstimateModulus]: slopes and the elastic modulus E
//   - [LocateYield]: 0.2% offset construction
//   - [LocateFracture]: steepest post-peak drop
//   - [Analyze]: runs everything and assembles a [Result]
//
// # Example
//
//	res, err := tensile.Analyze(tensile.Input{
//	    Displacement: disp,
//	    Load:         load,
//	    Specimen:     tensile.Specimen{Area: 3e-4, GaugeLength: 0.05},
//	    Units:        tensile.DefaultUnits(),
//	})
//	if errors.Is(err, tensile.ErrInvalidParameter) {
//	    // reject the request
//	}
//
// # Thread Safety
//
// All functions are pure. Nothing is shared between calls, so analyses can
// run concurrently without coordination.
package tensile
