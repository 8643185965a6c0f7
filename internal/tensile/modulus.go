package tensile

import "math"

const (
	// toeFraction excludes samples below this share of peak stress from the elastic region.
	toeFraction = 0.05

	// elasticStrainFraction bounds the elastic region to this share of max strain.
	elasticStrainFraction = 0.5

	// steepPercentile selects the steepest decile of elastic-region slopes.
	steepPercentile = 90

	fallbackFraction   = 0.2
	fallbackMinSamples = 5
)

// TangentModulus returns dσ/dε per sample.
//
// End samples use one-sided differences, interior samples the second-order
// centered difference for non-uniform spacing. If strain has fewer than two
// distinct values the result is all zeros.
func TangentModulus(stress, strain []float64) []float64 {
	n := len(stress)
	out := make([]float64, n)
	if n < 2 || !hasTwoDistinct(strain) {
		return out
	}

	out[0] = forward(stress, strain, 0)
	out[n-1] = forward(stress, strain, n-2)

	for i := 1; i < n-1; i++ {
		hs := strain[i] - strain[i-1]
		hd := strain[i+1] - strain[i]
		switch {
		case hs == 0 && hd == 0:
			out[i] = 0
		case hs == 0:
			out[i] = forward(stress, strain, i)
		case hd == 0:
			out[i] = forward(stress, strain, i-1)
		default:
			out[i] = (hs*hs*stress[i+1] + (hd*hd-hs*hs)*stress[i] - hd*hd*stress[i-1]) /
				(hs * hd * (hd + hs))
		}
	}

	return out
}

// forward is the slope between samples i and i+1, 0 when they share a strain.
func forward(stress, strain []float64, i int) float64 {
	h := strain[i+1] - strain[i]
	if h == 0 {
		return 0
	}
	return (stress[i+1] - stress[i]) / h
}

func hasTwoDistinct(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return true
		}
	}
	return false
}

// SecantModulus returns stress/strain per sample, 0 where strain is exactly 0.
func SecantModulus(stress, strain []float64) []float64 {
	out := make([]float64, len(stress))
	for i := range stress {
		if strain[i] != 0 {
			out[i] = stress[i] / strain[i]
		}
	}
	return out
}

// EstimateModulus returns the elastic modulus E.
//
// Slopes are taken from the region above the toe (stress > 5% of peak) and
// below half the maximum strain; E is the mean of the slopes at or above
// their 90th percentile. When that region is empty E falls back to the
// steepest slope among the first 20% of samples (at least 5), or 1.0 for
// series shorter than 5.
func EstimateModulus(stress, strain, tangent []float64) float64 {
	n := len(stress)
	if n == 0 {
		return 1.0
	}

	maxStress := maxOf(stress)
	maxStrain := maxOf(strain)

	region := make([]float64, 0, n)
	for i := range stress {
		if stress[i] > toeFraction*maxStress && strain[i] < elasticStrainFraction*maxStrain {
			region = append(region, tangent[i])
		}
	}

	if len(region) == 0 {
		if n < fallbackMinSamples {
			return 1.0
		}
		head := max(fallbackMinSamples, int(float64(n)*fallbackFraction))
		return maxOf(tangent[:min(head, n)])
	}

	threshold := Percentile(region, steepPercentile)
	sum, count := 0.0, 0
	for _, m := range region {
		if m >= threshold {
			sum += m
			count++
		}
	}
	if count == 0 {
		return maxOf(region)
	}

	return sum / float64(count)
}

// SlopeAngle converts a slope to degrees. The angle depends on the axis
// scaling of whatever plot it is drawn on and has no physical meaning.
func SlopeAngle(slope float64) float64 {
	return math.Atan(slope) * 180 / math.Pi
}

// SlopeAngles applies [SlopeAngle] to every element.
func SlopeAngles(slopes []float64) []float64 {
	out := make([]float64, len(slopes))
	for i, m := range slopes {
		out[i] = SlopeAngle(m)
	}
	return out
}
