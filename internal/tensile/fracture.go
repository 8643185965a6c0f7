package tensile

// dropFraction is the post-peak slope, relative to E, that counts as a fracture drop.
const dropFraction = 0.05

// LocateFracture finds the fracture sample.
//
// Only the region from the stress peak onward is searched, so settling noise
// early in the test cannot register as a drop. If the steepest post-peak
// slope falls below -5% of E the fracture is the sample just before that
// drop; otherwise it is the peak itself.
func LocateFracture(stress, tangent []float64, modulus float64) (fracture, peak int) {
	peak = argmax(stress)

	post := tangent[peak:]
	if len(post) < 2 {
		return peak, peak
	}

	drop := peak + argmin(post)
	if tangent[drop] < -dropFraction*modulus {
		return max(peak, drop-1), peak
	}

	return peak, peak
}
