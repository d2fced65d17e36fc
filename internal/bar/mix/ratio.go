package mix

import (
	"fmt"
	"math"
	"sort"
)

// DefaultPrecision is the decimal precision ratio fractions are rounded to.
const DefaultPrecision = 1

// maxRatioAttempts bounds the rejection-sampling loop in Ratios. The
// acceptance probability is bounded below by a positive constant for any
// supported precision, so the cap only fires on a broken Source.
const maxRatioAttempts = 10000

// Ratios draws a three-way split of a drink: three non-negative fractions
// that sum to exactly 1.0 at the given decimal precision, sorted descending.
//
// Each attempt draws the first fraction uniformly from [0, 1) and the
// second uniformly from [first, 1); the third is the remainder. The attempt
// is rejected when the remainder is negative, or when the triple no longer
// sums to one after rounding. The sum check runs in fixed point at
// 10^precision, since float equality would miss splits like 0.6+0.3+0.1.
//
// Precondition: src non-nil; precision in [1, 4].
// Postcondition: r[0] >= r[1] >= r[2] >= 0, and the fractions scaled by
// 10^precision are integers summing to 10^precision.
func Ratios(src Source, precision int) ([3]float64, error) {
	if precision < 1 || precision > 4 {
		return [3]float64{}, fmt.Errorf("mix: ratio precision %d outside [1, 4]", precision)
	}
	scale := math.Pow10(precision)

	for attempt := 0; attempt < maxRatioAttempts; attempt++ {
		first := src.Float64()
		second := first + (1-first)*src.Float64()
		third := 1 - first - second
		if third < 0 {
			continue
		}

		k1 := int(math.Round(first * scale))
		k2 := int(math.Round(second * scale))
		k3 := int(math.Round(third * scale))
		if k1+k2+k3 != int(scale) {
			continue
		}

		parts := [3]float64{
			float64(k1) / scale,
			float64(k2) / scale,
			float64(k3) / scale,
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(parts[:])))
		return parts, nil
	}

	return [3]float64{}, fmt.Errorf("mix: no %d-decimal split summed to 1.0 after %d attempts", precision, maxRatioAttempts)
}
