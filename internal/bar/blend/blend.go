// Package blend implements the volume and strength arithmetic for combining
// measures of liquid into a single mixed drink.
package blend

import (
	"fmt"
	"math"
	"strconv"
)

// Measure is a quantity of liquid and its alcoholic strength.
//
// ABV is a fraction in [0, 1], not a percentage: a 45 mL pour of 40% vodka
// is Measure{Volume: 45, ABV: 0.4}.
type Measure struct {
	Volume float64
	ABV    float64
}

// Proof returns the strength of the measure on the US proof scale.
//
// Postcondition: return value == ABV * 200.
func (m Measure) Proof() float64 {
	return m.ABV * 200
}

// String returns a human-readable audit string, e.g. "159 mL at 11.3% ABV".
func (m Measure) String() string {
	return fmt.Sprintf("%s mL at %s%% ABV", FormatAmount(m.Volume), FormatAmount(m.ABV*100))
}

// Combine folds parts left to right into a single Measure.
//
// The running strength is re-weighted against each component in turn and
// rounded to 3 decimal places at every step, so the result matches a
// bartender's incremental pour rather than a single batch sum:
//
//	Combine({40, 0.4}, {20, 0})            → {60, 0.267}
//	Combine({45, 0.4}, {90, 0}, {15, 0}, {9, 0}) → {159, 0.113}
//
// Precondition: every part has Volume >= 0 and ABV in [0, 1].
// Postcondition: result.Volume == Σ part.Volume; result.ABV is the
// volume-weighted mean strength under per-step rounding. With no parts,
// returns Measure{0, 0}. Combining a result with Measure{0, 0} is a no-op.
func Combine(parts ...Measure) (Measure, error) {
	total := Measure{}
	for i, p := range parts {
		if p.Volume < 0 {
			return Measure{}, fmt.Errorf("blend: part %d: negative volume %v", i, p.Volume)
		}
		if p.ABV < 0 || p.ABV > 1 {
			return Measure{}, fmt.Errorf("blend: part %d: ABV %v outside [0, 1]", i, p.ABV)
		}

		blended := total.Volume*total.ABV + p.Volume*p.ABV
		total.Volume += p.Volume
		if total.Volume == 0 {
			// Nothing poured yet; strength stays zero.
			continue
		}
		total.ABV = round3(blended / total.Volume)
	}
	return total, nil
}

// FormatAmount renders a quantity rounded to one decimal place with trailing
// zeros trimmed: 56.0 → "56", 7.000000000000001 → "7", 11.25 → "11.3".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// round3 rounds to 3 decimal places, half away from zero.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
