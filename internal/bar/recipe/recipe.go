// Package recipe renders a mixed drink as readable preparation prose.
package recipe

import (
	"fmt"
	"strings"

	"github.com/cnelsonsic/blueblazer/internal/bar/blend"
	"github.com/cnelsonsic/blueblazer/internal/bar/mix"
)

// Render formats a drink as preparation prose: the glass line, one pour
// line per ingredient in presentation order, the blended volume and
// strength, and a closing flavor sentence.
//
// Precondition: glass.Name is non-empty; total is the blend of drink's
// pours.
// Postcondition: output is a pure function of the inputs; map iteration
// order never leaks into it.
func Render(drink mix.Drink, glass mix.Glass, total blend.Measure) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Grab %s %s glass.\n", article(glass.Name), glass.Name))

	// Pours, largest first.
	for _, s := range drink.Servings() {
		b.WriteString(fmt.Sprintf("Pour in %s mL of %s.\n", blend.FormatAmount(s.Volume), s.Name))
	}

	b.WriteString(fmt.Sprintf("You end up with %s (%s proof).\n", total, blend.FormatAmount(total.Proof())))
	b.WriteString(StrengthFlavor(total.ABV))
	b.WriteString("\n")
	return b.String()
}

// StrengthFlavor returns a closing sentence describing how hard the drink
// lands, chosen by ABV band.
//
// Precondition: abv is a fraction in [0, 1].
// Postcondition: Returns a non-empty sentence.
func StrengthFlavor(abv float64) string {
	switch {
	case abv == 0:
		return "Virgin territory: there is no alcohol in this one at all."
	case abv < 0.1:
		return "Barely a tingle; you could serve this at brunch."
	case abv < 0.2:
		return "A gentle drink with a warm finish."
	case abv < 0.3:
		return "This one has a healthy kick to it."
	case abv < 0.4:
		return "Strong stuff; sip it slowly."
	default:
		return "Approach with caution and line up a designated driver."
	}
}

// article returns the indefinite article for a noun.
//
// Precondition: noun is non-empty.
func article(noun string) string {
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
