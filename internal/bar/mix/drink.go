package mix

import (
	"fmt"
	"sort"

	"github.com/cnelsonsic/blueblazer/internal/bar/shelf"
)

// Drink maps ingredient names to poured volumes.
type Drink map[string]float64

// Serving is a single poured ingredient within a Drink.
type Serving struct {
	Name   string
	Volume float64
}

// Servings returns the pours ordered by volume descending, then name
// ascending, giving the Drink a stable presentation order. Map iteration
// order must never leak into output.
func (d Drink) Servings() []Serving {
	servings := make([]Serving, 0, len(d))
	for name, volume := range d {
		servings = append(servings, Serving{Name: name, Volume: volume})
	}
	sort.Slice(servings, func(i, j int) bool {
		if servings[i].Volume != servings[j].Volume {
			return servings[i].Volume > servings[j].Volume
		}
		return servings[i].Name < servings[j].Name
	})
	return servings
}

// Pour assembles a drink: it draws a three-way ratio split, then assigns
// each share to an ingredient picked uniformly at random with replacement.
// Volumes for repeated picks accumulate on the same ingredient.
//
// The draw order is the reproducibility contract: Ratios consumes src
// first, then exactly one Intn per share. The same seed, shelf, and target
// always yield the same Drink.
//
// Precondition: src non-nil; at least one ingredient; target > 0;
// precision in [1, 4].
func Pour(src Source, ingredients []shelf.Ingredient, target float64, precision int) (Drink, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("mix: no ingredients to pour from")
	}
	if target <= 0 {
		return nil, fmt.Errorf("mix: target volume %v must be positive", target)
	}

	ratios, err := Ratios(src, precision)
	if err != nil {
		return nil, err
	}

	drink := make(Drink, len(ratios))
	for _, fraction := range ratios {
		picked := ingredients[src.Intn(len(ingredients))]
		drink[picked.Name] += fraction * target
	}
	return drink, nil
}
