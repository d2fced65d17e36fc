// Package shelf loads and validates the ingredient list a drink is mixed from.
package shelf

import (
	"fmt"
	"sort"
)

// Ingredient is a single bottle on the shelf.
//
// ABV is a normalized fraction in [0, 1]. The looser YAML spellings
// ("40%", a bare 40, or proof 80) are converted exactly once at load time.
type Ingredient struct {
	Name string
	ABV  float64
}

// Validate checks a single ingredient.
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("ingredient name must not be empty")
	}
	if i.ABV < 0 || i.ABV > 1 {
		return fmt.Errorf("ingredient %q: abv %v outside [0, 1]", i.Name, i.ABV)
	}
	return nil
}

// Shelf is a validated, immutable collection of ingredients.
type Shelf struct {
	ingredients []Ingredient
	byName      map[string]Ingredient
}

// NewShelf builds a Shelf from ingredients.
//
// Precondition: at least one ingredient; names unique and non-empty; every
// ABV in [0, 1].
// Postcondition: Returns a validated Shelf or a non-nil error.
func NewShelf(ingredients []Ingredient) (*Shelf, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("shelf must contain at least one ingredient")
	}
	byName := make(map[string]Ingredient, len(ingredients))
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return nil, err
		}
		if _, ok := byName[ing.Name]; ok {
			return nil, fmt.Errorf("duplicate ingredient %q", ing.Name)
		}
		byName[ing.Name] = ing
	}
	return &Shelf{ingredients: ingredients, byName: byName}, nil
}

// Ingredients returns the shelf contents in file order.
func (s *Shelf) Ingredients() []Ingredient {
	return s.ingredients
}

// Lookup returns the ingredient with the given name.
func (s *Shelf) Lookup(name string) (Ingredient, bool) {
	ing, ok := s.byName[name]
	return ing, ok
}

// Names returns the ingredient names sorted alphabetically.
func (s *Shelf) Names() []string {
	names := make([]string, 0, len(s.ingredients))
	for _, ing := range s.ingredients {
		names = append(names, ing.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of ingredients on the shelf.
func (s *Shelf) Len() int {
	return len(s.ingredients)
}
