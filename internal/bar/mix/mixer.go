package mix

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cnelsonsic/blueblazer/internal/bar/blend"
	"github.com/cnelsonsic/blueblazer/internal/bar/shelf"
)

// Mixer generates drinks from a shelf of ingredients and logs each
// generation. All mixes are logged at debug level with glass, pours, and
// blended strength.
type Mixer struct {
	shelf     *shelf.Shelf
	src       Source
	precision int
	logger    *zap.Logger
}

// NewMixer creates a Mixer that draws from src and logs each mix to logger.
//
// Precondition: s, src, and logger must be non-nil; precision in [1, 4].
func NewMixer(s *shelf.Shelf, src Source, precision int, logger *zap.Logger) *Mixer {
	return &Mixer{shelf: s, src: src, precision: precision, logger: logger}
}

// Mix pours a drink into glass and returns the pours together with the
// blended volume and strength.
//
// Postcondition: the returned Measure is the incremental blend of the pours
// in presentation order; the mix is logged at debug level.
func (m *Mixer) Mix(glass Glass) (Drink, blend.Measure, error) {
	drink, err := Pour(m.src, m.shelf.Ingredients(), glass.Capacity, m.precision)
	if err != nil {
		return nil, blend.Measure{}, err
	}

	parts := make([]blend.Measure, 0, len(drink))
	for _, s := range drink.Servings() {
		ing, ok := m.shelf.Lookup(s.Name)
		if !ok {
			return nil, blend.Measure{}, fmt.Errorf("mix: poured unknown ingredient %q", s.Name)
		}
		parts = append(parts, blend.Measure{Volume: s.Volume, ABV: ing.ABV})
	}
	total, err := blend.Combine(parts...)
	if err != nil {
		return nil, blend.Measure{}, err
	}

	m.logger.Debug("mixed drink",
		zap.String("glass", glass.Name),
		zap.Int("ingredients", len(drink)),
		zap.Any("pours", drink),
		zap.String("strength", total.String()),
	)
	return drink, total, nil
}
