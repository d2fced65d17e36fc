package shelf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// starterTemplate is written to the default path when no ingredients file
// exists yet, so a first run leaves something to edit.
const starterTemplate = `# Bottles blueblazer can mix from. Give each entry a name and either an
# abv ("40%", 40, or 0.4) or a proof (80).
ingredients:
  - name: Vodka
    abv: 40%
  - name: Sour Apple Pucker schnapps
    proof: 30
`

// yamlShelfFile is the top-level YAML structure for ingredients files.
type yamlShelfFile struct {
	Ingredients []yamlIngredient `yaml:"ingredients"`
}

// yamlIngredient is the YAML representation of one shelf entry. Exactly one
// of ABV or Proof must be set.
type yamlIngredient struct {
	Name  string    `yaml:"name"`
	ABV   *abvValue `yaml:"abv"`
	Proof *float64  `yaml:"proof"`
}

// abvValue accepts the three ABV spellings: a percentage string ("40%"), a
// bare percentage number (40), or an already-normalized fraction (0.4).
// Bare numbers above 0.99 are treated as percentages and scaled by 0.01.
type abvValue float64

// UnmarshalYAML normalizes the scalar to a fraction at parse time, so
// malformed values fail the load instead of leaking into arithmetic.
func (a *abvValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("abv must be a scalar value")
	}
	s := strings.TrimSpace(value.Value)
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return fmt.Errorf("parsing abv percentage %q: %w", value.Value, err)
		}
		*a = abvValue(v / 100)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parsing abv %q: %w", value.Value, err)
	}
	if v > 0.99 {
		v *= 0.01
	}
	*a = abvValue(v)
	return nil
}

// LoadFromFile reads and validates an ingredients YAML file.
//
// Precondition: path must point to a valid YAML ingredients file.
// Postcondition: Returns a validated Shelf or a non-nil error. A missing
// file yields a user-facing error naming the path; no template is written.
func LoadFromFile(path string) (*Shelf, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no ingredients file at %s: create one with an 'ingredients:' list, each entry a name plus abv or proof: %w", path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("reading ingredients file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a shelf from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the ingredients schema.
// Postcondition: Returns a validated Shelf or a non-nil error.
func LoadFromBytes(data []byte) (*Shelf, error) {
	var file yamlShelfFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing ingredients YAML: %w", err)
	}

	ingredients := make([]Ingredient, 0, len(file.Ingredients))
	for i, yi := range file.Ingredients {
		ing, err := convertYAMLIngredient(yi)
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i, err)
		}
		ingredients = append(ingredients, ing)
	}

	s, err := NewShelf(ingredients)
	if err != nil {
		return nil, fmt.Errorf("validating ingredients: %w", err)
	}
	return s, nil
}

// LoadDefault loads the shelf from DefaultPath. When no file exists yet it
// writes a commented starter template there and returns an error directing
// the user to edit it.
func LoadDefault() (*Shelf, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if werr := writeTemplate(path); werr != nil {
			return nil, fmt.Errorf("no ingredients file at %s, and writing a starter failed: %w", path, werr)
		}
		return nil, fmt.Errorf("no ingredients file at %s: a starter template was written there, edit it and re-run", path)
	}
	return LoadFromFile(path)
}

// DefaultPath returns the conventional ingredients file location:
// $XDG_DATA_HOME/blueblazer/ingredients.yaml, falling back to
// ~/.local/share when XDG_DATA_HOME is unset.
func DefaultPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "blueblazer", "ingredients.yaml"), nil
}

// convertYAMLIngredient converts a parsed YAML entry into the domain type,
// applying the proof-to-fraction conversion.
func convertYAMLIngredient(yi yamlIngredient) (Ingredient, error) {
	if yi.ABV != nil && yi.Proof != nil {
		return Ingredient{}, fmt.Errorf("ingredient %q: abv and proof are mutually exclusive", yi.Name)
	}
	var abv float64
	switch {
	case yi.ABV != nil:
		abv = float64(*yi.ABV)
	case yi.Proof != nil:
		// Proof is twice the percentage: proof 30 is 15%, so 0.15.
		abv = *yi.Proof / 2 / 100
	default:
		return Ingredient{}, fmt.Errorf("ingredient %q: must set abv or proof", yi.Name)
	}
	return Ingredient{Name: yi.Name, ABV: abv}, nil
}

// writeTemplate writes the starter ingredients file, creating parent
// directories as needed.
func writeTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(starterTemplate), 0o644); err != nil {
		return fmt.Errorf("writing starter template: %w", err)
	}
	return nil
}
