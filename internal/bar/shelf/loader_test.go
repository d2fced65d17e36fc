package shelf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validShelfYAML = `
ingredients:
  - name: Vodka
    abv: 40%
  - name: Rum
    abv: 40
  - name: Gin
    abv: 0.4
  - name: Sour Apple Pucker schnapps
    proof: 30
  - name: Bourbon
    proof: 80
  - name: Sunny D
    abv: 0
`

func TestLoadFromBytes_Valid(t *testing.T) {
	s, err := LoadFromBytes([]byte(validShelfYAML))
	require.NoError(t, err)
	require.Equal(t, 6, s.Len())

	// All three abv spellings normalize to the same fraction.
	for _, name := range []string{"Vodka", "Rum", "Gin"} {
		ing, ok := s.Lookup(name)
		require.True(t, ok, "missing %s", name)
		assert.Equal(t, 0.4, ing.ABV, "%s must normalize to 0.4", name)
	}

	schnapps, ok := s.Lookup("Sour Apple Pucker schnapps")
	require.True(t, ok)
	assert.Equal(t, 0.15, schnapps.ABV, "proof 30 must normalize to 0.15")

	bourbon, ok := s.Lookup("Bourbon")
	require.True(t, ok)
	assert.Equal(t, 0.4, bourbon.ABV, "proof 80 must normalize to 0.4")

	mixer, ok := s.Lookup("Sunny D")
	require.True(t, ok)
	assert.Equal(t, 0.0, mixer.ABV)
}

func TestLoadFromBytes_FractionBoundary(t *testing.T) {
	// 0.99 is the largest value still read as a fraction; anything above is
	// treated as a percentage.
	s, err := LoadFromBytes([]byte(`
ingredients:
  - name: Everclear
    abv: 0.99
  - name: Weak
    abv: 1
`))
	require.NoError(t, err)

	everclear, _ := s.Lookup("Everclear")
	assert.Equal(t, 0.99, everclear.ABV)
	weak, _ := s.Lookup("Weak")
	assert.Equal(t, 0.01, weak.ABV, "a bare 1 is read as 1%, not a full fraction")
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("ingredients: [broken"))
	assert.Error(t, err)
}

func TestLoadFromBytes_MalformedABV(t *testing.T) {
	for _, abv := range []string{`"forty%"`, `strong`, `"%"`} {
		_, err := LoadFromBytes([]byte("ingredients:\n  - name: Mystery\n    abv: " + abv + "\n"))
		assert.Error(t, err, "abv %s must be rejected", abv)
	}
}

func TestLoadFromBytes_BothABVAndProof(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
ingredients:
  - name: Vodka
    abv: 40%
    proof: 80
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadFromBytes_NeitherABVNorProof(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
ingredients:
  - name: Vodka
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must set abv or proof")
}

func TestLoadFromBytes_EmptyName(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
ingredients:
  - abv: 40%
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
}

func TestLoadFromBytes_DuplicateName(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
ingredients:
  - name: Vodka
    abv: 40%
  - name: Vodka
    abv: 0.38
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate ingredient "Vodka"`)
}

func TestLoadFromBytes_OutOfRange(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
ingredients:
  - name: Impossible
    abv: 150%
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0, 1]")

	_, err = LoadFromBytes([]byte(`
ingredients:
  - name: Antimatter
    proof: -10
`))
	assert.Error(t, err)
}

func TestLoadFromBytes_EmptyShelf(t *testing.T) {
	_, err := LoadFromBytes([]byte("ingredients: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one ingredient")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ingredients.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validShelfYAML), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/ingredients.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ingredients file at /nonexistent/ingredients.yaml")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/data", "blueblazer", "ingredients.yaml"), path)
}

func TestDefaultPath_Fallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".local", "share", "blueblazer", "ingredients.yaml")),
		"fallback path must live under ~/.local/share, got %s", path)
}

func TestLoadDefault_WritesStarterTemplate(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	_, err := LoadDefault()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starter template was written")

	path, err := DefaultPath()
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err, "starter template must exist after the first run")

	// The template itself is a loadable shelf once the user keeps it as-is.
	s, err := LoadDefault()
	require.NoError(t, err)
	vodka, ok := s.Lookup("Vodka")
	require.True(t, ok)
	assert.Equal(t, 0.4, vodka.ABV)
	schnapps, ok := s.Lookup("Sour Apple Pucker schnapps")
	require.True(t, ok)
	assert.Equal(t, 0.15, schnapps.ABV)
}

func TestShelf_Names_Sorted(t *testing.T) {
	s, err := LoadFromBytes([]byte(validShelfYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bourbon", "Gin", "Rum", "Sour Apple Pucker schnapps", "Sunny D", "Vodka"}, s.Names())
}

func TestShelf_Ingredients_FileOrder(t *testing.T) {
	s, err := LoadFromBytes([]byte(validShelfYAML))
	require.NoError(t, err)
	require.Equal(t, 6, len(s.Ingredients()))
	assert.Equal(t, "Vodka", s.Ingredients()[0].Name)
	assert.Equal(t, "Sunny D", s.Ingredients()[5].Name)
}

func TestShelf_Lookup_Missing(t *testing.T) {
	s, err := LoadFromBytes([]byte(validShelfYAML))
	require.NoError(t, err)
	_, ok := s.Lookup("Absinthe")
	assert.False(t, ok)
}
