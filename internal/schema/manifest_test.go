package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest_YAML(t *testing.T) {
	// Test: YAML manifest with flow-style columns
	data := []byte(`
models:
  - name: Product
    columns:
      - { name: title, type: "varchar(255)", nullable: false }
      - { name: price, type: decimal, nullable: true }
  - name: Category
    columns: []
`)

	m, err := ParseManifest(data)
	require.NoError(t, err)
	require.Len(t, m.Models, 2)

	p, err := m.Model("Product")
	require.NoError(t, err)
	assert.Equal(t, []RawColumn{
		{Name: "title", Type: "varchar(255)"},
		{Name: "price", Type: "decimal", Nullable: true},
	}, p.Columns)

	assert.Equal(t, []string{"Category", "Product"}, m.ModelNames())
}

func TestParseManifest_JSON(t *testing.T) {
	// Test: JSON is accepted as well
	data := []byte(`{"models":[{"name":"Tag","columns":[{"name":"label","type":"string","nullable":false}]}]}`)

	m, err := ParseManifest(data)
	require.NoError(t, err)
	require.Len(t, m.Models, 1)
	assert.Equal(t, "label", m.Models[0].Columns[0].Name)
}

func TestParseManifest_Invalid(t *testing.T) {
	// Test: malformed document is rejected
	_, err := ParseManifest([]byte("models: [unclosed"))
	assert.Error(t, err)
}

func TestManifest_ModelNotFound(t *testing.T) {
	// Test: unknown model lists what is available
	m := &Manifest{Models: []RawModel{{Name: "Product"}}}

	_, err := m.Model("Order")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `model "Order" not found`)
	assert.Contains(t, err.Error(), "Product")
}

func TestLoadManifest(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "crudgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("models:\n  - name: Product\n"), 0644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Product"}, m.ModelNames())

	_, err = LoadManifest(filepath.Join(tmpDir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema manifest")
}
