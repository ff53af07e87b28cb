package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbrief/pirep-etl-service/internal/domain"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()
	require.NoError(t, tables.Validate())

	// The spec scenarios depend on these mappings existing.
	byRaw := make(map[string]domain.FieldMapping)
	for _, m := range tables.Mappings {
		byRaw[m.RawField] = m
	}
	assert.Equal(t, "temp_f", byRaw["temp_c"].PIREPField)
	assert.Equal(t, "c_to_f", byRaw["temp_c"].Conversion)
	assert.Equal(t, "pressure_kpa", byRaw["pressure_psi"].PIREPField)
	assert.Equal(t, "psi_to_kpa", byRaw["pressure_psi"].Conversion)
	assert.Equal(t, 2, byRaw["pressure_psi"].Decimals)
}

func TestLoadTables_EmptyPathUsesDefaults(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tables)
}

func TestLoadTables_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `
schema:
  fields:
    - name: egt_c
      type: numeric
      required: true
      min: 0
      max: 1100
mappings:
  - raw_field: egt_c
    pirep_field: egt_f
    conversion: c_to_f
    decimals: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tables, err := LoadTables(path)
	require.NoError(t, err)

	require.Len(t, tables.Schema.Fields, 1)
	assert.Equal(t, "egt_c", tables.Schema.Fields[0].Name)
	assert.True(t, tables.Schema.Fields[0].Required)
	require.NotNil(t, tables.Schema.Fields[0].Max)
	assert.Equal(t, 1100.0, *tables.Schema.Fields[0].Max)
	require.Len(t, tables.Mappings, 1)
	assert.Equal(t, "egt_f", tables.Mappings[0].PIREPField)
}

func TestLoadTables_MissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read tables file")
}

func TestLoadTables_UnknownConversion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `
schema:
  fields:
    - name: egt_c
      type: numeric
mappings:
  - raw_field: egt_c
    pirep_field: egt_f
    conversion: bogus
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadTables(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown conversion")
}

func TestLoadTables_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema: ["), 0o644))

	_, err := LoadTables(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse tables file")
}
