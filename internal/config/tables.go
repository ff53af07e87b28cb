package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flightbrief/pirep-etl-service/internal/domain"
)

// LoadTables reads the field-mapping and validation tables from a YAML file,
// or returns the built-in defaults when path is empty. The tables are
// validated before use so a bad deployment fails at startup, not per request.
func LoadTables(path string) (domain.Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Tables{}, fmt.Errorf("read tables file: %w", err)
	}

	var tables domain.Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return domain.Tables{}, fmt.Errorf("parse tables file: %w", err)
	}

	if err := tables.Validate(); err != nil {
		return domain.Tables{}, fmt.Errorf("invalid tables in %s: %w", path, err)
	}

	return tables, nil
}

// DefaultTables returns the built-in engine-telemetry schema and PIREP
// field-mapping table. Ranges reflect plausible physical limits for general
// aviation piston/turbine telemetry; anything outside them is flagged rather
// than rejected.
func DefaultTables() domain.Tables {
	return domain.Tables{
		Schema: domain.Schema{
			Fields: []domain.FieldSpec{
				{Name: "temp_c", Type: domain.FieldNumeric, Required: true, Min: f(-60), Max: f(150)},
				{Name: "oil_temp_c", Type: domain.FieldNumeric, Min: f(-40), Max: f(200)},
				{Name: "pressure_psi", Type: domain.FieldNumeric, Required: true, Min: f(0), Max: f(50)},
				{Name: "altitude_ft", Type: domain.FieldNumeric, Min: f(0), Max: f(60000)},
				{Name: "ground_speed_kts", Type: domain.FieldNumeric, Min: f(0), Max: f(800)},
				{Name: "rpm", Type: domain.FieldNumeric, Min: f(0), Max: f(20000)},
				{Name: "station", Type: domain.FieldString, Required: true},
				{Name: "time", Type: domain.FieldString},
			},
		},
		Mappings: []domain.FieldMapping{
			{RawField: "temp_c", PIREPField: "temp_f", Conversion: "c_to_f", Decimals: 1},
			{RawField: "oil_temp_c", PIREPField: "oil_temp_f", Conversion: "c_to_f", Decimals: 1},
			{RawField: "pressure_psi", PIREPField: "pressure_kpa", Conversion: "psi_to_kpa", Decimals: 2},
			{RawField: "altitude_ft", PIREPField: "flight_level", Conversion: "ft_to_fl", Decimals: 0},
			{RawField: "ground_speed_kts", PIREPField: "ground_speed_kts", Conversion: "identity", Decimals: 0},
			{RawField: "rpm", PIREPField: "rpm", Conversion: "identity", Decimals: 0},
		},
	}
}

func f(v float64) *float64 { return &v }
