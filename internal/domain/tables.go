package domain

import (
	"errors"
	"fmt"
)

// FieldType distinguishes numeric from free-text raw fields.
type FieldType string

const (
	FieldNumeric FieldType = "numeric"
	FieldString  FieldType = "string"
)

// FieldSpec declares one expected raw telemetry field: its type, whether it
// must be present, and optional numeric bounds.
type FieldSpec struct {
	Name     string    `yaml:"name" json:"name"`
	Type     FieldType `yaml:"type" json:"type"`
	Required bool      `yaml:"required" json:"required"`
	Min      *float64  `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *float64  `yaml:"max,omitempty" json:"max,omitempty"`
}

// Schema is the validation table: the set of expected raw fields.
type Schema struct {
	Fields []FieldSpec `yaml:"fields" json:"fields"`
}

// FieldMapping maps one raw numeric field to a standardized PIREP field with
// a named unit conversion, a rounding policy, and a fallback value used when
// the source is missing or malformed.
type FieldMapping struct {
	RawField   string  `yaml:"raw_field" json:"raw_field"`
	PIREPField string  `yaml:"pirep_field" json:"pirep_field"`
	Conversion string  `yaml:"conversion" json:"conversion"`
	Decimals   int     `yaml:"decimals" json:"decimals"`
	Fallback   float64 `yaml:"fallback" json:"fallback"`
}

// Tables bundles the static configuration the pipeline runs on: the
// validation schema and the field-mapping table. Both are data passed in at
// construction, not process-wide state, so deployments can swap raw schemas
// without touching transformation logic.
type Tables struct {
	Schema   Schema         `yaml:"schema" json:"schema"`
	Mappings []FieldMapping `yaml:"mappings" json:"mappings"`
}

// Validate checks the tables for internal consistency: unique field names,
// known conversion names, sane bounds.
func (t Tables) Validate() error {
	if len(t.Schema.Fields) == 0 {
		return errors.New("schema declares no fields")
	}
	seen := make(map[string]bool, len(t.Schema.Fields))
	for _, f := range t.Schema.Fields {
		if f.Name == "" {
			return errors.New("schema field with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate schema field %q", f.Name)
		}
		seen[f.Name] = true
		if f.Type != FieldNumeric && f.Type != FieldString {
			return fmt.Errorf("schema field %q: unknown type %q", f.Name, f.Type)
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return fmt.Errorf("schema field %q: min %g exceeds max %g", f.Name, *f.Min, *f.Max)
		}
	}
	for _, m := range t.Mappings {
		if m.RawField == "" || m.PIREPField == "" {
			return fmt.Errorf("mapping %q -> %q: field names must be non-empty", m.RawField, m.PIREPField)
		}
		if _, ok := Conversion(m.Conversion); !ok {
			return fmt.Errorf("mapping %q: unknown conversion %q", m.RawField, m.Conversion)
		}
		if m.Decimals < 0 {
			return fmt.Errorf("mapping %q: negative decimals", m.RawField)
		}
		if !seen[m.RawField] {
			return fmt.Errorf("mapping %q: raw field not declared in schema", m.RawField)
		}
	}
	return nil
}
