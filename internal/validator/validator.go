// Package validator performs schema-driven data-quality checks on raw
// telemetry records. Issues are returned as findings, never as errors:
// a malformed record yields findings and processing continues.
package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flightbrief/pirep-etl-service/internal/domain"
)

// Validator checks raw records against a configured schema. It is stateless
// and safe for concurrent use.
type Validator struct {
	schema domain.Schema
}

// New creates a Validator for the given schema.
func New(schema domain.Schema) *Validator {
	return &Validator{schema: schema}
}

// Validate inspects one record and returns its findings. A record with all
// required fields present, convertible, and in range yields an empty slice.
// Validate never panics on malformed input and never mutates the record.
func (v *Validator) Validate(rec domain.RawRecord) []domain.ValidationFinding {
	var findings []domain.ValidationFinding

	for _, spec := range v.schema.Fields {
		raw := strings.TrimSpace(rec[spec.Name])
		if raw == "" {
			if spec.Required {
				findings = append(findings, domain.ValidationFinding{
					Field:  spec.Name,
					Kind:   domain.MissingValue,
					Detail: "required field is absent",
				})
			}
			continue
		}

		if spec.Type != domain.FieldNumeric {
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			findings = append(findings, domain.ValidationFinding{
				Field:  spec.Name,
				Kind:   domain.MalformedType,
				Detail: fmt.Sprintf("value %q is not numeric", raw),
			})
			continue
		}

		if spec.Min != nil && value < *spec.Min {
			findings = append(findings, domain.ValidationFinding{
				Field:  spec.Name,
				Kind:   domain.OutOfRange,
				Detail: fmt.Sprintf("value %g below minimum %g", value, *spec.Min),
			})
		}
		if spec.Max != nil && value > *spec.Max {
			findings = append(findings, domain.ValidationFinding{
				Field:  spec.Name,
				Kind:   domain.OutOfRange,
				Detail: fmt.Sprintf("value %g above maximum %g", value, *spec.Max),
			})
		}
	}

	return findings
}

// ValidateBatch validates each record independently and returns findings
// keyed by record index. Records with no findings are omitted from the map;
// there is no cross-record validation.
func (v *Validator) ValidateBatch(recs []domain.RawRecord) map[int][]domain.ValidationFinding {
	findings := make(map[int][]domain.ValidationFinding)
	for i, rec := range recs {
		if f := v.Validate(rec); len(f) > 0 {
			findings[i] = f
		}
	}
	return findings
}
