package domain

import "time"

// RawRecord is one unprocessed telemetry sample keyed by raw field name.
// Values are kept as text exactly as decoded from the upload; numeric
// interpretation is the validator's job. Records are never mutated after
// decoding.
type RawRecord map[string]string

// Has reports whether the record carries a non-empty value for field.
func (r RawRecord) Has(field string) bool {
	v, ok := r[field]
	return ok && v != ""
}

// FindingKind classifies a data-quality issue.
type FindingKind string

const (
	MissingValue  FindingKind = "missing_value"
	OutOfRange    FindingKind = "out_of_range"
	MalformedType FindingKind = "malformed_type"
)

// ValidationFinding is a recorded data-quality issue tied to one field of one
// record. Findings are data: they never abort processing.
type ValidationFinding struct {
	Field  string      `json:"field"`
	Kind   FindingKind `json:"kind"`
	Detail string      `json:"detail"`
}

// PIREPValue is a single derived PIREP field value.
//
// Unknown marks a configured fallback substituted for missing or malformed
// input. Suspect marks a converted value whose source was out of range. Both
// are excluded from summary aggregation.
type PIREPValue struct {
	Value   float64 `json:"value"`
	Unknown bool    `json:"unknown,omitempty"`
	Suspect bool    `json:"suspect,omitempty"`
}

// PIREPEntry is the standardized report derived 1:1 from a RawRecord.
type PIREPEntry struct {
	ID          string                `json:"id"`
	Station     string                `json:"station"`
	StationName string                `json:"station_name,omitempty"`
	ReportType  string                `json:"report_type"` // "UA" or "UUA"
	Fields      map[string]PIREPValue `json:"fields"`
	ObservedAt  time.Time             `json:"observed_at"`
	ProcessedAt time.Time             `json:"processed_at"`
	EncodedLine string                `json:"encoded_line"`
}

// FieldStats aggregates one numeric PIREP field over a batch. Count covers
// only values that entered the aggregate; Skipped counts unknown or suspect
// values that were excluded.
type FieldStats struct {
	Count   int     `json:"count"`
	Skipped int     `json:"skipped"`
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	HasData bool    `json:"has_data"`
}

// SummaryReport is the batch-level aggregate: per-field statistics plus
// anomaly counts broken down by finding kind. Computed fresh per request,
// never persisted.
type SummaryReport struct {
	RecordCount int                   `json:"record_count"`
	Fields      map[string]FieldStats `json:"fields"`
	AlertCounts map[FindingKind]int   `json:"alert_counts"`
	TotalAlerts int                   `json:"total_alerts"`
}
