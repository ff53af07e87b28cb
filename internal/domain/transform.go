package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ToPIREP maps a validated raw telemetry record to a standardized PIREP
// entry using the configured field-mapping table.
//
// A field whose source carries a MissingValue or MalformedType finding (or is
// simply absent) takes the mapping's fallback value and is marked Unknown
// rather than silently computed from garbage. An OutOfRange source still
// converts but the result is marked Suspect. The entry is deterministic given
// identical (record, findings, tables) and clock.
func ToPIREP(rec RawRecord, findings []ValidationFinding, tables Tables) PIREPEntry {
	byField := make(map[string]map[FindingKind]bool, len(findings))
	urgent := false
	for _, f := range findings {
		if byField[f.Field] == nil {
			byField[f.Field] = make(map[FindingKind]bool, 2)
		}
		byField[f.Field][f.Kind] = true
		if f.Kind == OutOfRange {
			urgent = true
		}
	}

	fields := make(map[string]PIREPValue, len(tables.Mappings))
	for _, m := range tables.Mappings {
		fields[m.PIREPField] = deriveField(rec, byField[m.RawField], m)
	}

	station := strings.ToUpper(strings.TrimSpace(rec["station"]))
	now := clock.Now().UTC()
	timeStr := strings.TrimSpace(rec["time"])

	entry := PIREPEntry{
		ID:          generateID(station, timeStr, fields),
		Station:     station,
		ReportType:  reportType(urgent),
		Fields:      fields,
		ObservedAt:  parseHHMM(now.Truncate(time.Minute), timeStr),
		ProcessedAt: now,
	}
	entry.EncodedLine = EncodePIREPLine(entry)
	return entry
}

// deriveField converts one raw value into its PIREP representation,
// substituting the fallback when the source is unusable.
func deriveField(rec RawRecord, kinds map[FindingKind]bool, m FieldMapping) PIREPValue {
	unusable := kinds[MissingValue] || kinds[MalformedType] || !rec.Has(m.RawField)
	if !unusable {
		raw, err := strconv.ParseFloat(strings.TrimSpace(rec[m.RawField]), 64)
		if err != nil {
			unusable = true
		} else {
			convert, _ := Conversion(m.Conversion)
			return PIREPValue{
				Value:   RoundTo(convert(raw), m.Decimals),
				Suspect: kinds[OutOfRange],
			}
		}
	}
	return PIREPValue{
		Value:   RoundTo(m.Fallback, m.Decimals),
		Unknown: true,
	}
}

// reportType returns the PIREP type code: UUA (urgent) when the record
// produced any out-of-range finding, otherwise UA (routine).
func reportType(urgent bool) string {
	if urgent {
		return "UUA"
	}
	return "UA"
}

// parseHHMM combines a base date with an HHMM time string (e.g. "1510" → 15:10).
func parseHHMM(baseDate time.Time, hhmm string) time.Time {
	hhmm = strings.TrimSpace(hhmm)
	if len(hhmm) < 3 {
		return baseDate
	}
	if len(hhmm) == 3 {
		hhmm = "0" + hhmm
	}

	hour, errH := strconv.Atoi(hhmm[:2])
	mins, errM := strconv.Atoi(hhmm[2:])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || mins < 0 || mins > 59 {
		return baseDate
	}

	return time.Date(
		baseDate.Year(), baseDate.Month(), baseDate.Day(),
		hour, mins, 0, 0, time.UTC,
	)
}

// generateID produces a deterministic ID from the entry's key fields.
// Reprocessing the same raw record produces the same ID, which makes fixture
// comparison and downstream deduplication cheap.
func generateID(station, timeStr string, fields map[string]PIREPValue) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(station)
	b.WriteString("|")
	b.WriteString(timeStr)
	for _, name := range names {
		v := fields[name]
		fmt.Fprintf(&b, "|%s=%g,%t,%t", name, v.Value, v.Unknown, v.Suspect)
	}

	hash := sha256.Sum256([]byte(b.String()))
	short := hex.EncodeToString(hash[:8])
	if station == "" {
		return "pirep-" + short
	}
	return "pirep-" + strings.ToLower(station) + "-" + short
}

// EncodePIREPLine renders the single-line coded PIREP for an entry:
//
//	UA /OV KOKC /TM 1510Z /FL085 /TA M02
//
// Segments whose values are unknown are omitted, matching standard PIREP
// practice of reporting only inferable fields. Temperature is encoded in
// whole degrees Celsius with an M prefix for negatives.
func EncodePIREPLine(e PIREPEntry) string {
	segs := []string{e.ReportType}

	if e.Station != "" {
		segs = append(segs, "/OV "+e.Station)
	}
	if !e.ObservedAt.IsZero() {
		segs = append(segs, fmt.Sprintf("/TM %sZ", e.ObservedAt.UTC().Format("1504")))
	}
	if fl, ok := e.Fields["flight_level"]; ok && !fl.Unknown {
		segs = append(segs, fmt.Sprintf("/FL%03d", int(math.Round(fl.Value))))
	}
	if ta, ok := e.Fields["temp_f"]; ok && !ta.Unknown {
		segs = append(segs, "/TA "+encodeTemp(ta.Value))
	}

	return strings.Join(segs, " ")
}

// encodeTemp renders a Fahrenheit PIREP value as whole degrees Celsius,
// M-prefixed when negative: 28.4°F → "M02".
func encodeTemp(fahrenheit float64) string {
	c := int(math.Round(FahrenheitToCelsius(fahrenheit)))
	if c < 0 {
		return fmt.Sprintf("M%02d", -c)
	}
	return fmt.Sprintf("%02d", c)
}
