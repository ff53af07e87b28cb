// Package ingest decodes uploaded telemetry payloads into raw records.
// It handles the two upload formats the web boundary accepts: header-row CSV
// and JSON arrays of flat objects. Unparseable payloads are structural
// errors; the caller rejects the whole request.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flightbrief/pirep-etl-service/internal/domain"
)

// ErrBadPayload marks a payload that could not be decoded at all.
// Check with errors.Is.
var ErrBadPayload = errors.New("unparseable telemetry payload")

// DecodeCSV reads a header-row CSV into raw records. The header names the
// fields; each data row becomes one record. Blank cells are omitted so the
// validator sees them as missing rather than as empty strings.
func DecodeCSV(r io.Reader) ([]domain.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrBadPayload, err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	var records []domain.RawRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadPayload, len(records)+2, err)
		}

		rec := make(domain.RawRecord, len(header))
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" || header[i] == "" {
				continue
			}
			rec[header[i]] = cell
		}
		records = append(records, rec)
	}

	return records, nil
}

// DecodeJSON reads a JSON array of flat objects into raw records. Scalars are
// rendered to their canonical text form; null values are omitted (missing).
func DecodeJSON(r io.Reader) ([]domain.RawRecord, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	records := make([]domain.RawRecord, 0, len(rows))
	for _, row := range rows {
		rec := make(domain.RawRecord, len(row))
		for field, value := range row {
			text, ok := scalarText(value)
			if !ok {
				continue
			}
			rec[field] = text
		}
		records = append(records, rec)
	}

	return records, nil
}

// scalarText renders a decoded JSON scalar to text. Numbers use the shortest
// representation that round-trips, matching what a CSV cell would carry.
func scalarText(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		// Nested arrays/objects have no raw-field meaning; treat as absent.
		return "", false
	}
}
