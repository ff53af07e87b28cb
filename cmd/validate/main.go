// Command validate performs end-to-end integrity checks across the mock data
// fixtures: the source telemetry CSV, the raw JSON fixture, and the
// transformed PIREP JSON fixture. It verifies row counts, field presence,
// transformation correctness, and summary consistency.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -csv testdata/telemetry_sample.csv \
//	  -raw-json data/mock/telemetry_raw.json \
//	  -pirep-json data/mock/telemetry_pireps.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/flightbrief/pirep-etl-service/internal/adapter/ingest"
	"github.com/flightbrief/pirep-etl-service/internal/config"
	"github.com/flightbrief/pirep-etl-service/internal/domain"
	"github.com/flightbrief/pirep-etl-service/internal/validator"
)

// fixtureClock matches cmd/genmock so regenerated IDs line up.
var fixtureClock = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

type pirepFixture struct {
	Pireps   []domain.PIREPEntry                `json:"pireps"`
	Summary  domain.SummaryReport               `json:"summary"`
	Findings map[int][]domain.ValidationFinding `json:"findings"`
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "source telemetry CSV file")
	rawJSON := flag.String("raw-json", "", "path to raw records JSON fixture")
	pirepJSON := flag.String("pirep-json", "", "path to transformed PIREP JSON fixture")
	flag.Parse()

	if *csvPath == "" || *rawJSON == "" || *pirepJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*csvPath, *rawJSON, *pirepJSON); code != 0 {
		os.Exit(code)
	}
}

func run(csvPath, rawJSONPath, pirepJSONPath string) int {
	// Fixed clock matching genmock for ID reproducibility.
	domain.SetClock(clockwork.NewFakeClockAt(fixtureClock))
	defer domain.SetClock(nil)

	fmt.Println("=== PIREP Telemetry Integrity Validation ===")
	fmt.Println()

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: open source CSV: %v\n", err)
		return 1
	}
	csvRecords, err := ingest.DecodeCSV(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: decode source CSV: %v\n", err)
		return 1
	}

	rawRecords, err := loadJSON[[]domain.RawRecord](rawJSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load raw JSON: %v\n", err)
		return 1
	}

	fixture, err := loadJSON[pirepFixture](pirepJSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load PIREP JSON: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateSourceParity(csvRecords, rawRecords),
		validateTransformation(rawRecords, fixture),
		validateSummaryConsistency(fixture),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = "FAIL"
			allPassed = false
		}
		fmt.Printf("[%s] %s\n", status, p.name)
		for _, e := range p.errors {
			fmt.Printf("       - %s\n", e)
		}
	}

	if !allPassed {
		return 1
	}
	fmt.Println()
	fmt.Println("All phases passed.")
	return 0
}

// validateSourceParity checks the raw fixture against the source CSV row by row.
func validateSourceParity(csvRecords, rawRecords []domain.RawRecord) *phase {
	p := &phase{name: "source/fixture parity"}

	if len(csvRecords) != len(rawRecords) {
		p.errorf("row count mismatch: CSV has %d, fixture has %d", len(csvRecords), len(rawRecords))
		return p
	}

	for i, csvRec := range csvRecords {
		for field, want := range csvRec {
			if got := rawRecords[i][field]; got != want {
				p.errorf("record %d field %q: CSV %q, fixture %q", i, field, want, got)
			}
		}
	}
	return p
}

// validateTransformation re-runs the pipeline on the raw fixture and compares
// IDs, report types, and encoded lines against the transformed fixture.
func validateTransformation(rawRecords []domain.RawRecord, fixture pirepFixture) *phase {
	p := &phase{name: "transformation correctness"}

	if len(rawRecords) != len(fixture.Pireps) {
		p.errorf("entry count mismatch: %d raw records, %d PIREP entries", len(rawRecords), len(fixture.Pireps))
		return p
	}

	tables := config.DefaultTables()
	v := validator.New(tables.Schema)
	findings := v.ValidateBatch(rawRecords)

	for i, rec := range rawRecords {
		want := domain.ToPIREP(rec, findings[i], tables)
		got := fixture.Pireps[i]

		if got.ID != want.ID {
			p.errorf("entry %d: ID %q, regenerated %q", i, got.ID, want.ID)
		}
		if got.ReportType != want.ReportType {
			p.errorf("entry %d: report type %q, regenerated %q", i, got.ReportType, want.ReportType)
		}
		if got.EncodedLine != want.EncodedLine {
			p.errorf("entry %d: encoded line %q, regenerated %q", i, got.EncodedLine, want.EncodedLine)
		}
		for name, wantVal := range want.Fields {
			gotVal, ok := got.Fields[name]
			if !ok {
				p.errorf("entry %d: PIREP field %q absent from fixture", i, name)
				continue
			}
			if gotVal != wantVal {
				p.errorf("entry %d field %q: fixture %+v, regenerated %+v", i, name, gotVal, wantVal)
			}
		}
	}
	return p
}

// validateSummaryConsistency recomputes the summary from the fixture entries
// and checks counts and aggregates line up.
func validateSummaryConsistency(fixture pirepFixture) *phase {
	p := &phase{name: "summary consistency"}

	want := domain.Summarize(fixture.Pireps, fixture.Findings)
	got := fixture.Summary

	if got.RecordCount != want.RecordCount {
		p.errorf("record count: fixture %d, recomputed %d", got.RecordCount, want.RecordCount)
	}
	if got.TotalAlerts != want.TotalAlerts {
		p.errorf("total alerts: fixture %d, recomputed %d", got.TotalAlerts, want.TotalAlerts)
	}
	for kind, n := range want.AlertCounts {
		if got.AlertCounts[kind] != n {
			p.errorf("alert count %s: fixture %d, recomputed %d", kind, got.AlertCounts[kind], n)
		}
	}
	for name, wantStats := range want.Fields {
		gotStats, ok := got.Fields[name]
		if !ok {
			p.errorf("field %q missing from fixture summary", name)
			continue
		}
		if gotStats.Count != wantStats.Count || gotStats.Skipped != wantStats.Skipped {
			p.errorf("field %q counts: fixture %d/%d, recomputed %d/%d",
				name, gotStats.Count, gotStats.Skipped, wantStats.Count, wantStats.Skipped)
		}
		if !closeEnough(gotStats.Mean, wantStats.Mean) ||
			!closeEnough(gotStats.Min, wantStats.Min) ||
			!closeEnough(gotStats.Max, wantStats.Max) {
			p.errorf("field %q aggregates diverge: fixture %+v, recomputed %+v", name, gotStats, wantStats)
		}
	}
	return p
}

// closeEnough tolerates float drift from the JSON round trip.
func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func loadJSON[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
