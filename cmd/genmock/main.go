// Command genmock reads a telemetry CSV file and generates mock data
// fixtures for the test suites. It uses the actual domain package under a
// fixed clock, so the transformed output matches real pipeline behavior and
// stays byte-stable across runs.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv testdata/telemetry_sample.csv \
//	  -raw-out data/mock/telemetry_raw.json \
//	  -pirep-out data/mock/telemetry_pireps.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/flightbrief/pirep-etl-service/internal/adapter/ingest"
	"github.com/flightbrief/pirep-etl-service/internal/config"
	"github.com/flightbrief/pirep-etl-service/internal/domain"
	"github.com/flightbrief/pirep-etl-service/internal/validator"
)

// fixtureClock matches cmd/validate so generated IDs are reproducible.
var fixtureClock = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

// pirepFixture is the transformed-side fixture: entries plus the batch
// summary and findings, exactly what the process endpoint would return.
type pirepFixture struct {
	Pireps   []domain.PIREPEntry                `json:"pireps"`
	Summary  domain.SummaryReport               `json:"summary"`
	Findings map[int][]domain.ValidationFinding `json:"findings"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "input telemetry CSV file")
	rawOut := flag.String("raw-out", "", "output path for raw records JSON fixture")
	pirepOut := flag.String("pirep-out", "", "output path for transformed PIREP JSON fixture")
	flag.Parse()

	if *csvPath == "" || *rawOut == "" || *pirepOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -raw-out, -pirep-out")
	}

	// Fix the clock for reproducible ObservedAt/ProcessedAt and IDs.
	domain.SetClock(clockwork.NewFakeClockAt(fixtureClock))
	defer domain.SetClock(nil)

	f, err := os.Open(*csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	records, err := ingest.DecodeCSV(f)
	if err != nil {
		return fmt.Errorf("decode csv: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%s contains no data rows", *csvPath)
	}

	tables := config.DefaultTables()
	v := validator.New(tables.Schema)
	findings := v.ValidateBatch(records)

	pireps := make([]domain.PIREPEntry, 0, len(records))
	for i, rec := range records {
		pireps = append(pireps, domain.ToPIREP(rec, findings[i], tables))
	}

	fixture := pirepFixture{
		Pireps:   pireps,
		Summary:  domain.Summarize(pireps, findings),
		Findings: findings,
	}

	if err := writeJSON(*rawOut, records); err != nil {
		return err
	}
	if err := writeJSON(*pirepOut, fixture); err != nil {
		return err
	}

	log.Printf("records: %d, findings: %d", len(records), fixture.Summary.TotalAlerts)
	log.Printf("wrote %s and %s", *rawOut, *pirepOut)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
