package pipeline

import (
	"context"
	"log/slog"

	"github.com/flightbrief/pirep-etl-service/internal/domain"
)

// PIREPTransformer implements Transformer using the domain transform
// functions with optional station enrichment.
type PIREPTransformer struct {
	tables   domain.Tables
	stations domain.StationDirectory
	logger   *slog.Logger
}

// NewTransformer creates a PIREPTransformer. Pass a nil directory to disable
// station enrichment.
func NewTransformer(tables domain.Tables, stations domain.StationDirectory, logger *slog.Logger) *PIREPTransformer {
	return &PIREPTransformer{
		tables:   tables,
		stations: stations,
		logger:   logger,
	}
}

func (t *PIREPTransformer) Transform(ctx context.Context, rec domain.RawRecord, findings []domain.ValidationFinding) domain.PIREPEntry {
	entry := domain.ToPIREP(rec, findings, t.tables)
	entry = domain.EnrichWithStation(ctx, entry, t.stations, t.logger)
	return entry
}
