package domain

import (
	"context"
	"log/slog"
)

// StationInfo describes a reporting station resolved from its ICAO identifier.
type StationInfo struct {
	ICAO string
	Name string
	Lat  float64
	Lon  float64
}

// StationDirectory resolves ICAO station identifiers to station details.
type StationDirectory interface {
	Lookup(ctx context.Context, icao string) (StationInfo, error)
}

// EnrichWithStation attempts to attach the station name to an entry.
// If directory is nil, the station is unknown, or the lookup fails, the entry
// is returned unchanged (graceful degradation — enrichment never fails the
// pipeline).
func EnrichWithStation(ctx context.Context, entry PIREPEntry, directory StationDirectory, logger *slog.Logger) PIREPEntry {
	if directory == nil || entry.Station == "" {
		return entry
	}

	info, err := directory.Lookup(ctx, entry.Station)
	if err != nil {
		logger.Warn("station lookup failed",
			"entry_id", entry.ID,
			"station", entry.Station,
			"error", err,
		)
		return entry
	}

	entry.StationName = info.Name
	return entry
}
