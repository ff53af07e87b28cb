package domain

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubDirectory struct {
	info StationInfo
	err  error
}

func (s *stubDirectory) Lookup(_ context.Context, _ string) (StationInfo, error) {
	return s.info, s.err
}

func TestEnrichWithStation(t *testing.T) {
	base := PIREPEntry{ID: "pirep-kokc-1234", Station: "KOKC"}

	t.Run("nil directory is a no-op", func(t *testing.T) {
		got := EnrichWithStation(context.Background(), base, nil, slog.Default())
		assert.Equal(t, base, got)
	})

	t.Run("empty station skips lookup", func(t *testing.T) {
		entry := PIREPEntry{ID: "pirep-5678"}
		dir := &stubDirectory{err: errors.New("should not be called")}

		got := EnrichWithStation(context.Background(), entry, dir, slog.Default())
		assert.Equal(t, entry, got)
	})

	t.Run("lookup failure degrades gracefully", func(t *testing.T) {
		dir := &stubDirectory{err: errors.New("api unreachable")}

		got := EnrichWithStation(context.Background(), base, dir, slog.Default())
		assert.Equal(t, base, got)
	})

	t.Run("successful lookup attaches station name", func(t *testing.T) {
		dir := &stubDirectory{info: StationInfo{ICAO: "KOKC", Name: "Will Rogers World"}}

		got := EnrichWithStation(context.Background(), base, dir, slog.Default())
		assert.Equal(t, "Will Rogers World", got.StationName)
		assert.Equal(t, base.Station, got.Station)
	})
}
