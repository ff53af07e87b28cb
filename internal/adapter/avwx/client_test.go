package avwx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbrief/pirep-etl-service/internal/observability"
)

func newStationServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data/stationinfo", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck // test server
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, 2*time.Second, slog.Default(), observability.NewMetricsForTesting())
}

func TestLookup_Success(t *testing.T) {
	srv := newStationServer(t, http.StatusOK,
		`[{"icaoId":"KOKC","site":"Will Rogers World","lat":35.3931,"lon":-97.6007}]`)

	info, err := newTestClient(srv).Lookup(context.Background(), "KOKC")
	require.NoError(t, err)

	assert.Equal(t, "KOKC", info.ICAO)
	assert.Equal(t, "Will Rogers World", info.Name)
	assert.InDelta(t, 35.3931, info.Lat, 1e-6)
	assert.InDelta(t, -97.6007, info.Lon, 1e-6)
}

func TestLookup_UnknownStation(t *testing.T) {
	srv := newStationServer(t, http.StatusOK, `[]`)

	info, err := newTestClient(srv).Lookup(context.Background(), "ZZZZ")
	require.NoError(t, err)
	assert.Empty(t, info.Name)
}

func TestLookup_APIError(t *testing.T) {
	srv := newStationServer(t, http.StatusInternalServerError, `oops`)

	_, err := newTestClient(srv).Lookup(context.Background(), "KOKC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLookup_ContextCancelled(t *testing.T) {
	srv := newStationServer(t, http.StatusOK, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv).Lookup(ctx, "KOKC")
	require.Error(t, err)
}
