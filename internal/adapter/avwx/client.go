// Package avwx resolves ICAO station identifiers against an Aviation
// Weather Center style station-info endpoint. Enrichment is optional and
// feature-flagged; lookup failures degrade gracefully.
package avwx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/flightbrief/pirep-etl-service/internal/domain"
	"github.com/flightbrief/pirep-etl-service/internal/observability"
)

// Client implements domain.StationDirectory using the station-info API.
type Client struct {
	http    *resty.Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewClient creates a station-info client against the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		logger:  logger,
		metrics: metrics,
	}
}

// Lookup resolves one ICAO identifier to station details. A station the API
// does not know yields an empty StationInfo and no error.
func (c *Client) Lookup(ctx context.Context, icao string) (domain.StationInfo, error) {
	var out []stationRecord

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":    icao,
			"format": "json",
		}).
		SetResult(&out).
		Get("/api/data/stationinfo")
	if err != nil {
		c.metrics.StationLookups.WithLabelValues("error").Inc()
		return domain.StationInfo{}, fmt.Errorf("station lookup request: %w", err)
	}
	if resp.IsError() {
		c.metrics.StationLookups.WithLabelValues("error").Inc()
		return domain.StationInfo{}, fmt.Errorf("station API error: status %d", resp.StatusCode())
	}

	if len(out) == 0 {
		c.metrics.StationLookups.WithLabelValues("empty").Inc()
		return domain.StationInfo{}, nil
	}

	c.metrics.StationLookups.WithLabelValues("success").Inc()
	rec := out[0]
	return domain.StationInfo{
		ICAO: rec.ICAOID,
		Name: rec.Site,
		Lat:  rec.Lat,
		Lon:  rec.Lon,
	}, nil
}

// Station-info API response row.
type stationRecord struct {
	ICAOID string  `json:"icaoId"`
	Site   string  `json:"site"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}
