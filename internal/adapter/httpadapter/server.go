// Package httpadapter is the thin web boundary around the pipeline: health,
// readiness, and metrics endpoints plus a minimal upload form and the
// synchronous batch-processing endpoint. It carries no transformation logic.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flightbrief/pirep-etl-service/internal/adapter/ingest"
	"github.com/flightbrief/pirep-etl-service/internal/domain"
	"github.com/flightbrief/pirep-etl-service/internal/pipeline"
)

// Processor runs one uploaded batch through the pipeline.
type Processor interface {
	Process(ctx context.Context, recs []domain.RawRecord) (pipeline.Result, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the upload/process endpoints alongside health, readiness,
// and metrics routes.
type Server struct {
	httpServer *http.Server
	processor  Processor
	logger     *slog.Logger
	index      *template.Template
}

// NewServer creates the HTTP server with /, /process, /healthz, /readyz,
// and /metrics routes.
func NewServer(addr string, processor Processor, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		processor: processor,
		logger:    logger,
		index:     template.Must(template.New("index").Parse(indexHTML)),
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /process", s.handleProcess)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(processor))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, nil); err != nil {
		s.logger.Error("render index failed", "error", err)
	}
}

// handleProcess decodes the uploaded batch and runs it through the pipeline.
// Per-record data-quality issues come back inside the result as findings;
// only structural failures produce an error status, with no partial output.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	records, err := s.decodeUpload(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := s.processor.Process(r.Context(), records)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, pipeline.ErrEmptyBatch):
			status = http.StatusBadRequest
		case errors.Is(err, pipeline.ErrBatchTooLarge):
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// decodeUpload picks the decoder from the request shape: a multipart form
// with a "telemetry" file, a JSON body, or (the default) a CSV body.
func (s *Server) decodeUpload(r *http.Request) ([]domain.RawRecord, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		file, header, err := r.FormFile("telemetry")
		if err != nil {
			return nil, ingest.ErrBadPayload
		}
		defer file.Close()
		if mt, _, _ := mime.ParseMediaType(header.Header.Get("Content-Type")); mt == "application/json" {
			return ingest.DecodeJSON(file)
		}
		return ingest.DecodeCSV(file)
	case "application/json":
		return ingest.DecodeJSON(r.Body)
	default:
		return ingest.DecodeCSV(r.Body)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>PIREP Telemetry ETL</title></head>
<body>
  <h1>PIREP Telemetry ETL</h1>
  <p>Upload a telemetry batch (CSV with a header row, or a JSON array).</p>
  <form action="/process" method="post" enctype="multipart/form-data">
    <input type="file" name="telemetry" required>
    <button type="submit">Process</button>
  </form>
</body>
</html>
`
