package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/flightbrief/pirep-etl-service/internal/domain"
	"github.com/flightbrief/pirep-etl-service/internal/observability"
)

// Structural errors abort the whole batch with no partial result. Per-field
// data-quality issues never do; they surface as findings instead.
var (
	ErrEmptyBatch    = errors.New("batch contains no records")
	ErrBatchTooLarge = errors.New("batch exceeds record limit")
)

// Validator inspects a batch and returns findings keyed by record index.
type Validator interface {
	ValidateBatch(recs []domain.RawRecord) map[int][]domain.ValidationFinding
}

// Transformer converts one validated raw record into a PIREP entry.
type Transformer interface {
	Transform(ctx context.Context, rec domain.RawRecord, findings []domain.ValidationFinding) domain.PIREPEntry
}

// Result is the full payload handed to the presentation boundary.
type Result struct {
	Pireps   []domain.PIREPEntry                `json:"pireps"`
	Summary  domain.SummaryReport               `json:"summary"`
	Findings map[int][]domain.ValidationFinding `json:"findings"`
}

// Pipeline orchestrates the validate-transform-summarize cycle for one
// uploaded batch. It holds no per-request state: every Process call operates
// only on its inputs, so concurrent requests need no coordination.
type Pipeline struct {
	validator   Validator
	transformer Transformer
	logger      *slog.Logger
	metrics     *observability.Metrics
	maxRecords  int
	processed   atomic.Int64
}

// New creates a Pipeline with the given stages and observability.
// maxRecords <= 0 disables the batch size limit.
func New(v Validator, t Transformer, logger *slog.Logger, metrics *observability.Metrics, maxRecords int) *Pipeline {
	return &Pipeline{
		validator:   v,
		transformer: t,
		logger:      logger,
		metrics:     metrics,
		maxRecords:  maxRecords,
	}
}

// CheckReadiness reports whether the pipeline can serve traffic. The pipeline
// is ready as soon as its stages are wired; there is no warm-up.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.validator == nil || p.transformer == nil {
		return errors.New("pipeline stages not configured")
	}
	return nil
}

// Process runs one batch to completion: validate every record, transform each
// to a PIREP entry, and aggregate the summary. Records with findings still
// produce entries (with fallback/suspect markers); only structural failures
// return an error, and then with no partial result.
func (p *Pipeline) Process(ctx context.Context, recs []domain.RawRecord) (Result, error) {
	start := time.Now()

	if len(recs) == 0 {
		p.metrics.StructuralErrors.Inc()
		return Result{}, ErrEmptyBatch
	}
	if p.maxRecords > 0 && len(recs) > p.maxRecords {
		p.metrics.StructuralErrors.Inc()
		return Result{}, fmt.Errorf("%w: %d records, limit %d", ErrBatchTooLarge, len(recs), p.maxRecords)
	}

	findings := p.validator.ValidateBatch(recs)

	pireps := make([]domain.PIREPEntry, 0, len(recs))
	for i, rec := range recs {
		pireps = append(pireps, p.transformer.Transform(ctx, rec, findings[i]))
	}

	summary := domain.Summarize(pireps, findings)

	p.metrics.RecordsProcessed.Add(float64(len(recs)))
	p.metrics.BatchesProcessed.Inc()
	p.metrics.BatchSize.Observe(float64(len(recs)))
	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	for kind, n := range summary.AlertCounts {
		p.metrics.Findings.WithLabelValues(string(kind)).Add(float64(n))
	}
	p.processed.Add(int64(len(recs)))

	p.logger.Info("batch processed",
		"records", len(recs),
		"findings", summary.TotalAlerts,
		"duration", time.Since(start),
	)

	return Result{Pireps: pireps, Summary: summary, Findings: findings}, nil
}

// Processed returns the total number of records processed since startup.
func (p *Pipeline) Processed() int64 {
	return p.processed.Load()
}
