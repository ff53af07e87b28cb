package domain

import "github.com/montanaflynn/stats"

// Summarize aggregates a batch of PIREP entries into per-field statistics
// plus anomaly counts.
//
// Skip policy: values marked Unknown or Suspect are excluded from mean, min,
// and max and counted in Skipped, so fallback and out-of-range values never
// pollute aggregates. An empty batch yields zero counts and HasData=false
// for every field; nothing here can divide by zero.
func Summarize(entries []PIREPEntry, findings map[int][]ValidationFinding) SummaryReport {
	report := SummaryReport{
		RecordCount: len(entries),
		Fields:      make(map[string]FieldStats),
		AlertCounts: make(map[FindingKind]int),
	}

	for _, recFindings := range findings {
		for _, f := range recFindings {
			report.AlertCounts[f.Kind]++
			report.TotalAlerts++
		}
	}

	values := make(map[string][]float64)
	skipped := make(map[string]int)
	for _, entry := range entries {
		for name, v := range entry.Fields {
			if v.Unknown || v.Suspect {
				skipped[name]++
				continue
			}
			values[name] = append(values[name], v.Value)
		}
	}

	for name := range values {
		report.Fields[name] = fieldStats(values[name], skipped[name])
	}
	// Fields where every value was skipped still appear, with no data.
	for name, n := range skipped {
		if _, ok := report.Fields[name]; !ok {
			report.Fields[name] = FieldStats{Skipped: n}
		}
	}

	return report
}

func fieldStats(values []float64, skipped int) FieldStats {
	if len(values) == 0 {
		return FieldStats{Skipped: skipped}
	}

	data := stats.Float64Data(values)
	mean, _ := data.Mean()
	minV, _ := data.Min()
	maxV, _ := data.Max()

	return FieldStats{
		Count:   len(values),
		Skipped: skipped,
		Mean:    RoundTo(mean, 2),
		Min:     minV,
		Max:     maxV,
		HasData: true,
	}
}
