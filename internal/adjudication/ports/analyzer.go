// Package ports defines the interfaces the adjudication engine needs from
// the outside world. Adapters implement them; the domain layer depends only
// on these types, never on HTTP or vendor clients.
package ports

import (
	"context"
	"encoding/json"
	"time"
)

// AnalyzerPort submits an evidence payload to the external fraud-analysis
// service and reads back a risk report. Implementations must honor ctx
// cancellation and deadlines; callers treat any error (network, timeout,
// malformed response) identically.
type AnalyzerPort interface {
	Analyze(ctx context.Context, evidence json.RawMessage) (*RiskReport, error)
}

// RiskReport is the analyzer's output (port model, not a wire type).
type RiskReport struct {
	AggregateScore float64
	AnalyzedAt     time.Time
}
