package audit

import "time"

// Actions recorded by the adjudication flow.
const (
	ActionClaimAdjudicated  = "claim.adjudicated"
	ActionAnalyzerFallback  = "analyzer.fallback"
	ActionLegacyAcknowledge = "legacy.acknowledge"
)

// Event is emitted from domain logic to capture key adjudication facts.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp   time.Time
	RequestID   string
	Action      string
	PolicyID    string
	UserAddress string
	Provenance  string
	Disposition string
	Score       float64
	Detail      string
}
