package adjudication

import (
	"bytes"
	"encoding/json"
	"strings"

	dErrors "trustlynk/pkg/domain-errors"
)

// Disposition is the three-way outcome of adjudication.
type Disposition string

const (
	DispositionApproved Disposition = "APPROVED"
	DispositionPending  Disposition = "PENDING"
	DispositionRejected Disposition = "REJECTED"
)

// Provenance records which analyzer produced the risk score. It is carried
// for audit and observability only and never affects the decision.
type Provenance string

const (
	ProvenanceReal     Provenance = "REAL"
	ProvenanceFallback Provenance = "FALLBACK"
)

// ClaimSubmission is one inbound claim. It is request-scoped and never
// persisted by this service.
type ClaimSubmission struct {
	PolicyID    string
	UserAddress string

	// ClaimAmount is in source-currency units and must be positive.
	ClaimAmount float64

	// Evidence is the optional payload forwarded verbatim to the external
	// fraud-analysis service. Nil means no evidence was supplied.
	Evidence json.RawMessage
}

// Validate checks the submission invariants. It runs before any external
// call so invalid input never reaches the analyzer.
func (s ClaimSubmission) Validate() error {
	if strings.TrimSpace(s.PolicyID) == "" {
		return dErrors.New(dErrors.CodeValidation, "policyId is required")
	}
	if strings.TrimSpace(s.UserAddress) == "" {
		return dErrors.New(dErrors.CodeValidation, "userAddress is required")
	}
	if s.ClaimAmount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "claimAmount must be positive")
	}
	return nil
}

// hasEvidence reports whether the submission carries a usable evidence
// payload. A JSON null is the same as an absent field: callers that send
// `"evidencePayload": null` have supplied nothing to analyze.
func (s ClaimSubmission) hasEvidence() bool {
	return len(s.Evidence) > 0 && !bytes.Equal(s.Evidence, []byte("null"))
}

// RiskAnalysis is the scored result of one submission. Immutable once built.
type RiskAnalysis struct {
	AggregateScore float64
	Provenance     Provenance
}

// AdjudicationResult is the response aggregate, constructed fresh per
// request and not mutated after construction.
type AdjudicationResult struct {
	PolicyID         string
	UserAddress      string
	ClaimAmount      float64
	AggregateScore   float64
	Disposition      Disposition
	RequiresTransfer bool

	// TransferAmount is in settlement units; zero unless approved.
	TransferAmount int64
}
