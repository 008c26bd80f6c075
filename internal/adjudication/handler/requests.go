package handler

import (
	"encoding/json"
	"strings"

	"trustlynk/internal/adjudication"
	dErrors "trustlynk/pkg/domain-errors"
)

// SubmitRequest is the HTTP request body for POST /claims/submit.
type SubmitRequest struct {
	PolicyID        string          `json:"policyId"`
	UserAddress     string          `json:"userAddress"`
	ClaimAmount     float64         `json:"claimAmount"`
	EvidencePayload json.RawMessage `json:"evidencePayload,omitempty"`
}

// Validate validates the request. Field checks mirror the submission
// invariants so invalid claims are rejected before any scoring happens.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.PolicyID = strings.TrimSpace(r.PolicyID)
	if r.PolicyID == "" {
		return dErrors.New(dErrors.CodeValidation, "policyId is required")
	}

	r.UserAddress = strings.TrimSpace(r.UserAddress)
	if r.UserAddress == "" {
		return dErrors.New(dErrors.CodeValidation, "userAddress is required")
	}

	if r.ClaimAmount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "claimAmount must be positive")
	}

	return nil
}

// Submission converts the request into the domain submission.
func (r *SubmitRequest) Submission() adjudication.ClaimSubmission {
	return adjudication.ClaimSubmission{
		PolicyID:    r.PolicyID,
		UserAddress: r.UserAddress,
		ClaimAmount: r.ClaimAmount,
		Evidence:    r.EvidencePayload,
	}
}
