package handler

import (
	"strings"

	dErrors "trustlynk/pkg/domain-errors"
)

// AcknowledgeRequest is the HTTP request body for
// POST /legacy/acknowledge-transfer.
type AcknowledgeRequest struct {
	UserAddress     string `json:"userAddress"`
	SettlementUnits int64  `json:"settlementUnits"`
}

// Validate validates the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *AcknowledgeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.UserAddress = strings.TrimSpace(r.UserAddress)
	if r.UserAddress == "" {
		return dErrors.New(dErrors.CodeValidation, "userAddress is required")
	}

	if r.SettlementUnits <= 0 {
		return dErrors.New(dErrors.CodeValidation, "settlementUnits must be positive")
	}

	return nil
}
