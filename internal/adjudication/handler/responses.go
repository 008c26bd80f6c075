package handler

import "trustlynk/internal/adjudication"

// SubmitResponse is the HTTP response for POST /claims/submit.
type SubmitResponse struct {
	Success          bool    `json:"success"`
	PolicyID         string  `json:"policyId"`
	UserAddress      string  `json:"userAddress"`
	ClaimAmount      float64 `json:"claimAmount"`
	AggregateScore   float64 `json:"aggregateScore"`
	Status           string  `json:"status"`
	RequiresTransfer bool    `json:"requiresTransfer"`
	TransferAmount   int64   `json:"transferAmount"`
}

// FromResult converts a domain AdjudicationResult to an HTTP response.
func FromResult(result *adjudication.AdjudicationResult) *SubmitResponse {
	return &SubmitResponse{
		Success:          true,
		PolicyID:         result.PolicyID,
		UserAddress:      result.UserAddress,
		ClaimAmount:      result.ClaimAmount,
		AggregateScore:   result.AggregateScore,
		Status:           string(result.Disposition),
		RequiresTransfer: result.RequiresTransfer,
		TransferAmount:   result.TransferAmount,
	}
}
