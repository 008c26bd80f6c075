package handler

import "trustlynk/internal/settlement"

// AcknowledgeResponse is the HTTP response for
// POST /legacy/acknowledge-transfer.
type AcknowledgeResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	UserAddress     string `json:"userAddress"`
	SettlementUnits int64  `json:"settlementUnits"`
	DisplayAmount   string `json:"displayAmount"`
}

// FromAcknowledgement converts a domain acknowledgement to an HTTP response.
func FromAcknowledgement(ack *settlement.Acknowledgement) *AcknowledgeResponse {
	return &AcknowledgeResponse{
		Success:         true,
		Message:         settlement.AcknowledgeMessage,
		UserAddress:     ack.UserAddress,
		SettlementUnits: ack.SettlementUnits,
		DisplayAmount:   ack.DisplayAmount,
	}
}
