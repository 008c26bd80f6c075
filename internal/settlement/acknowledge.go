package settlement

import (
	"strings"

	dErrors "trustlynk/pkg/domain-errors"
)

// AcknowledgeMessage tells legacy callers where settlement actually happens.
const AcknowledgeMessage = "claim approval is executed by the settlement contract; no transfer was performed"

// Acknowledgement is the reply to a legacy transfer acknowledgement. It
// reports a display-formatted amount and nothing else: no funds move here.
type Acknowledgement struct {
	UserAddress     string
	SettlementUnits int64
	DisplayAmount   string
}

// Acknowledge validates a legacy (userAddress, settlementUnits) pair and
// echoes the display-formatted amount. Retained for callers that expect a
// synchronous reply while settlement is delegated to the external contract.
// It shares no state with adjudication and never influences dispositions.
func (c *Converter) Acknowledge(userAddress string, settlementUnits int64) (*Acknowledgement, error) {
	if strings.TrimSpace(userAddress) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "userAddress is required")
	}
	if settlementUnits <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "settlementUnits must be positive")
	}

	display, err := c.ToDisplayUnits(settlementUnits)
	if err != nil {
		return nil, err
	}

	return &Acknowledgement{
		UserAddress:     userAddress,
		SettlementUnits: settlementUnits,
		DisplayAmount:   display,
	}, nil
}
