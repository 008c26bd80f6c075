package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trustlynk/internal/audit"
	"trustlynk/internal/settlement"
	"trustlynk/pkg/platform/httputil"
	"trustlynk/pkg/requestcontext"
)

// Handler serves the legacy transfer acknowledgement endpoint. Independent
// of the adjudication path: no shared mutable state, no transfer performed.
type Handler struct {
	converter *settlement.Converter
	logger    *slog.Logger
	audit     *audit.Publisher
}

// New constructs the legacy settlement handler. audit is optional.
func New(converter *settlement.Converter, logger *slog.Logger, publisher *audit.Publisher) *Handler {
	return &Handler{converter: converter, logger: logger, audit: publisher}
}

// Register mounts the legacy endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/legacy/acknowledge-transfer", h.HandleAcknowledge)
}

// HandleAcknowledge handles POST /legacy/acknowledge-transfer requests.
func (h *Handler) HandleAcknowledge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AcknowledgeRequest](w, r, h.logger)
	if !ok {
		return
	}

	ack, err := h.converter.Acknowledge(req.UserAddress, req.SettlementUnits)
	if err != nil {
		h.logger.WarnContext(ctx, "legacy acknowledge rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if h.audit != nil {
		h.audit.Emit(ctx, audit.Event{
			RequestID:   requestID,
			Action:      audit.ActionLegacyAcknowledge,
			UserAddress: ack.UserAddress,
			Detail:      ack.DisplayAmount,
		})
	}

	h.logger.InfoContext(ctx, "legacy transfer acknowledged",
		"request_id", requestID,
		"settlement_units", ack.SettlementUnits,
	)

	httputil.WriteJSON(w, http.StatusOK, FromAcknowledgement(ack))
}
