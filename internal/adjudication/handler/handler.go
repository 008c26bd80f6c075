package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"trustlynk/internal/adjudication"
	"trustlynk/pkg/platform/httputil"
	"trustlynk/pkg/requestcontext"
)

// Service defines the interface for claim adjudication.
type Service interface {
	Adjudicate(ctx context.Context, sub adjudication.ClaimSubmission) (*adjudication.AdjudicationResult, error)
}

// Handler wires the claim submission endpoint to the adjudication service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs the claims handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the claims endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/claims/submit", h.HandleSubmit)
}

// HandleSubmit handles POST /claims/submit requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.Adjudicate(ctx, req.Submission())
	if err != nil {
		h.logger.ErrorContext(ctx, "claim adjudication failed",
			"request_id", requestID,
			"policy_id", req.PolicyID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "claim adjudicated",
		"request_id", requestID,
		"policy_id", result.PolicyID,
		"status", result.Disposition,
		"requires_transfer", result.RequiresTransfer,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
