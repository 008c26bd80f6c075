// Package adjudication implements the decision core of the claim flow:
// score a submission (external analyzer or deterministic fallback), map the
// score to a disposition, and compute the settlement payout when approved.
package adjudication

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"trustlynk/internal/adjudication/metrics"
	"trustlynk/internal/adjudication/ports"
	"trustlynk/internal/audit"
	"trustlynk/internal/settlement"
	dErrors "trustlynk/pkg/domain-errors"
	"trustlynk/pkg/requestcontext"
)

// Service orchestrates one claim adjudication. It is stateless: every
// invocation is independent and safe to run concurrently.
type Service struct {
	analyzer        ports.AnalyzerPort
	analyzerTimeout time.Duration
	bands           Bands
	converter       *settlement.Converter
	logger          *slog.Logger
	metrics         *metrics.Metrics
	audit           *audit.Publisher
}

// NewService constructs the orchestrator. analyzer may be nil when no
// external analyzer is configured; every submission then uses the fallback
// scorer. logger, metrics, and audit are optional.
func NewService(
	analyzer ports.AnalyzerPort,
	analyzerTimeout time.Duration,
	bands Bands,
	converter *settlement.Converter,
	logger *slog.Logger,
	m *metrics.Metrics,
	publisher *audit.Publisher,
) (*Service, error) {
	if converter == nil {
		return nil, errors.New("settlement converter is required")
	}
	if analyzerTimeout <= 0 {
		analyzerTimeout = 5 * time.Second
	}
	return &Service{
		analyzer:        analyzer,
		analyzerTimeout: analyzerTimeout,
		bands:           bands,
		converter:       converter,
		logger:          logger,
		metrics:         m,
		audit:           publisher,
	}, nil
}

// Adjudicate validates the submission, obtains a risk score, classifies it,
// and computes the payout for approved claims. It performs no persistence
// and initiates no transfer; RequiresTransfer and TransferAmount are
// instructions for the downstream settlement system.
func (s *Service) Adjudicate(ctx context.Context, sub ClaimSubmission) (*AdjudicationResult, error) {
	start := time.Now()

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	analysis := s.analyze(ctx, sub)
	disposition := s.bands.Decide(analysis.AggregateScore)

	var transferAmount int64
	if disposition == DispositionApproved {
		units, err := s.converter.ToSettlementUnits(sub.ClaimAmount)
		if err != nil {
			// Validation already guaranteed a positive finite amount, so a
			// conversion failure is a bug, not caller error.
			return nil, dErrors.New(dErrors.CodeInternal, "settlement conversion failed")
		}
		transferAmount = units
	}

	result := &AdjudicationResult{
		PolicyID:         sub.PolicyID,
		UserAddress:      sub.UserAddress,
		ClaimAmount:      sub.ClaimAmount,
		AggregateScore:   analysis.AggregateScore,
		Disposition:      disposition,
		RequiresTransfer: disposition == DispositionApproved,
		TransferAmount:   transferAmount,
	}

	s.metrics.IncrementOutcome(string(disposition), string(analysis.Provenance))
	s.metrics.ObserveAdjudicateLatency(time.Since(start))

	if s.audit != nil {
		s.audit.Emit(ctx, audit.Event{
			RequestID:   requestcontext.RequestID(ctx),
			Action:      audit.ActionClaimAdjudicated,
			PolicyID:    sub.PolicyID,
			UserAddress: sub.UserAddress,
			Provenance:  string(analysis.Provenance),
			Disposition: string(disposition),
			Score:       analysis.AggregateScore,
		})
	}

	return result, nil
}

// analyze produces the risk score. The REAL path runs only when an evidence
// payload was supplied and an analyzer is configured; any failure there is
// absorbed and the fallback scorer is invoked exactly once. The failure
// never reaches the caller: an analyzer outage must not block claims.
func (s *Service) analyze(ctx context.Context, sub ClaimSubmission) RiskAnalysis {
	if !sub.hasEvidence() || s.analyzer == nil {
		return RiskAnalysis{
			AggregateScore: FallbackScore(sub.ClaimAmount, sub.PolicyID),
			Provenance:     ProvenanceFallback,
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.analyzerTimeout)
	defer cancel()

	callStart := time.Now()
	report, err := s.analyzer.Analyze(callCtx, sub.Evidence)
	s.metrics.ObserveAnalyzerLatency(time.Since(callStart))

	if err == nil && report == nil {
		err = errors.New("analyzer returned no report")
	}
	if err != nil {
		s.metrics.IncrementFallback()
		if s.logger != nil {
			s.logger.WarnContext(ctx, "analyzer call failed, using fallback score",
				"request_id", requestcontext.RequestID(ctx),
				"policy_id", sub.PolicyID,
				"error", err,
			)
		}
		if s.audit != nil {
			s.audit.Emit(ctx, audit.Event{
				RequestID:   requestcontext.RequestID(ctx),
				Action:      audit.ActionAnalyzerFallback,
				PolicyID:    sub.PolicyID,
				UserAddress: sub.UserAddress,
				Detail:      err.Error(),
			})
		}
		return RiskAnalysis{
			AggregateScore: FallbackScore(sub.ClaimAmount, sub.PolicyID),
			Provenance:     ProvenanceFallback,
		}
	}

	return RiskAnalysis{
		AggregateScore: report.AggregateScore,
		Provenance:     ProvenanceReal,
	}
}
