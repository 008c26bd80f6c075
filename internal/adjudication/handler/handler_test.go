package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustlynk/internal/adjudication"
	adjmetrics "trustlynk/internal/adjudication/metrics"
	"trustlynk/internal/adjudication/ports"
	"trustlynk/internal/platform/config"
	"trustlynk/internal/settlement"
	"trustlynk/pkg/platform/httputil"
	"trustlynk/pkg/testutil"
)

// failingAnalyzer always errors, simulating an analyzer outage.
type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(context.Context, json.RawMessage) (*ports.RiskReport, error) {
	return nil, errors.New("analyzer unreachable")
}

// scoredAnalyzer returns a fixed score.
type scoredAnalyzer struct{ score float64 }

func (a scoredAnalyzer) Analyze(context.Context, json.RawMessage) (*ports.RiskReport, error) {
	return &ports.RiskReport{AggregateScore: a.score, AnalyzedAt: time.Now()}, nil
}

func newClaimsRouter(t *testing.T, analyzer ports.AnalyzerPort) http.Handler {
	t.Helper()

	converter := settlement.NewConverter(config.DefaultSettlement())
	service, err := adjudication.NewService(
		analyzer,
		time.Second,
		adjudication.DefaultBands(),
		converter,
		slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		(*adjmetrics.Metrics)(nil),
		nil,
	)
	require.NoError(t, err)

	h := New(service, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestHandleSubmit(t *testing.T) {
	t.Run("approved claim returns payout instruction", func(t *testing.T) {
		router := newClaimsRouter(t, scoredAnalyzer{score: 12})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/claims/submit", map[string]any{
			"policyId":        "POL-001",
			"userAddress":     "GABC123",
			"claimAmount":     5000,
			"evidencePayload": map[string]any{"signals": []int{1}},
		})

		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)

		resp := testutil.UnmarshalResponse[SubmitResponse](t, rr)
		assert.True(t, resp.Success)
		assert.Equal(t, "POL-001", resp.PolicyID)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.True(t, resp.RequiresTransfer)
		assert.Equal(t, int64(50000), resp.TransferAmount)
	})

	t.Run("rejected claim has no transfer", func(t *testing.T) {
		router := newClaimsRouter(t, scoredAnalyzer{score: 90})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/claims/submit", map[string]any{
			"policyId":        "POL-002",
			"userAddress":     "GABC123",
			"claimAmount":     5000,
			"evidencePayload": map[string]any{},
		})

		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)

		resp := testutil.UnmarshalResponse[SubmitResponse](t, rr)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.False(t, resp.RequiresTransfer)
		assert.Equal(t, int64(0), resp.TransferAmount)
	})

	t.Run("analyzer outage still yields 200 via fallback", func(t *testing.T) {
		router := newClaimsRouter(t, failingAnalyzer{})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/claims/submit", map[string]any{
			"policyId":        "POL-003",
			"userAddress":     "GABC123",
			"claimAmount":     5000,
			"evidencePayload": map[string]any{"signals": []int{1}},
		})

		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)

		resp := testutil.UnmarshalResponse[SubmitResponse](t, rr)
		assert.True(t, resp.Success)
		assert.Contains(t, []string{"APPROVED", "PENDING", "REJECTED"}, resp.Status)
		assert.Equal(t, adjudication.FallbackScore(5000, "POL-003"), resp.AggregateScore)
	})

	t.Run("no evidence uses deterministic fallback", func(t *testing.T) {
		router := newClaimsRouter(t, nil)
		body := map[string]any{
			"policyId":    "POL-004",
			"userAddress": "GABC123",
			"claimAmount": 5000,
		}

		first := testutil.UnmarshalResponse[SubmitResponse](t, testutil.DoRequest(router,
			testutil.NewJSONRequest(t, http.MethodPost, "/claims/submit", body)))
		second := testutil.UnmarshalResponse[SubmitResponse](t, testutil.DoRequest(router,
			testutil.NewJSONRequest(t, http.MethodPost, "/claims/submit", body)))

		assert.Equal(t, first.AggregateScore, second.AggregateScore)
		assert.Equal(t, first.Status, second.Status)
	})

	t.Run("null evidencePayload uses fallback scoring", func(t *testing.T) {
		router := newClaimsRouter(t, scoredAnalyzer{score: 12})
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/claims/submit",
			`{"policyId":"POL-006","userAddress":"GABC123","claimAmount":5000,"evidencePayload":null}`)

		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)

		resp := testutil.UnmarshalResponse[SubmitResponse](t, rr)
		assert.Equal(t, adjudication.FallbackScore(5000, "POL-006"), resp.AggregateScore,
			"a null payload must score like an absent one")
	})

	t.Run("empty policyId returns 400", func(t *testing.T) {
		router := newClaimsRouter(t, scoredAnalyzer{score: 12})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/claims/submit", map[string]any{
			"policyId":    "",
			"userAddress": "GABC123",
			"claimAmount": 5000,
		})

		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)

		resp := testutil.UnmarshalResponse[httputil.ErrorResponse](t, rr)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "policyId")
	})

	t.Run("non-positive claimAmount returns 400", func(t *testing.T) {
		router := newClaimsRouter(t, scoredAnalyzer{score: 12})
		req := testutil.NewJSONRequest(t, http.MethodPost, "/claims/submit", map[string]any{
			"policyId":    "POL-005",
			"userAddress": "GABC123",
			"claimAmount": -10,
		})

		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("malformed JSON body returns 500", func(t *testing.T) {
		router := newClaimsRouter(t, scoredAnalyzer{score: 12})
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/claims/submit", `{"policyId": `)

		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusInternalServerError)

		resp := testutil.UnmarshalResponse[httputil.ErrorResponse](t, rr)
		assert.False(t, resp.Success)
	})
}
