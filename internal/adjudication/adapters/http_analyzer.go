// Package adapters contains concrete implementations of the adjudication
// ports. The HTTP analyzer adapter can be replaced with a gRPC or in-process
// adapter without touching the domain layer.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trustlynk/internal/adjudication/ports"
	"trustlynk/internal/platform/config"
)

const analyzePath = "/api/v1/analyze"

// HTTPAnalyzer calls the external fraud-analysis service over JSON/HTTP.
type HTTPAnalyzer struct {
	baseURL    string
	httpClient *http.Client
}

type analyzeResponse struct {
	AggregateScore *float64 `json:"aggregate_score"`
}

// NewHTTPAnalyzer builds the adapter from analyzer configuration. The
// configured timeout caps every call even if the request context carries a
// later deadline.
func NewHTTPAnalyzer(cfg config.Analyzer) (*HTTPAnalyzer, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("analyzer base URL is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPAnalyzer{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Analyze submits the evidence payload and decodes the aggregate score.
// Non-2xx statuses and bodies missing aggregate_score are errors; the
// caller decides what failure means (here: fall back to synthetic scoring).
func (a *HTTPAnalyzer) Analyze(ctx context.Context, evidence json.RawMessage) (*ports.RiskReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+analyzePath, bytes.NewReader(evidence))
	if err != nil {
		return nil, fmt.Errorf("build analyzer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analyzer: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("analyzer returned status %d", resp.StatusCode)
	}

	var body analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode analyzer response: %w", err)
	}
	if body.AggregateScore == nil {
		return nil, fmt.Errorf("analyzer response missing aggregate_score")
	}

	return &ports.RiskReport{
		AggregateScore: *body.AggregateScore,
		AnalyzedAt:     time.Now(),
	}, nil
}
