// Package config builds runtime configuration from the environment so main
// stays lean. The settlement scale constants live here and nowhere else:
// both the converter and the display formatter are handed the same value,
// which keeps settlement accounting and display formatting from drifting.
package config

import (
	"os"
	"strconv"
	"time"
)

// Settlement holds the currency scale configuration.
//
// UnitsPerSettlement is the number of smallest settlement units per whole
// settlement-currency unit (stroop-style: 10^7). SourceRate is the divisor
// applied to source-currency amounts. These configured values are the
// authoritative rate; payout is floor(amount * UnitsPerSettlement / SourceRate).
type Settlement struct {
	UnitsPerSettlement int64
	SourceRate         int64
}

// Analyzer configures the external fraud-analysis service client.
type Analyzer struct {
	BaseURL string
	Timeout time.Duration
}

// Server captures the full service configuration.
type Server struct {
	Addr       string
	LogLevel   string
	Analyzer   Analyzer
	Settlement Settlement

	// AuditBuffer bounds the in-process audit event inbox.
	AuditBuffer int
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("TRUSTLYNK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	analyzerTimeout := durationFromEnv("TRUSTLYNK_ANALYZER_TIMEOUT", 5*time.Second)

	return Server{
		Addr:     addr,
		LogLevel: os.Getenv("TRUSTLYNK_LOG_LEVEL"),
		Analyzer: Analyzer{
			BaseURL: os.Getenv("TRUSTLYNK_ANALYZER_URL"),
			Timeout: analyzerTimeout,
		},
		Settlement:  DefaultSettlement(),
		AuditBuffer: intFromEnv("TRUSTLYNK_AUDIT_BUFFER", 1024),
	}
}

// DefaultSettlement returns the deployed scale configuration: 10^7 smallest
// units per settlement unit, source amounts divided by 10^6.
func DefaultSettlement() Settlement {
	return Settlement{
		UnitsPerSettlement: 10_000_000,
		SourceRate:         1_000_000,
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
