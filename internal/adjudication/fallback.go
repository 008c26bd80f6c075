package adjudication

import "hash/fnv"

// Fallback scorer bounds. Synthetic scores stay inside [fallbackFloor,
// fallbackCeil] so every disposition band stays reachable.
const (
	fallbackFloor = 5.0
	fallbackCeil  = 95.0

	// fallbackAmountPivot is the claim amount at which the amount component
	// of the synthetic score saturates.
	fallbackAmountPivot = 100_000.0
)

// FallbackScore deterministically synthesizes a plausible aggregate risk
// score from the claim amount and policy identifier alone. No network, no
// clock, no randomness: identical inputs always produce identical scores,
// so a submission retried during an analyzer outage is comparable with the
// original.
//
// Larger claims trend riskier (amount component up to 60 points); the
// policy identifier contributes a stable jitter (up to 35 points) so
// distinct policies with the same amount do not collapse onto one score.
func FallbackScore(claimAmount float64, policyID string) float64 {
	amount := claimAmount / fallbackAmountPivot
	if amount > 1 {
		amount = 1
	}
	if amount < 0 {
		amount = 0
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(policyID))
	jitter := float64(h.Sum32()%3500) / 100 // [0, 35)

	score := amount*60 + jitter
	if score < fallbackFloor {
		return fallbackFloor
	}
	if score > fallbackCeil {
		return fallbackCeil
	}
	return score
}
