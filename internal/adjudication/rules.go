package adjudication

// Bands holds the score thresholds separating the three dispositions.
// Thresholds are fixed configuration; the step function over them is total
// for every real score, including band edges.
type Bands struct {
	// ApproveBelow is the exclusive upper bound of the APPROVED band.
	ApproveBelow float64
	// RejectFrom is the inclusive lower bound of the REJECTED band.
	RejectFrom float64
}

// DefaultBands returns the deployed thresholds: scores below 30 approve,
// 70 and above reject, the middle band holds for review.
func DefaultBands() Bands {
	return Bands{ApproveBelow: 30, RejectFrom: 70}
}

// Decide maps an aggregate risk score to a disposition.
// This is pure domain logic - no I/O, no side effects, referentially
// transparent: the same score always yields the same disposition.
//
// Band edges belong to the higher-risk side: a score exactly at
// ApproveBelow is PENDING, a score exactly at RejectFrom is REJECTED.
func (b Bands) Decide(score float64) Disposition {
	switch {
	case score < b.ApproveBelow:
		return DispositionApproved
	case score < b.RejectFrom:
		return DispositionPending
	default:
		return DispositionRejected
	}
}
