package scoring

import "fmt"

// Band is the qualitative label for a personality trait score.
type Band string

const (
	BandLow          Band = "Low"
	BandBelowAverage Band = "Below Average"
	BandBalanced     Band = "Balanced"
	BandHigh         Band = "High"
	BandVeryHigh     Band = "Very High"
)

// bandInterval is one [lo, hi) row of the personality threshold table.
type bandInterval struct {
	lo, hi float64
	label  Band
}

// personalityBands covers [-3, 3.1). The final upper bound deliberately
// exceeds the maximum attainable score of 3.0 so every reachable value maps
// to a band. Scanned in order; first match wins.
var personalityBands = []bandInterval{
	{-3, -1.6, BandLow},
	{-1.6, -0.5, BandBelowAverage},
	{-0.5, 0.5, BandBalanced},
	{0.5, 1.6, BandHigh},
	{1.6, 3.1, BandVeryHigh},
}

// BandFor classifies a trait score against the fixed threshold table.
// A score outside every interval means the table itself is misconfigured,
// so it fails loudly rather than defaulting to a label.
func BandFor(score float64) (Band, error) {
	for _, b := range personalityBands {
		if b.lo <= score && score < b.hi {
			return b.label, nil
		}
	}
	return "", fmt.Errorf("score %v matches no personality band", score)
}

// Status is the qualitative label for a chakra average.
type Status string

const (
	StatusBlocked    Status = "Blocked"
	StatusBalanced   Status = "Balanced"
	StatusOveractive Status = "Overactive"
)

// Chakra status thresholds. Both boundaries are inclusive on the
// Balanced side.
const (
	blockedBelow    = 3.8
	overactiveAbove = 5.8
)

// StatusFor classifies a chakra average: below 3.8 is Blocked, above 5.8 is
// Overactive, everything between (inclusive) is Balanced. Unlike the band
// table this is a direct two-threshold comparison and covers all reals.
func StatusFor(score float64) Status {
	switch {
	case score < blockedBelow:
		return StatusBlocked
	case score > overactiveAbove:
		return StatusOveractive
	default:
		return StatusBalanced
	}
}
