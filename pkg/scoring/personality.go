package scoring

import (
	"fmt"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
)

// Response binds one personality item to its raw 1-7 answer.
type Response struct {
	Item inventory.PersonalityItem
	Raw  int
}

// ScorePersonality aggregates forced-choice responses into per-trait scores.
//
// Each raw value is centered (raw-4 maps 1..7 onto -3..+3) and negated for
// reverse-coded items; the trait score is the arithmetic mean of its items'
// centered values, or 0.0 for a trait with no items. Duplicate items for the
// same trait accumulate. Any raw value outside [1,7] fails with a
// *ValidationError before anything is aggregated.
func ScorePersonality(responses []Response) (TraitScores, error) {
	for i, r := range responses {
		if r.Raw < 1 || r.Raw > 7 {
			return TraitScores{}, &ValidationError{
				Context: fmt.Sprintf("personality item %d (%s)", i+1, r.Item.Trait),
				Value:   r.Raw,
			}
		}
	}

	sums := make(map[inventory.Trait]float64, len(inventory.AllTraits))
	counts := make(map[inventory.Trait]int, len(inventory.AllTraits))
	for _, r := range responses {
		centered := float64(r.Raw - 4)
		if r.Item.Reverse {
			centered = -centered
		}
		sums[r.Item.Trait] += centered
		counts[r.Item.Trait]++
	}

	var scores TraitScores
	for _, t := range inventory.AllTraits {
		if n := counts[t]; n > 0 {
			scores.setTrait(t, sums[t]/float64(n))
		}
	}
	return scores, nil
}
