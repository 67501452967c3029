package scoring

import (
	"fmt"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
)

// ScoreChakras averages raw 1-7 answers per chakra category. No centering
// and no reverse-coding: chakra prompts all point the same way, higher is
// healthier. A category with no responses scores 0.0 (the no-data sentinel).
// A raw value outside [1,7] fails with a *ValidationError; a key outside the
// seven chakras is a configuration mistake and fails outright.
func ScoreChakras(grouped map[inventory.Chakra][]int) (ChakraScores, error) {
	for c, values := range grouped {
		if !c.Valid() {
			return ChakraScores{}, fmt.Errorf("unknown chakra category %q", c)
		}
		for _, v := range values {
			if v < 1 || v > 7 {
				return ChakraScores{}, &ValidationError{
					Context: fmt.Sprintf("chakra %s", c),
					Value:   v,
				}
			}
		}
	}

	var scores ChakraScores
	for _, c := range inventory.AllChakras {
		values := grouped[c]
		if len(values) == 0 {
			continue
		}
		sum := 0.0
		for _, v := range values {
			sum += float64(v)
		}
		scores.setChakra(c, sum/float64(len(values)))
	}
	return scores, nil
}
