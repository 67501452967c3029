package scoring_test

import (
	"errors"
	"testing"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

func allChakrasAnswered(raw int) map[inventory.Chakra][]int {
	grouped := make(map[inventory.Chakra][]int, len(inventory.AllChakras))
	for _, c := range inventory.AllChakras {
		grouped[c] = []int{raw, raw, raw}
	}
	return grouped
}

func TestChakraBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		raw        int
		wantScore  float64
		wantStatus scoring.Status
	}{
		{"all ones is blocked", 1, 1.0, scoring.StatusBlocked},
		{"all fours is balanced", 4, 4.0, scoring.StatusBalanced},
		{"all sevens is overactive", 7, 7.0, scoring.StatusOveractive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := scoring.ScoreChakras(allChakrasAnswered(tt.raw))
			if err != nil {
				t.Fatalf("ScoreChakras() error: %v", err)
			}
			for _, c := range inventory.AllChakras {
				if got := scores.ByChakra(c); got != tt.wantScore {
					t.Errorf("%s = %v, want %v", c, got, tt.wantScore)
				}
				if got := scoring.StatusFor(scores.ByChakra(c)); got != tt.wantStatus {
					t.Errorf("%s status = %q, want %q", c, got, tt.wantStatus)
				}
			}
		})
	}
}

func TestChakraMeanStaysInScale(t *testing.T) {
	// Every valid answer combination yields a mean inside [1,7].
	for a := 1; a <= 7; a++ {
		for b := 1; b <= 7; b++ {
			for c := 1; c <= 7; c++ {
				scores, err := scoring.ScoreChakras(map[inventory.Chakra][]int{
					inventory.Root: {a, b, c},
				})
				if err != nil {
					t.Fatalf("ScoreChakras(%d,%d,%d) error: %v", a, b, c, err)
				}
				if scores.Root < 1 || scores.Root > 7 {
					t.Fatalf("mean of %d,%d,%d = %v, outside [1,7]", a, b, c, scores.Root)
				}
			}
		}
	}
}

func TestChakraZeroItemsIsSentinel(t *testing.T) {
	scores, err := scoring.ScoreChakras(map[inventory.Chakra][]int{
		inventory.Root: {5, 5, 5},
	})
	if err != nil {
		t.Fatalf("ScoreChakras() error: %v", err)
	}
	if scores.Crown != 0.0 {
		t.Errorf("unanswered Crown = %v, want 0.0 sentinel", scores.Crown)
	}
}

func TestChakraOutOfRangeRejected(t *testing.T) {
	for _, raw := range []int{0, 8} {
		_, err := scoring.ScoreChakras(map[inventory.Chakra][]int{
			inventory.Heart: {4, raw, 4},
		})
		var ve *scoring.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("raw %d: error = %v, want *ValidationError", raw, err)
		}
	}
}

func TestChakraUnknownCategoryRejected(t *testing.T) {
	_, err := scoring.ScoreChakras(map[inventory.Chakra][]int{
		inventory.Chakra("Spleen"): {4, 4, 4},
	})
	if err == nil {
		t.Fatal("expected error for unknown chakra category")
	}
}
