package scoring

import "fmt"

// ValidationError reports a raw response value outside the 1-7 scale.
// Scoring halts immediately; no partial scores are produced.
type ValidationError struct {
	Context string // which item or category the value belongs to
	Value   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: response %d is outside the 1-7 scale", e.Context, e.Value)
}

// MissingDataError reports a configured item with no response. This is
// distinct from a trait or chakra with zero configured items, which is a
// legal state that scores 0.0.
type MissingDataError struct {
	Context string
	Want    int // responses the configuration requires
	Got     int
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("%s: got %d responses, configuration requires %d", e.Context, e.Got, e.Want)
}
