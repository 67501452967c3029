// Package scoring implements the deterministic questionnaire scoring engine:
// raw 1-7 responses are aggregated into per-trait and per-chakra means, then
// classified into discrete bands and statuses by fixed threshold tables.
package scoring

import (
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
)

// TraitScores holds one centered score per personality trait, each in
// [-3, +3]. A trait with no configured items scores 0.0. The field set is
// fixed so a missing or misspelled trait cannot exist at runtime.
type TraitScores struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// ByTrait returns the score for the given trait symbol, 0.0 for an
// unknown symbol.
func (s TraitScores) ByTrait(t inventory.Trait) float64 {
	switch t {
	case inventory.Openness:
		return s.Openness
	case inventory.Conscientiousness:
		return s.Conscientiousness
	case inventory.Extraversion:
		return s.Extraversion
	case inventory.Agreeableness:
		return s.Agreeableness
	case inventory.Neuroticism:
		return s.Neuroticism
	}
	return 0
}

func (s *TraitScores) setTrait(t inventory.Trait, v float64) {
	switch t {
	case inventory.Openness:
		s.Openness = v
	case inventory.Conscientiousness:
		s.Conscientiousness = v
	case inventory.Extraversion:
		s.Extraversion = v
	case inventory.Agreeableness:
		s.Agreeableness = v
	case inventory.Neuroticism:
		s.Neuroticism = v
	}
}

// ChakraScores holds one average per chakra, each in [1,7], or 0.0 for a
// chakra with no configured prompts. The zero value is an out-of-domain
// sentinel meaning "no data", not a real low score.
type ChakraScores struct {
	Root        float64 `json:"root"`
	Sacral      float64 `json:"sacral"`
	SolarPlexus float64 `json:"solar_plexus"`
	Heart       float64 `json:"heart"`
	Throat      float64 `json:"throat"`
	ThirdEye    float64 `json:"third_eye"`
	Crown       float64 `json:"crown"`
}

// ByChakra returns the average for the given chakra, 0.0 for an
// unknown identifier.
func (s ChakraScores) ByChakra(c inventory.Chakra) float64 {
	switch c {
	case inventory.Root:
		return s.Root
	case inventory.Sacral:
		return s.Sacral
	case inventory.SolarPlexus:
		return s.SolarPlexus
	case inventory.Heart:
		return s.Heart
	case inventory.Throat:
		return s.Throat
	case inventory.ThirdEye:
		return s.ThirdEye
	case inventory.Crown:
		return s.Crown
	}
	return 0
}

func (s *ChakraScores) setChakra(c inventory.Chakra, v float64) {
	switch c {
	case inventory.Root:
		s.Root = v
	case inventory.Sacral:
		s.Sacral = v
	case inventory.SolarPlexus:
		s.SolarPlexus = v
	case inventory.Heart:
		s.Heart = v
	case inventory.Throat:
		s.Throat = v
	case inventory.ThirdEye:
		s.ThirdEye = v
	case inventory.Crown:
		s.Crown = v
	}
}
