// Package narrative holds the static reference text for reports: trait
// blurbs per band, chakra remedies, crystal associations, brand colors, and
// the growth tips. All tables are package data loaded once; there is no
// mutation path at runtime.
package narrative

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

// TraitSummary returns the blurb for a trait at a given band, formatted as
// "Band - blurb". An unknown combination degrades to the empty string; the
// miss is logged but never fatal, the report just gets a shorter sentence.
func TraitSummary(t inventory.Trait, band scoring.Band) string {
	bands, ok := traitBlurbs[t]
	if !ok {
		slog.Debug("no blurb table for trait", "trait", string(t))
		return ""
	}
	blurb, ok := bands[band]
	if !ok {
		slog.Debug("no blurb for band", "trait", string(t), "band", string(band))
		return ""
	}
	return fmt.Sprintf("%s - %s", band, blurb)
}

// RemedyLine returns the remedy sentence for a chakra prefixed with its
// status, e.g. "Blocked: Grounding walk barefoot, ...; crystals: Red Jasper,
// Hematite, Black Tourmaline". Unknown chakra degrades to the empty string.
func RemedyLine(c inventory.Chakra, status scoring.Status) string {
	base, ok := chakraRemedies[c]
	if !ok {
		slog.Debug("no remedy for chakra", "chakra", string(c))
		return ""
	}
	return fmt.Sprintf("%s: %s", status, base)
}

// Crystals returns the crystal association list for a chakra, nil if none.
func Crystals(c inventory.Chakra) []string {
	return chakraCrystals[c]
}

// CrystalList returns the crystal associations as a comma-joined string.
func CrystalList(c inventory.Chakra) string {
	return strings.Join(chakraCrystals[c], ", ")
}

// Color returns the brand hex color for a chakra, a neutral grey if unknown.
func Color(c inventory.Chakra) string {
	if col, ok := chakraColors[c]; ok {
		return col
	}
	return "#666666"
}

// GrowthTips returns the fixed personality growth suggestions. The list is
// static product copy, not derived from scores.
func GrowthTips() []string {
	return growthTips
}
