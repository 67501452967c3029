package report

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/narrative"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

// ReportTitle is the fixed document title.
const ReportTitle = "Personality + Chakra Scan"

// remedyGroupSizes is the fixed partition of the seven chakras across the
// remedy pages: first 3, next 2, last 2.
var remedyGroupSizes = [3]int{3, 2, 2}

// Assemble builds the full report in its fixed section order: cover,
// personality table, growth tips, chakra dashboard, then three remedy
// tables. Rows follow the canonical trait and chakra declaration order and
// are never re-sorted by score. Zero scores flow through as real 0.0 values;
// metadata gaps become dashes. Assemble never fails.
func Assemble(traits scoring.TraitScores, chakras scoring.ChakraScores, meta Metadata, logo []byte) *Report {
	rep := &Report{ID: uuid.NewString()}

	rep.Sections = append(rep.Sections,
		coverSection(meta, logo),
		personalitySection(traits),
		tipsSection(),
		dashboardSection(chakras),
	)
	rep.Sections = append(rep.Sections, remedySections(chakras)...)
	return rep
}

func coverSection(meta Metadata, logo []byte) Section {
	return &Cover{
		Kind:     KindCover,
		Title:    ReportTitle,
		Subtitle: "Combined self-assessment report",
		Logo:     logo,
		Fields: []Field{
			{Label: "Client", Value: orDash(meta.Client)},
			{Label: "Coach", Value: orDash(meta.Coach)},
			{Label: "Date", Value: orDash(meta.Date)},
			{Label: "Gender", Value: orDash(meta.Gender)},
			{Label: "Intent", Value: orDash(meta.Intent)},
		},
	}
}

func personalitySection(traits scoring.TraitScores) Section {
	t := &Table{
		Kind:    KindTable,
		Title:   "Personality Profile (Big Five style)",
		Columns: []string{"Trait", "Score (-3..+3)", "Summary"},
		Widths:  []float64{3, 4, 9},
		Note:    "Scores are centered at 0 (balanced). Higher/lower describe tendencies, not limits.",
	}
	for _, trait := range inventory.AllTraits {
		score := traits.ByTrait(trait)
		summary := ""
		if band, err := scoring.BandFor(score); err == nil {
			summary = narrative.TraitSummary(trait, band)
		}
		t.Rows = append(t.Rows, []string{
			string(trait),
			fmt.Sprintf("%.2f", score),
			summary,
		})
	}
	return t
}

func tipsSection() Section {
	return &Bullets{
		Kind:  KindBullets,
		Title: "Growth Suggestions",
		Items: narrative.GrowthTips(),
	}
}

func dashboardSection(chakras scoring.ChakraScores) Section {
	d := &Dashboard{
		Kind:    KindDashboard,
		Title:   "Chakra Status (1-7)",
		Columns: []string{"Chakra", "Avg (1-7)", "%", "Status", "Remedy"},
		Widths:  []float64{3, 2.2, 1.6, 2.7, 8.5},
		AxisMax: 7,
	}
	for _, c := range inventory.AllChakras {
		score := chakras.ByChakra(c)
		status := scoring.StatusFor(score)
		pct := percentOfSeven(score)
		d.Rows = append(d.Rows, []string{
			string(c),
			fmt.Sprintf("%.1f", score),
			fmt.Sprintf("%d%%", pct),
			string(status),
			narrative.RemedyLine(c, status),
		})
		d.Bars = append(d.Bars, Bar{
			Label:   string(c),
			Value:   score,
			Percent: pct,
			Color:   narrative.Color(c),
		})
	}
	return d
}

func remedySections(chakras scoring.ChakraScores) []Section {
	sections := make([]Section, 0, len(remedyGroupSizes))
	start := 0
	for part, size := range remedyGroupSizes {
		group := inventory.AllChakras[start : start+size]
		start += size

		t := &Table{
			Kind:    KindTable,
			Title:   fmt.Sprintf("Chakra Scan - Part %d", part+1),
			Columns: []string{"Chakra", "Avg (1-7)", "Status", "Crystals", "Remedy"},
			Widths:  []float64{3, 2.7, 3, 5, 4},
		}
		for _, c := range group {
			score := chakras.ByChakra(c)
			status := scoring.StatusFor(score)
			t.Rows = append(t.Rows, []string{
				string(c),
				fmt.Sprintf("%.1f", score),
				string(status),
				narrative.CrystalList(c),
				narrative.RemedyLine(c, status),
			})
		}
		sections = append(sections, t)
	}
	return sections
}

// percentOfSeven maps a 0-7 score to a whole percentage, clamped to [0,100].
func percentOfSeven(score float64) int {
	pct := int(math.Round(score / 7 * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
