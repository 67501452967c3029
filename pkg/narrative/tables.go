package narrative

import (
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

// traitBlurbs has a full row for every trait including Neuroticism, which
// the canonical item set never scores. The asymmetry is intentional: the
// table follows the product copy, the item set follows the instrument.
var traitBlurbs = map[inventory.Trait]map[scoring.Band]string{
	inventory.Openness: {
		scoring.BandLow:          "Prefers the familiar and practical; benefits from gentle novelty and creative play.",
		scoring.BandBelowAverage: "Enjoys practical ideas; add small exploration rituals.",
		scoring.BandBalanced:     "Healthy mix of curiosity and pragmatism.",
		scoring.BandHigh:         "Imaginative and future-focused; ground ideas into plans.",
		scoring.BandVeryHigh:     "Visionary; pair with structure to ship work.",
	},
	inventory.Conscientiousness: {
		scoring.BandLow:          "Flexible but may be scattered; create simple routines and checklists.",
		scoring.BandBelowAverage: "Works in bursts; benefit from 2-3 anchor habits.",
		scoring.BandBalanced:     "Good balance of flow and discipline.",
		scoring.BandHigh:         "Organized and reliable; watch perfectionism.",
		scoring.BandVeryHigh:     "Highly structured; schedule play and rest.",
	},
	inventory.Extraversion: {
		scoring.BandLow:          "Quiet and reflective; protect energy in groups.",
		scoring.BandBelowAverage: "Selective with social energy; plan 1:1s.",
		scoring.BandBalanced:     "Comfortable alone or in company.",
		scoring.BandHigh:         "Outgoing; include solitude for recharge.",
		scoring.BandVeryHigh:     "Highly social; schedule deep-focus windows.",
	},
	inventory.Agreeableness: {
		scoring.BandLow:          "Direct and independent; add empathy practices.",
		scoring.BandBelowAverage: "Honest yet firm; practice active listening.",
		scoring.BandBalanced:     "Warm and fair-minded.",
		scoring.BandHigh:         "Kind and cooperative; hold boundaries.",
		scoring.BandVeryHigh:     "Very accommodating; protect your needs too.",
	},
	inventory.Neuroticism: {
		scoring.BandLow:          "Calm and steady.",
		scoring.BandBelowAverage: "Usually grounded; stress spikes sometimes.",
		scoring.BandBalanced:     "Healthy awareness of feelings.",
		scoring.BandHigh:         "Sensitive to stress; build soothing rituals.",
		scoring.BandVeryHigh:     "Intensely reactive; prioritize nervous-system care.",
	},
}

var chakraCrystals = map[inventory.Chakra][]string{
	inventory.Root:        {"Red Jasper", "Hematite", "Black Tourmaline"},
	inventory.Sacral:      {"Carnelian", "Orange Calcite", "Moonstone"},
	inventory.SolarPlexus: {"Citrine", "Tiger's Eye", "Yellow Aventurine"},
	inventory.Heart:       {"Rose Quartz", "Green Aventurine", "Malachite"},
	inventory.Throat:      {"Sodalite", "Blue Apatite", "Aquamarine"},
	inventory.ThirdEye:    {"Amethyst", "Lapis Lazuli", "Lepidolite"},
	inventory.Crown:       {"Clear Quartz", "Amethyst", "Selenite"},
}

var chakraRemedies = map[inventory.Chakra]string{
	inventory.Root:        "Grounding walk barefoot, 4-7-8 breathing, red foods; crystals: Red Jasper, Hematite, Black Tourmaline",
	inventory.Sacral:      "Creative play, water ritual; crystals: Carnelian, Orange Calcite, Moonstone",
	inventory.SolarPlexus: "Power postures, small wins list; crystals: Citrine, Tiger's Eye, Yellow Aventurine",
	inventory.Heart:       "Loving-kindness, gratitude letters; crystals: Rose Quartz, Green Aventurine, Malachite",
	inventory.Throat:      "Humming/singing, 'truth sandwich'; crystals: Sodalite, Blue Apatite, Aquamarine",
	inventory.ThirdEye:    "10-min visualization, dream notes; crystals: Amethyst, Lapis Lazuli, Lepidolite",
	inventory.Crown:       "Morning silence, seva; crystals: Clear Quartz, Amethyst, Selenite",
}

var chakraColors = map[inventory.Chakra]string{
	inventory.Root:        "#EA4335",
	inventory.Sacral:      "#F4A261",
	inventory.SolarPlexus: "#E9C46A",
	inventory.Heart:       "#34A853",
	inventory.Throat:      "#4285F4",
	inventory.ThirdEye:    "#7E57C2",
	inventory.Crown:       "#B39DDB",
}

var growthTips = []string{
	"Pair high Openness with weekly shipping goals.",
	"Support low Conscientiousness with two anchor habits (sleep window, 30-min focus).",
	"If Extraversion is high, book solo reflection blocks; if low, plan 1 meaningful social slot.",
	"Balance Agreeableness with clear boundaries.",
}
