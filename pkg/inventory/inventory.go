// Package inventory defines the questionnaire item sets: the forced-choice
// personality items and the Likert chakra prompts. The canonical sets are
// compiled in as read-only data; a YAML file can replace them wholesale.
package inventory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Trait is one of the five personality dimensions, identified by its
// single-letter symbol.
type Trait string

const (
	Openness          Trait = "O"
	Conscientiousness Trait = "C"
	Extraversion      Trait = "E"
	Agreeableness     Trait = "A"
	Neuroticism       Trait = "N"
)

// AllTraits lists the five traits in canonical declaration order.
// Report tables follow this order, never a score-derived one.
var AllTraits = []Trait{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}

var traitNames = map[Trait]string{
	Openness:          "Openness",
	Conscientiousness: "Conscientiousness",
	Extraversion:      "Extraversion",
	Agreeableness:     "Agreeableness",
	Neuroticism:       "Neuroticism",
}

// Name returns the full trait name, or the raw symbol if unknown.
func (t Trait) Name() string {
	if n, ok := traitNames[t]; ok {
		return n
	}
	return string(t)
}

// Valid reports whether t is one of the five defined traits.
func (t Trait) Valid() bool {
	_, ok := traitNames[t]
	return ok
}

// PersonalityItem is one forced-choice pair on the 1-7 scale.
// Left labels scale position 1, Right labels position 7. Reverse items are
// negated before aggregation.
type PersonalityItem struct {
	Left    string `yaml:"left" json:"left"`
	Right   string `yaml:"right" json:"right"`
	Trait   Trait  `yaml:"trait" json:"trait"`
	Reverse bool   `yaml:"reverse,omitempty" json:"reverse,omitempty"`
}

// Chakra is one of the seven fixed wellness categories.
type Chakra string

const (
	Root        Chakra = "Root"
	Sacral      Chakra = "Sacral"
	SolarPlexus Chakra = "Solar Plexus"
	Heart       Chakra = "Heart"
	Throat      Chakra = "Throat"
	ThirdEye    Chakra = "Third Eye"
	Crown       Chakra = "Crown"
)

// AllChakras lists the seven chakras in canonical declaration order.
var AllChakras = []Chakra{Root, Sacral, SolarPlexus, Heart, Throat, ThirdEye, Crown}

// Valid reports whether c is one of the seven defined chakras.
func (c Chakra) Valid() bool {
	for _, k := range AllChakras {
		if c == k {
			return true
		}
	}
	return false
}

// Category is one chakra's ordered prompt list. The canonical set carries
// three prompts per chakra, but any non-zero length is allowed.
type Category struct {
	Name    Chakra   `yaml:"name" json:"name"`
	Prompts []string `yaml:"prompts" json:"prompts"`
}

// Inventory is a full questionnaire configuration: the personality item list
// and the chakra categories. Loaded once and treated as immutable.
type Inventory struct {
	Personality []PersonalityItem `yaml:"personality" json:"personality"`
	Chakras     []Category        `yaml:"chakras" json:"chakras"`
}

// Category returns the category for the given chakra, if configured.
func (inv *Inventory) Category(c Chakra) (Category, bool) {
	for _, cat := range inv.Chakras {
		if cat.Name == c {
			return cat, true
		}
	}
	return Category{}, false
}

// Validate checks that every item references a defined trait and every
// category a defined chakra with at least one prompt.
func (inv *Inventory) Validate() error {
	for i, item := range inv.Personality {
		if !item.Trait.Valid() {
			return fmt.Errorf("personality item %d: unknown trait %q", i+1, item.Trait)
		}
	}
	seen := make(map[Chakra]bool)
	for _, cat := range inv.Chakras {
		if !cat.Name.Valid() {
			return fmt.Errorf("chakra category %q is not one of the seven chakras", cat.Name)
		}
		if seen[cat.Name] {
			return fmt.Errorf("chakra category %q configured twice", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Prompts) == 0 {
			return fmt.Errorf("chakra category %q has no prompts", cat.Name)
		}
	}
	return nil
}

// Load reads an inventory from a YAML file. Unlike config loading, a missing
// file is an error here: the caller asked for this specific item set.
func Load(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}
	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parsing inventory: %w", err)
	}
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("invalid inventory %s: %w", path, err)
	}
	return &inv, nil
}
