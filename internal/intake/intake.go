// Package intake parses raw questionnaire responses from YAML or JSON
// documents and binds them to a configured inventory, enforcing that every
// configured item has exactly one answer before scoring runs.
package intake

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/report"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

// Document is the wire shape of one completed questionnaire: cover metadata
// plus raw answers in inventory order. The same shape serves the responses
// file and the service request body.
type Document struct {
	Client string `yaml:"client" json:"client"`
	Coach  string `yaml:"coach" json:"coach"`
	Date   string `yaml:"date" json:"date"`
	Gender string `yaml:"gender" json:"gender"`
	Intent string `yaml:"intent" json:"intent"`

	Personality []int            `yaml:"personality" json:"personality"`
	Chakras     map[string][]int `yaml:"chakras" json:"chakras"`
}

// Bound is a document joined to its inventory: typed scorer inputs plus the
// report metadata.
type Bound struct {
	Personality []scoring.Response
	Chakras     map[inventory.Chakra][]int
	Meta        report.Metadata
}

// Load reads a responses document from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading responses: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing responses: %w", err)
	}
	return &doc, nil
}

// Bind pairs the document's raw answers with the inventory's items.
//
// Coverage is strict: the personality answer count must equal the item
// count, and every configured chakra category must be present with one
// answer per prompt. Gaps fail with *scoring.MissingDataError rather than
// defaulting, so an unanswered item can never masquerade as a neutral
// score. Value-range checks stay with the scorers.
func (d *Document) Bind(inv *inventory.Inventory) (*Bound, error) {
	if len(d.Personality) != len(inv.Personality) {
		return nil, &scoring.MissingDataError{
			Context: "personality responses",
			Want:    len(inv.Personality),
			Got:     len(d.Personality),
		}
	}

	b := &Bound{
		Chakras: make(map[inventory.Chakra][]int, len(inv.Chakras)),
		Meta: report.Metadata{
			Client: d.Client,
			Coach:  d.Coach,
			Date:   d.Date,
			Gender: d.Gender,
			Intent: d.Intent,
		},
	}

	for i, raw := range d.Personality {
		b.Personality = append(b.Personality, scoring.Response{
			Item: inv.Personality[i],
			Raw:  raw,
		})
	}

	for _, cat := range inv.Chakras {
		values, ok := d.Chakras[string(cat.Name)]
		if !ok || len(values) != len(cat.Prompts) {
			return nil, &scoring.MissingDataError{
				Context: fmt.Sprintf("chakra %s responses", cat.Name),
				Want:    len(cat.Prompts),
				Got:     len(values),
			}
		}
		b.Chakras[cat.Name] = values
	}

	for name := range d.Chakras {
		if _, ok := inv.Category(inventory.Chakra(name)); !ok {
			return nil, fmt.Errorf("responses include unconfigured chakra category %q", name)
		}
	}

	return b, nil
}

// Template returns a fillable responses document for the given inventory,
// with every answer preset to the scale midpoint.
func Template(inv *inventory.Inventory) *Document {
	doc := &Document{
		Personality: make([]int, len(inv.Personality)),
		Chakras:     make(map[string][]int, len(inv.Chakras)),
	}
	for i := range doc.Personality {
		doc.Personality[i] = 4
	}
	for _, cat := range inv.Chakras {
		values := make([]int, len(cat.Prompts))
		for i := range values {
			values[i] = 4
		}
		doc.Chakras[string(cat.Name)] = values
	}
	return doc
}
