package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
)

func TestDefaultInventoryShape(t *testing.T) {
	inv := inventory.Default()

	if len(inv.Personality) != 20 {
		t.Errorf("got %d personality items, want 20", len(inv.Personality))
	}
	if len(inv.Chakras) != 7 {
		t.Fatalf("got %d chakra categories, want 7", len(inv.Chakras))
	}
	for i, cat := range inv.Chakras {
		if cat.Name != inventory.AllChakras[i] {
			t.Errorf("category %d = %q, want %q (canonical order)", i, cat.Name, inventory.AllChakras[i])
		}
		if len(cat.Prompts) != 3 {
			t.Errorf("category %s has %d prompts, want 3", cat.Name, len(cat.Prompts))
		}
	}

	if err := inv.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestDefaultHasNoNeuroticismItems(t *testing.T) {
	// Four of the five traits are exercised; Neuroticism has narrative
	// table entries but no items. Intentional instrument asymmetry.
	counts := map[inventory.Trait]int{}
	for _, item := range inventory.Default().Personality {
		counts[item.Trait]++
	}
	if counts[inventory.Neuroticism] != 0 {
		t.Errorf("canonical set has %d Neuroticism items, want 0", counts[inventory.Neuroticism])
	}
	for _, trait := range []inventory.Trait{
		inventory.Openness, inventory.Conscientiousness,
		inventory.Extraversion, inventory.Agreeableness,
	} {
		if counts[trait] == 0 {
			t.Errorf("canonical set has no %s items", trait)
		}
	}
}

func TestTraitNames(t *testing.T) {
	if inventory.Openness.Name() != "Openness" {
		t.Errorf("Name() = %q", inventory.Openness.Name())
	}
	if got := inventory.Trait("X").Name(); got != "X" {
		t.Errorf("unknown trait Name() = %q, want raw symbol", got)
	}
	if inventory.Trait("X").Valid() {
		t.Error("unknown trait reported valid")
	}
}

func TestCategoryLookup(t *testing.T) {
	inv := inventory.Default()
	cat, ok := inv.Category(inventory.SolarPlexus)
	if !ok {
		t.Fatal("Solar Plexus category missing")
	}
	if cat.Prompts[0] != "I take decisive action toward goals." {
		t.Errorf("unexpected first prompt %q", cat.Prompts[0])
	}
	if _, ok := inv.Category(inventory.Chakra("Spleen")); ok {
		t.Error("unknown category lookup succeeded")
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	content := `personality:
  - left: quiet
    right: loud
    trait: E
  - left: head
    right: heart
    trait: A
    reverse: true
chakras:
  - name: Root
    prompts:
      - I feel grounded.
  - name: Crown
    prompts:
      - I feel connected.
      - I meditate.
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	inv, err := inventory.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(inv.Personality) != 2 {
		t.Errorf("got %d items, want 2", len(inv.Personality))
	}
	if !inv.Personality[1].Reverse {
		t.Error("second item should be reverse-coded")
	}
	// Variable-length categories are allowed.
	if cat, _ := inv.Category(inventory.Crown); len(cat.Prompts) != 2 {
		t.Errorf("Crown has %d prompts, want 2", len(cat.Prompts))
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown trait", "personality:\n  - {left: a, right: b, trait: Z}\n"},
		{"unknown chakra", "chakras:\n  - name: Spleen\n    prompts: [x]\n"},
		{"empty prompts", "chakras:\n  - name: Root\n    prompts: []\n"},
		{"duplicate category", "chakras:\n  - {name: Root, prompts: [x]}\n  - {name: Root, prompts: [y]}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "items.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			if _, err := inventory.Load(path); err == nil {
				t.Error("Load() succeeded, want validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := inventory.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing inventory file")
	}
}
