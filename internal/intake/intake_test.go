package intake_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/internal/intake"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

func completeDocument(t *testing.T) *intake.Document {
	t.Helper()
	doc := intake.Template(inventory.Default())
	doc.Client = "Asha"
	doc.Coach = "Mira"
	doc.Date = "2026-09-01"
	return doc
}

func TestBindComplete(t *testing.T) {
	inv := inventory.Default()
	bound, err := completeDocument(t).Bind(inv)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	if len(bound.Personality) != len(inv.Personality) {
		t.Errorf("bound %d personality responses, want %d", len(bound.Personality), len(inv.Personality))
	}
	if len(bound.Chakras) != 7 {
		t.Errorf("bound %d chakra groups, want 7", len(bound.Chakras))
	}
	if bound.Meta.Client != "Asha" {
		t.Errorf("meta client = %q", bound.Meta.Client)
	}

	// Midpoint template scores to all zeros end to end.
	traits, err := scoring.ScorePersonality(bound.Personality)
	if err != nil {
		t.Fatalf("ScorePersonality() error: %v", err)
	}
	if traits != (scoring.TraitScores{}) {
		t.Errorf("template traits = %+v, want all zeros", traits)
	}
}

func TestBindMissingPersonalityResponse(t *testing.T) {
	doc := completeDocument(t)
	doc.Personality = doc.Personality[:len(doc.Personality)-1]

	_, err := doc.Bind(inventory.Default())
	var me *scoring.MissingDataError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *MissingDataError", err)
	}
	if me.Got != 19 || me.Want != 20 {
		t.Errorf("got/want = %d/%d, expected 19/20", me.Got, me.Want)
	}
}

func TestBindMissingChakraCategory(t *testing.T) {
	doc := completeDocument(t)
	delete(doc.Chakras, "Throat")

	_, err := doc.Bind(inventory.Default())
	var me *scoring.MissingDataError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *MissingDataError", err)
	}
}

func TestBindShortChakraCategory(t *testing.T) {
	doc := completeDocument(t)
	doc.Chakras["Heart"] = []int{4}

	_, err := doc.Bind(inventory.Default())
	var me *scoring.MissingDataError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *MissingDataError", err)
	}
}

func TestBindRejectsUnconfiguredCategory(t *testing.T) {
	doc := completeDocument(t)
	doc.Chakras["Spleen"] = []int{4, 4, 4}

	if _, err := doc.Bind(inventory.Default()); err == nil {
		t.Fatal("expected error for unconfigured category")
	}
}

func TestTemplateMidpoints(t *testing.T) {
	doc := intake.Template(inventory.Default())
	for i, v := range doc.Personality {
		if v != 4 {
			t.Errorf("personality answer %d = %d, want 4", i, v)
		}
	}
	for name, values := range doc.Chakras {
		if len(values) != 3 {
			t.Errorf("chakra %s has %d answers, want 3", name, len(values))
		}
		for _, v := range values {
			if v != 4 {
				t.Errorf("chakra %s has answer %d, want 4", name, v)
			}
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.yaml")
	content := `client: Asha
date: 2026-09-01
personality: [1, 2, 3, 4, 5, 6, 7, 1, 2, 3, 4, 5, 6, 7, 1, 2, 3, 4, 5, 6]
chakras:
  Root: [5, 5, 5]
  Sacral: [4, 4, 4]
  Solar Plexus: [3, 3, 3]
  Heart: [6, 6, 6]
  Throat: [2, 2, 2]
  Third Eye: [7, 7, 7]
  Crown: [1, 1, 1]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := intake.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if doc.Client != "Asha" {
		t.Errorf("client = %q", doc.Client)
	}
	if len(doc.Personality) != 20 {
		t.Errorf("got %d personality answers, want 20", len(doc.Personality))
	}

	if _, err := doc.Bind(inventory.Default()); err != nil {
		t.Errorf("Bind() error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := intake.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing responses file")
	}
}
