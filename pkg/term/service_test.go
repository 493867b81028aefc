package term

import (
	"errors"
	"testing"
)

func TestProcessCreateTermDerivesSlugFromName(t *testing.T) {
	tests := map[string]string{
		"Hello World": "hello-world",
		"2024 Recap!": "2024-recap",
		"Café Crème":  "cafe-creme",
		"Über uns":    "uber-uns",
	}
	for name, want := range tests {
		term, err := processCreateTerm(&CreateOptions{Name: name, Taxonomy: TaxonomyTag})
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", name, err)
		}
		if term.Slug != want {
			t.Fatalf("%q: expected slug %q, got %q", name, want, term.Slug)
		}
	}
}

func TestProcessCreateTermTransliteratesNonLatinNames(t *testing.T) {
	term, err := processCreateTerm(&CreateOptions{Name: "日本語", Taxonomy: TaxonomyCategory})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if term.Slug == "" || term.Name != "日本語" {
		t.Fatalf("expected a transliterated slug and the original name, got %+v", term)
	}
}

func TestProcessCreateTermRejectsBadSlug(t *testing.T) {
	_, err := processCreateTerm(&CreateOptions{
		Name:     "News",
		Slug:     "Not A Slug",
		Taxonomy: TaxonomyCategory,
	})
	if !errors.Is(err, ErrSlugInvalid) {
		t.Fatalf("expected %v, got %v", ErrSlugInvalid, err)
	}
}

func TestProcessCreateTermDerivesSlug(t *testing.T) {
	term, err := processCreateTerm(&CreateOptions{Name: "Release Notes", Taxonomy: TaxonomyTag})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if term.Slug != "release-notes" {
		t.Fatalf("expected release-notes, got %q", term.Slug)
	}
}
