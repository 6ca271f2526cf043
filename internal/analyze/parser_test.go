package analyze

import (
	"reflect"
	"testing"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
)

func TestParse_FourSections(t *testing.T) {
	raw := "### Explanation\nHi\n### Code\nprint(1)\n### Complexity\n|O(n)|O(1)|"
	sections := Parse(raw)

	want := map[string]string{
		"Explanation":              "Hi",
		"Code":                     "print(1)",
		"Time & Space Complexity": "|O(n)|O(1)|",
	}
	if sections.Len() != len(want) {
		t.Fatalf("expected %d sections, got %d (%v)", len(want), sections.Len(), sections.Keys())
	}
	for key, body := range want {
		if got := sections.Get(key); got != body {
			t.Errorf("section %q: expected %q, got %q", key, body, got)
		}
	}
	wantOrder := []string{"Explanation", "Code", "Time & Space Complexity"}
	if !reflect.DeepEqual(sections.Keys(), wantOrder) {
		t.Errorf("expected order %v, got %v", wantOrder, sections.Keys())
	}
}

func TestParse_NoHeadings(t *testing.T) {
	sections := Parse("  just some text\nwith two lines  \n")
	if sections.Len() != 1 {
		t.Fatalf("expected 1 section, got %d", sections.Len())
	}
	if got := sections.Get(model.SectionExplanation); got != "just some text\nwith two lines" {
		t.Errorf("unexpected default section body: %q", got)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	sections := Parse("")
	if sections.Len() != 1 {
		t.Fatalf("expected 1 section, got %d", sections.Len())
	}
	if got := sections.Get(model.SectionExplanation); got != "" {
		t.Errorf("expected empty body, got %q", got)
	}
}

func TestParse_PreambleDiscarded(t *testing.T) {
	raw := "Sure! Here is the analysis.\n\n### Explanation\nactual content"
	sections := Parse(raw)
	if sections.Len() != 1 {
		t.Fatalf("expected 1 section, got %d (%v)", sections.Len(), sections.Keys())
	}
	if got := sections.Get("Explanation"); got != "actual content" {
		t.Errorf("expected preamble dropped, got %q", got)
	}
}

func TestParse_ComplexityCanonicalized(t *testing.T) {
	variants := []string{
		"### Complexity\nbody",
		"## Complexity Analysis\nbody",
		"#### Time and Space Complexity\nbody",
	}
	for _, raw := range variants {
		sections := Parse(raw)
		if !sections.Has(model.SectionComplexity) {
			t.Errorf("input %q: expected canonical key %q, got %v", raw, model.SectionComplexity, sections.Keys())
		}
	}
}

// Two headings canonicalizing to the same key concatenate their bodies in
// order of appearance. Replacing would silently drop the first body.
func TestParse_CollidingHeadingsAppend(t *testing.T) {
	raw := "### Complexity\nfirst table\n### Complexity Analysis\nsecond table"
	sections := Parse(raw)

	if sections.Len() != 1 {
		t.Fatalf("expected 1 section, got %d (%v)", sections.Len(), sections.Keys())
	}
	want := "first table\n\nsecond table"
	if got := sections.Get(model.SectionComplexity); got != want {
		t.Errorf("expected appended bodies %q, got %q", want, got)
	}
}

func TestParse_LiteralHeadingsKeepTheirText(t *testing.T) {
	raw := "### Some Custom Section\ncontent here"
	sections := Parse(raw)
	if got := sections.Get("Some Custom Section"); got != "content here" {
		t.Errorf("expected literal heading key, got keys %v", sections.Keys())
	}
}

func TestParse_BodyTrimmedOnce(t *testing.T) {
	raw := "### Code\n\n  print(1)\n\n"
	sections := Parse(raw)
	if got := sections.Get("Code"); got != "print(1)" {
		t.Errorf("expected trimmed body, got %q", got)
	}
}

func TestParse_HeadingNeedsSpaceAfterMarker(t *testing.T) {
	// "###Code" is not a structural heading; with no valid heading at all
	// the whole text lands in the default section.
	sections := Parse("###Code\nprint(1)")
	if sections.Len() != 1 || !sections.Has(model.SectionExplanation) {
		t.Errorf("expected single default section, got %v", sections.Keys())
	}
}

func TestParse_EmptySectionBody(t *testing.T) {
	raw := "### Explanation\n### Code\nprint(1)"
	sections := Parse(raw)
	if got := sections.Get("Explanation"); got != "" {
		t.Errorf("expected empty Explanation body, got %q", got)
	}
	if got := sections.Get("Code"); got != "print(1)" {
		t.Errorf("expected Code body, got %q", got)
	}
}
