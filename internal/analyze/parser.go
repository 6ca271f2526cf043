package analyze

import (
	"regexp"
	"strings"

	"github.com/AdvaitK2607/genai-codeassistant/internal/model"
)

// Sections maps section names to body text, preserving the order in which
// each name first appeared in the source. Recomputed fresh per response,
// never persisted.
type Sections struct {
	keys   []string
	bodies map[string]string
}

// Keys returns the section names in order of first appearance.
func (s Sections) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the body for a section name, or "" if absent.
func (s Sections) Get(key string) string {
	return s.bodies[key]
}

// Has reports whether the section exists.
func (s Sections) Has(key string) bool {
	_, ok := s.bodies[key]
	return ok
}

// Len returns the number of distinct sections.
func (s Sections) Len() int {
	return len(s.keys)
}

// add inserts a section body under key. If the key already exists the new
// body is appended to the old one, not substituted. That sounds like a bug
// but it is the behavior results actually get rendered with: a model that
// emits "Complexity" twice shows both tables, and replacing would silently
// drop the first. Keep append.
func (s *Sections) add(key, body string) {
	if _, ok := s.bodies[key]; ok {
		if body != "" {
			if s.bodies[key] == "" {
				s.bodies[key] = body
			} else {
				s.bodies[key] += "\n\n" + body
			}
		}
		return
	}
	s.keys = append(s.keys, key)
	s.bodies[key] = body
}

// headingPattern matches an ATX markdown heading line: one to six '#'
// followed by at least one space and some text. The backend is prompted to
// structure its reply with "### Name" headings but models drift, so any
// heading level is accepted.
var headingPattern = regexp.MustCompile(`^#{1,6}\s+(.+)$`)

// Parse splits a combined analysis reply into named sections. It never
// fails: input with no recognized heading at all comes back as a single
// "Explanation" section holding the whole (trimmed) text.
//
// Text before the first heading is discarded — it is usually model
// preamble ("Sure! Here is the analysis...") that no panel wants.
// Each body is trimmed once, at extraction.
func Parse(raw string) Sections {
	sections := Sections{bodies: make(map[string]string)}

	var (
		current string // canonicalized name of the open section
		open    bool
		buf     []string
	)

	flush := func() {
		if open {
			sections.add(current, strings.TrimSpace(strings.Join(buf, "\n")))
		}
		buf = buf[:0]
	}

	for _, line := range strings.Split(raw, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = canonicalize(strings.TrimSpace(m[1]))
			open = true
			continue
		}
		if open {
			buf = append(buf, line)
		}
		// Lines before the first heading fall through and are dropped.
	}
	flush()

	if sections.Len() == 0 {
		sections.add(model.SectionExplanation, strings.TrimSpace(raw))
	}
	return sections
}

// canonicalize folds variant heading wordings onto fixed internal keys.
// Anything mentioning Complexity ("Complexity", "Complexity Analysis",
// "Time and Space Complexity") becomes the one canonical label so all
// complexity-like headings land in the same panel. Other headings keep
// their literal trimmed text.
func canonicalize(heading string) string {
	if strings.Contains(heading, "Complexity") {
		return model.SectionComplexity
	}
	return heading
}
