package model

// Version is the release version, overridden at build time via ldflags.
var Version = "0.3.0"

// DefaultModel is the analysis model requested when none is configured.
const DefaultModel = "gemini-2.5-flash-preview-09-2025"

// Canonical section names as produced by the analysis backend.
// The backend is instructed to emit exactly these four headings, but the
// parser tolerates variations (see analyze.Parse).
const (
	SectionExplanation = "Explanation"
	SectionCode        = "Code"
	SectionComplexity  = "Time & Space Complexity"
	SectionSuggestions = "Suggestions"
)

// Tab identifies one of the four result panels.
type Tab int

const (
	TabExplanation Tab = iota
	TabCode
	TabComplexity
	TabSuggestions

	TabCount
)

// SectionKey returns the parsed-section name this tab displays.
func (t Tab) SectionKey() string {
	switch t {
	case TabExplanation:
		return SectionExplanation
	case TabCode:
		return SectionCode
	case TabComplexity:
		return SectionComplexity
	case TabSuggestions:
		return SectionSuggestions
	}
	return ""
}

// Title is the short label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabComplexity:
		return "Complexity"
	default:
		return t.SectionKey()
	}
}

// Attachment is an immutable handle to a file staged for submission.
// Name is the identity key for removal; names need not be unique, and
// removal by name removes every attachment sharing it.
type Attachment struct {
	Name string
	Path string
	Size int64
}

// MetricPlaceholder is shown for indicators the backend did not supply.
const MetricPlaceholder = "—"

// Metrics are the indicator values returned alongside an analysis.
// They are display strings ("A+", "O(n^2)", "Low Risk"), not numbers.
type Metrics struct {
	Quality    string
	Complexity string
	Security   string
}

// PlaceholderMetrics returns indicators reset to the placeholder,
// used whenever a response carries no metrics so nothing stale remains.
func PlaceholderMetrics() Metrics {
	return Metrics{
		Quality:    MetricPlaceholder,
		Complexity: MetricPlaceholder,
		Security:   MetricPlaceholder,
	}
}
