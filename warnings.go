package folio

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal problem met while processing a page
type WarningKind int

const (
	// WarningPageUnavailable means the source could not produce the page;
	// the page is emitted with no content
	WarningPageUnavailable WarningKind = iota

	// WarningBackendFailed means a table backend failed for the page and
	// contributed no tables
	WarningBackendFailed
)

// String returns a string representation of the warning kind
func (k WarningKind) String() string {
	switch k {
	case WarningPageUnavailable:
		return "page unavailable"
	case WarningBackendFailed:
		return "backend failed"
	default:
		return "unknown"
	}
}

// Warning describes a problem that reduced the content of one page without
// stopping the document
type Warning struct {
	Kind    WarningKind
	Page    int    // 1-indexed page number
	Backend string // set for WarningBackendFailed
	Err     error
}

// String formats the warning for display
func (w Warning) String() string {
	if w.Backend != "" {
		return fmt.Sprintf("page %d: %s (%s): %v", w.Page, w.Kind, w.Backend, w.Err)
	}
	return fmt.Sprintf("page %d: %s: %v", w.Page, w.Kind, w.Err)
}

// FormatWarnings joins warnings into a single line-per-warning string
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
