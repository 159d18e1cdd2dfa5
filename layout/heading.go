package layout

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/model"
)

// Role is the classification of a block
type Role int

const (
	RoleBody Role = iota
	RoleHeading
)

// String returns a string representation of the role
func (r Role) String() string {
	if r == RoleHeading {
		return "heading"
	}
	return "body"
}

// Classification is the result of classifying one block. Section is the
// title-cased heading text and is only set for RoleHeading.
type Classification struct {
	Role    Role
	Section string
}

// Classifier assigns heading/body roles using page-level font statistics.
// The median and threshold are computed once at construction.
type Classifier struct {
	config     config.Config
	medianSize float64
	threshold  float64
}

// NewClassifier computes font statistics over blocks and returns a
// classifier for them
func NewClassifier(cfg config.Config, blocks []Block) *Classifier {
	sizes := make([]float64, 0, len(blocks))
	for _, b := range blocks {
		if b.FontSize > 0 {
			sizes = append(sizes, b.FontSize)
		}
	}

	medianSize := cfg.DefaultFontSize
	if len(sizes) > 0 {
		medianSize = median(sizes)
	}

	return &Classifier{
		config:     cfg,
		medianSize: medianSize,
		threshold:  math.Max(medianSize*cfg.HeadingRatio, medianSize+cfg.HeadingMinDelta),
	}
}

// MedianSize returns the median block font size used for classification
func (c *Classifier) MedianSize() float64 {
	return c.medianSize
}

// Threshold returns the font size at or above which a block is a heading
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// Classify returns the role of a single block
func (c *Classifier) Classify(b Block) Classification {
	txt := strings.TrimSpace(b.Text)
	if txt == "" {
		return Classification{Role: RoleBody}
	}

	if b.FontSize >= c.threshold ||
		(utf8.RuneCountInString(txt) <= c.config.UpperCaseHeadingMaxLen && isUpper(txt)) {
		return Classification{Role: RoleHeading, Section: titleCase(txt)}
	}
	return Classification{Role: RoleBody}
}

// Paragraphs classifies blocks in (top ascending, font size descending)
// order and tags each one with the section in effect at that point.
// Blocks with no text are skipped.
func (c *Classifier) Paragraphs(blocks []Block) []*model.Paragraph {
	ordered := append([]Block(nil), blocks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].BBox.Y0 != ordered[j].BBox.Y0 {
			return ordered[i].BBox.Y0 < ordered[j].BBox.Y0
		}
		return ordered[i].FontSize > ordered[j].FontSize
	})

	paragraphs := make([]*model.Paragraph, 0, len(ordered))
	section := ""
	for _, b := range ordered {
		txt := strings.TrimSpace(b.Text)
		if txt == "" {
			continue
		}

		cls := c.Classify(b)
		if cls.Role == RoleHeading {
			section = cls.Section
		}

		bbox := b.BBox
		paragraphs = append(paragraphs, &model.Paragraph{
			Section:  section,
			Text:     txt,
			BBox:     &bbox,
			FontSize: b.FontSize,
			Heading:  cls.Role == RoleHeading,
		})
	}

	return paragraphs
}

// ClassifyBlocks is a convenience wrapper that builds a Classifier for
// blocks and returns their paragraphs
func ClassifyBlocks(cfg config.Config, blocks []Block) []*model.Paragraph {
	return NewClassifier(cfg, blocks).Paragraphs(blocks)
}

// isUpper reports whether s has at least one cased letter and no
// lower-case or title-case letters
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
