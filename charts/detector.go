package charts

import (
	"sort"
	"strings"

	"github.com/tidwall/rtree"

	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// Detector finds chart regions among a page's vector drawings
type Detector struct {
	config   config.Config
	keywords []string
}

// NewDetector creates a chart detector
func NewDetector(cfg config.Config) *Detector {
	keywords := make([]string, 0, len(cfg.HeaderKeywords))
	for _, k := range cfg.HeaderKeywords {
		if k = strings.ToUpper(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return &Detector{config: cfg.Clone(), keywords: keywords}
}

// Candidate reports whether a drawing rectangle passes the size and
// position filter for a page of the given height
func (d *Detector) Candidate(rect model.BBox, pageHeight float64) bool {
	if rect.Width() < d.config.MinChartWidth || rect.Height() < d.config.MinChartHeight {
		return false
	}
	return rect.Y0 >= pageHeight*d.config.TopHeaderSkipRatio
}

// IsHeaderText reports whether text contains a page-furniture keyword
func (d *Detector) IsHeaderText(text string) bool {
	upper := strings.ToUpper(text)
	for _, k := range d.keywords {
		if strings.Contains(upper, k) {
			return true
		}
	}
	return false
}

// Detect returns one chart per drawing that passes the filter and has at
// least one associated non-header text block. Charts are returned in
// drawing order.
func (d *Detector) Detect(drawings []model.Drawing, pageHeight float64, blocks []layout.Block) []*model.Chart {
	if len(drawings) == 0 || len(blocks) == 0 {
		return nil
	}

	var index rtree.RTreeG[int]
	for i, b := range blocks {
		index.Insert(
			[2]float64{b.BBox.X0, b.BBox.Y0},
			[2]float64{b.BBox.X1, b.BBox.Y1},
			i,
		)
	}

	var charts []*model.Chart
	for _, drawing := range drawings {
		rect := drawing.Rect
		if !d.Candidate(rect, pageHeight) {
			continue
		}

		texts := d.associate(&index, blocks, rect)
		if len(texts) == 0 {
			continue
		}

		chart := &model.Chart{
			Description: "Vector chart",
			BBox:        rect,
			Legend:      []string{},
			Text:        texts,
		}

		var points []model.DataPoint
		for _, txt := range texts {
			points = append(points, ExtractPairs(txt)...)
		}
		if len(points) > 0 {
			chart.Data = &model.ChartData{
				Header: [2]string{"label", "value"},
				Points: points,
			}
		}

		charts = append(charts, chart)
	}

	return charts
}

// associate returns the text of blocks overlapping rect or its expanded
// margin, in block order, excluding page-furniture text
func (d *Detector) associate(index *rtree.RTreeG[int], blocks []layout.Block, rect model.BBox) []string {
	expanded := rect.Expand(d.config.ChartTextMargin)

	var hits []int
	index.Search(
		[2]float64{expanded.X0, expanded.Y0},
		[2]float64{expanded.X1, expanded.Y1},
		func(_, _ [2]float64, i int) bool {
			hits = append(hits, i)
			return true
		},
	)
	sort.Ints(hits)

	var texts []string
	for _, i := range hits {
		b := blocks[i]
		if !b.BBox.Intersects(rect) && !b.BBox.Intersects(expanded) {
			continue
		}
		if d.IsHeaderText(b.Text) {
			continue
		}
		texts = append(texts, b.Text)
	}
	return texts
}
