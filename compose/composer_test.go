package compose

import (
	"testing"

	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/model"
)

func bbox(x0, y0, x1, y1 float64) *model.BBox {
	b := model.NewBBox(x0, y0, x1, y1)
	return &b
}

func TestCompose_Order(t *testing.T) {
	c := NewComposer(config.Default())

	tables := []*model.Table{{Description: "Table", Data: [][]string{{"A"}, {"1"}}}}
	charts := []*model.Chart{{Description: "Vector chart", BBox: model.NewBBox(0, 500, 100, 600)}}
	paras := []*model.Paragraph{
		{Text: "first", BBox: bbox(0, 0, 100, 10)},
		{Text: "second", BBox: bbox(0, 20, 100, 30)},
	}

	res := c.Compose(tables, charts, paras)
	if len(res.Items) != 4 {
		t.Fatalf("Expected 4 items, got %d", len(res.Items))
	}

	want := []model.ItemType{model.ItemTypeTable, model.ItemTypeChart, model.ItemTypeParagraph, model.ItemTypeParagraph}
	for i, typ := range want {
		if res.Items[i].Type() != typ {
			t.Errorf("item %d: expected %s, got %s", i, typ, res.Items[i].Type())
		}
	}
	if res.Items[2].(*model.Paragraph).Text != "first" {
		t.Error("paragraph order not preserved")
	}
}

func TestCompose_OverlapSuppression(t *testing.T) {
	c := NewComposer(config.Default())
	table := &model.Table{Data: [][]string{{"1"}}, BBox: bbox(0, 0, 90, 100)}

	tests := []struct {
		name     string
		para     *model.Paragraph
		wantKept bool
	}{
		{"90% covered", &model.Paragraph{Text: "inside", BBox: bbox(0, 0, 100, 10)}, false},
		{"30% covered", &model.Paragraph{Text: "edge", BBox: bbox(60, 0, 160, 10)}, true},
		{"60% covered", &model.Paragraph{Text: "boundary", BBox: bbox(30, 0, 130, 10)}, true},
		{"no bbox", &model.Paragraph{Text: "floating"}, true},
		{"disjoint", &model.Paragraph{Text: "below", BBox: bbox(0, 200, 100, 210)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Compose([]*model.Table{table}, nil, []*model.Paragraph{tt.para})
			kept := len(res.Items) == 2
			if kept != tt.wantKept {
				t.Errorf("kept = %v, want %v", kept, tt.wantKept)
			}
			if !kept && res.Suppressed != 1 {
				t.Errorf("expected suppressed count 1, got %d", res.Suppressed)
			}
		})
	}
}

func TestCompose_ChartSuppressesParagraph(t *testing.T) {
	c := NewComposer(config.Default())
	chart := &model.Chart{BBox: model.NewBBox(50, 200, 300, 400)}
	paras := []*model.Paragraph{
		{Text: "FY23 100", BBox: bbox(60, 300, 120, 310)},
		{Text: "caption", BBox: bbox(50, 420, 300, 430)},
	}

	res := c.Compose(nil, []*model.Chart{chart}, paras)
	if len(res.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(res.Items))
	}
	if res.Items[1].(*model.Paragraph).Text != "caption" {
		t.Error("expected only the caption to survive")
	}
}

func TestCompose_TableWithoutBBoxNeverSuppresses(t *testing.T) {
	c := NewComposer(config.Default())
	res := c.Compose(
		[]*model.Table{{Data: [][]string{{"1"}}}},
		nil,
		[]*model.Paragraph{{Text: "text", BBox: bbox(0, 0, 10, 10)}},
	)
	if len(res.Items) != 2 || res.Suppressed != 0 {
		t.Errorf("expected paragraph to be kept, got %d items", len(res.Items))
	}
}

func TestCompose_Empty(t *testing.T) {
	res := NewComposer(config.Default()).Compose(nil, nil, nil)
	if len(res.Items) != 0 {
		t.Errorf("Expected no items, got %d", len(res.Items))
	}
}
