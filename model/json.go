package model

import (
	"encoding/json"
	"fmt"
)

type paragraphJSON struct {
	Type       string  `json:"type"`
	Section    *string `json:"section"`
	SubSection *string `json:"sub_section"`
	Text       string  `json:"text"`
}

type tableJSON struct {
	Type        string     `json:"type"`
	Section     *string    `json:"section"`
	SubSection  *string    `json:"sub_section"`
	Description string     `json:"description"`
	TableData   [][]string `json:"table_data"`
}

type chartJSON struct {
	Type        string   `json:"type"`
	Section     *string  `json:"section"`
	SubSection  *string  `json:"sub_section"`
	Description string   `json:"description"`
	BBox        BBox     `json:"bbox"`
	Legend      []string `json:"legend"`
	ChartData   [][]any  `json:"chart_data"`
}

type pageJSON struct {
	PageNumber int               `json:"page_number"`
	Content    []json.RawMessage `json:"content"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MarshalItem encodes a single content item with its "type" tag
func MarshalItem(item Item) ([]byte, error) {
	switch v := item.(type) {
	case *Paragraph:
		return json.Marshal(paragraphJSON{
			Type:       v.Type().String(),
			Section:    nullable(v.Section),
			SubSection: nullable(v.SubSection),
			Text:       v.Text,
		})
	case *Table:
		data := v.Data
		if data == nil {
			data = [][]string{}
		}
		return json.Marshal(tableJSON{
			Type:        v.Type().String(),
			Description: v.Description,
			TableData:   data,
		})
	case *Chart:
		legend := v.Legend
		if legend == nil {
			legend = []string{}
		}
		var rows [][]any
		if v.Data != nil {
			rows = v.Data.Rows()
		}
		return json.Marshal(chartJSON{
			Type:        v.Type().String(),
			Description: v.Description,
			BBox:        v.BBox,
			Legend:      legend,
			ChartData:   rows,
		})
	default:
		return nil, fmt.Errorf("unsupported content item %T", item)
	}
}

// MarshalJSON encodes the page with its tagged content items
func (p *Page) MarshalJSON() ([]byte, error) {
	out := pageJSON{
		PageNumber: p.Number,
		Content:    make([]json.RawMessage, 0, len(p.Content)),
	}
	for _, item := range p.Content {
		data, err := MarshalItem(item)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", p.Number, err)
		}
		out.Content = append(out.Content, data)
	}
	return json.Marshal(out)
}

// MarshalJSON encodes the document as {"pages": [...]}
func (d *Document) MarshalJSON() ([]byte, error) {
	pages := d.Pages
	if pages == nil {
		pages = []*Page{}
	}
	return json.Marshal(struct {
		Pages []*Page `json:"pages"`
	}{pages})
}
