package model

// Page is the composed content of a single page. Content is in composed
// order: tables, then charts, then surviving paragraphs.
type Page struct {
	Number  int // 1-indexed page number
	Content []Item
}

// NewPage creates an empty page with the given number
func NewPage(number int) *Page {
	return &Page{
		Number:  number,
		Content: make([]Item, 0),
	}
}

// AddItem appends an item to the page
func (p *Page) AddItem(item Item) {
	p.Content = append(p.Content, item)
}

// Paragraphs returns the paragraph items on the page
func (p *Page) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, item := range p.Content {
		if para, ok := item.(*Paragraph); ok {
			out = append(out, para)
		}
	}
	return out
}

// Tables returns the table items on the page
func (p *Page) Tables() []*Table {
	var out []*Table
	for _, item := range p.Content {
		if table, ok := item.(*Table); ok {
			out = append(out, table)
		}
	}
	return out
}

// Charts returns the chart items on the page
func (p *Page) Charts() []*Chart {
	var out []*Chart
	for _, item := range p.Content {
		if chart, ok := item.(*Chart); ok {
			out = append(out, chart)
		}
	}
	return out
}
