package model

// Document is the ordered sequence of composed pages
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page to the document
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Tables returns all tables from all pages
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, page := range d.Pages {
		tables = append(tables, page.Tables()...)
	}
	return tables
}

// Sections returns the distinct section names in first-seen order
func (d *Document) Sections() []string {
	seen := make(map[string]bool)
	var sections []string
	for _, page := range d.Pages {
		for _, p := range page.Paragraphs() {
			if p.Section == "" || seen[p.Section] {
				continue
			}
			seen[p.Section] = true
			sections = append(sections, p.Section)
		}
	}
	return sections
}
