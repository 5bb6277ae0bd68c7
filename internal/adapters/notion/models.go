package notion

// RichText is one segment of a Notion rich-text array. Only the rendered
// plain text matters to this pipeline.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// TitleProperty is the title-typed page property.
type TitleProperty struct {
	Type  string     `json:"type"`
	Title []RichText `json:"title"`
}

// Page is the subset of a page object the reader needs.
type Page struct {
	ID         string                   `json:"id"`
	Properties map[string]TitleProperty `json:"properties"`
}

// Title returns the first title segment, or empty string when the page has
// no title property or it is empty.
func (p Page) Title() string {
	prop, ok := p.Properties["title"]
	if !ok || len(prop.Title) == 0 {
		return ""
	}
	return prop.Title[0].PlainText
}

// blockText is the payload shape shared by every text-bearing block type.
type blockText struct {
	RichText []RichText `json:"rich_text"`
}

// Block is one node of the page's block tree. Exactly one of the typed
// payload fields is populated, keyed by Type.
type Block struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children"`

	Paragraph        *blockText `json:"paragraph,omitempty"`
	Heading1         *blockText `json:"heading_1,omitempty"`
	Heading2         *blockText `json:"heading_2,omitempty"`
	Heading3         *blockText `json:"heading_3,omitempty"`
	BulletedListItem *blockText `json:"bulleted_list_item,omitempty"`
	NumberedListItem *blockText `json:"numbered_list_item,omitempty"`
	ToDo             *blockText `json:"to_do,omitempty"`
	Toggle           *blockText `json:"toggle,omitempty"`
	Code             *blockText `json:"code,omitempty"`
}

// payload returns the typed payload matching Type, or nil for block types
// this pipeline does not read.
func (b Block) payload() *blockText {
	switch b.Type {
	case "paragraph":
		return b.Paragraph
	case "heading_1":
		return b.Heading1
	case "heading_2":
		return b.Heading2
	case "heading_3":
		return b.Heading3
	case "bulleted_list_item":
		return b.BulletedListItem
	case "numbered_list_item":
		return b.NumberedListItem
	case "to_do":
		return b.ToDo
	case "toggle":
		return b.Toggle
	case "code":
		return b.Code
	}
	return nil
}

// Text returns the block's rich-text segments joined with no separator and
// reports whether the block type is readable at all.
func (b Block) Text() (string, bool) {
	p := b.payload()
	if p == nil {
		return "", false
	}
	var out string
	for _, t := range p.RichText {
		out += t.PlainText
	}
	return out, true
}

// ChildrenPage is one page of a block-children listing.
type ChildrenPage struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}
