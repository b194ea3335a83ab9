package markdown

// BlockKind classifies one structural unit of a document.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindList
	KindCodeBlock
	KindBlockQuote
	KindDivider
	KindBlank
)

// ListKind distinguishes bullet lists from numbered ones.
type ListKind int

const (
	ListUnordered ListKind = iota
	ListOrdered
)

// Block is one document block. Which fields are meaningful depends on Kind:
// Level for headings, Spans for headings/paragraphs/blockquotes, ListKind and
// Items for lists, Lines for code blocks. Blocks never contain other blocks.
type Block struct {
	Kind     BlockKind
	Level    int
	Spans    []Span
	ListKind ListKind
	Items    [][]Span
	Lines    []string
}

// Document is the flat, source-ordered block sequence for one text.
type Document []Block
