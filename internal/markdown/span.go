package markdown

// SpanKind classifies one inline run of a line.
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
	SpanCode
)

// Span is an inline, non-nesting unit of formatted text. Concatenating the
// Content of every span in a line reproduces the raw line minus delimiters.
type Span struct {
	Kind    SpanKind
	Content string
}

func textSpan(s string) Span { return Span{Kind: SpanText, Content: s} }
