package markdown

import "sync"

// Parsing is cheap but the UI asks for the same document on every redraw, so
// the last few parses are kept around, keyed by the exact input string.
// Callers must treat cached Documents as immutable.
const cacheLimit = 16

var docCache = memo{entries: make(map[string]Document)}

type memo struct {
	mu      sync.Mutex
	entries map[string]Document
	order   []string
}

// ParseDocumentCached is ParseDocument behind a small shared cache. Safe for
// concurrent use.
func ParseDocumentCached(text string) Document {
	docCache.mu.Lock()
	if doc, ok := docCache.entries[text]; ok {
		docCache.mu.Unlock()
		return doc
	}
	docCache.mu.Unlock()

	doc := ParseDocument(text)

	docCache.mu.Lock()
	defer docCache.mu.Unlock()
	if _, ok := docCache.entries[text]; !ok {
		docCache.entries[text] = doc
		docCache.order = append(docCache.order, text)
		if len(docCache.order) > cacheLimit {
			delete(docCache.entries, docCache.order[0])
			docCache.order = docCache.order[1:]
		}
	}
	return doc
}
