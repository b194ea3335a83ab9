package textdiff

import "sync"

const cacheLimit = 16

// Inputs are joined with a NUL, which cannot appear inside a line of either
// text in practice and keeps the key exact.
const keySep = "\x00"

var diffCache = struct {
	mu      sync.Mutex
	entries map[string]Result
	order   []string
}{entries: make(map[string]Result)}

// DiffCached is Diff behind a small shared cache keyed by the exact input
// pair. Safe for concurrent use; cached Results must not be mutated.
func DiffCached(original, tailored string) Result {
	key := original + keySep + tailored

	diffCache.mu.Lock()
	if res, ok := diffCache.entries[key]; ok {
		diffCache.mu.Unlock()
		return res
	}
	diffCache.mu.Unlock()

	res := Diff(original, tailored)

	diffCache.mu.Lock()
	defer diffCache.mu.Unlock()
	if _, ok := diffCache.entries[key]; !ok {
		diffCache.entries[key] = res
		diffCache.order = append(diffCache.order, key)
		if len(diffCache.order) > cacheLimit {
			delete(diffCache.entries, diffCache.order[0])
			diffCache.order = diffCache.order[1:]
		}
	}
	return res
}
