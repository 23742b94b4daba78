package crawler

// Frontier is the FIFO queue of candidate URLs for one domain's crawl.
// An auxiliary membership set keeps Contains O(1) so link discovery stays
// proportional to the link count. A Frontier is exclusively owned by one
// crawl task and needs no locking.
type Frontier struct {
	items  []string
	queued map[string]struct{}
}

// NewFrontier creates a frontier seeded with the given URLs
func NewFrontier(seeds ...string) *Frontier {
	f := &Frontier{
		queued: make(map[string]struct{}),
	}
	for _, s := range seeds {
		f.Push(s)
	}
	return f
}

// Push appends a URL unless it is already enqueued.
// Returns true if added, false if duplicate.
func (f *Frontier) Push(rawURL string) bool {
	if _, ok := f.queued[rawURL]; ok {
		return false
	}
	f.queued[rawURL] = struct{}{}
	f.items = append(f.items, rawURL)
	return true
}

// Pop removes and returns the oldest URL.
// Returns ("", false) when the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}
	next := f.items[0]
	f.items = f.items[1:]
	delete(f.queued, next)
	return next, true
}

// Contains reports whether a URL is currently enqueued
func (f *Frontier) Contains(rawURL string) bool {
	_, ok := f.queued[rawURL]
	return ok
}

// Len returns the number of enqueued URLs
func (f *Frontier) Len() int {
	return len(f.items)
}
