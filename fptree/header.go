package fptree

// headerEntry is one row of the header index: an item's rank, its aggregate
// traversal count across every tree node bearing that label, and the head
// (and, for O(1) appends, tail) of its same-item sibling chain.
type headerEntry[T comparable] struct {
	item  T
	rank  int
	count int
	head  *node[T]
	tail  *node[T]
}

// header is the per-tree header index: one entry per distinct item label,
// plus the rank order used to sort transactions before insertion.
type header[T comparable] struct {
	entries  map[T]*headerEntry[T]
	byRank   []T // items in ascending rank order, i.e. most frequent first
	lowest   int // number of distinct items, i.e. the lowest (largest) rank
}

// newHeader builds a header index assigning rank i (1-based) to items[i-1].
// It fails if items is empty or contains a duplicate.
func newHeader[T comparable](items []T) (*header[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}

	h := &header[T]{
		entries: make(map[T]*headerEntry[T], len(items)),
		byRank:  make([]T, len(items)),
		lowest:  len(items),
	}
	for i, item := range items {
		if _, dup := h.entries[item]; dup {
			return nil, ErrInvalidConfiguration
		}
		h.entries[item] = &headerEntry[T]{item: item, rank: i + 1}
		h.byRank[i] = item
	}
	return h, nil
}

// lookup returns the header entry for item, if the item is ranked.
func (h *header[T]) lookup(item T) (*headerEntry[T], bool) {
	e, ok := h.entries[item]
	return e, ok
}

// rankOf returns item's rank, or false if item is unranked.
func (h *header[T]) rankOf(item T) (int, bool) {
	e, ok := h.entries[item]
	if !ok {
		return 0, false
	}
	return e.rank, true
}

// appendChain appends n to the end of its label's sibling chain in O(1),
// preserving creation order. Callers are responsible for updating the
// chain's aggregate count themselves.
func (e *headerEntry[T]) appendChain(n *node[T]) {
	if e.head == nil {
		e.head = n
		e.tail = n
	} else {
		e.tail.next = n
		e.tail = n
	}
}

// itemsDescendingRank returns the ranked items in descending rank order
// (least frequent first), the order fpGrowth must process them in.
func (h *header[T]) itemsDescendingRank() []T {
	out := make([]T, len(h.byRank))
	for i, item := range h.byRank {
		out[len(out)-1-i] = item
	}
	return out
}
