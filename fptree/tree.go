package fptree

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

const keyDelimiter = "\x1f"

// patternEntry is one row of the pattern store: how many transactions
// contain the pattern as a subset of their item set, and the pattern's
// items in canonical (ascending rank) order.
type patternEntry[T comparable] struct {
	count int
	items []T
}

// Tree is an FP-tree: a prefix-tree encoding of a transaction database,
// built against a fixed item-frequency ranking, from which association
// rules can be mined. The zero value is not usable; construct one with New.
type Tree[T comparable] struct {
	root   *node[T]
	header *header[T]

	support    float64
	confidence float64

	patterns         map[string]*patternEntry[T]
	maxPatternLength int
	totalTx          int

	cache   *patternCache
	lastErr error
	log     zerologLogger
}

// New builds an empty tree over the given item ranking: items[0] is the
// globally most frequent item, items[1] the next, and so on. It fails if
// items is empty or contains a duplicate label.
func New[T comparable](items []T, opts ...Option) (*Tree[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree[T]{
		root:       newRootNode[T](),
		support:    cfg.Support,
		confidence: cfg.Confidence,
		patterns:   make(map[string]*patternEntry[T]),
		log:        zerologLogger{cfg.Logger},
	}

	var cfgErr error
	if err := cfg.validate(); err != nil {
		cfgErr = fmt.Errorf("%w: %s", ErrInvalidConfiguration, err)
	}
	h, hdrErr := newHeader(items)

	if err := aggregateValidation(cfgErr, hdrErr); err != nil {
		return nil, t.fail(err, "construct tree")
	}
	t.header = h
	t.cache = newPatternCache(cfg.CacheCost)

	t.log.Debug("tree constructed", "items", len(items), "support", t.support, "confidence", t.confidence)
	return t, nil
}

// Support returns the current minimum support fraction.
func (t *Tree[T]) Support() float64 { return t.support }

// SetSupport sets the minimum support fraction, which must lie in (0,1].
func (t *Tree[T]) SetSupport(support float64) error {
	if support <= 0 || support > 1 {
		return t.fail(ErrInvalidConfiguration, "set support")
	}
	t.support = support
	return nil
}

// Confidence returns the current minimum confidence fraction. Confidence
// does not influence mining; it is reported on emitted rules only.
func (t *Tree[T]) Confidence() float64 { return t.confidence }

// SetConfidence sets the minimum confidence fraction, which must lie in
// (0,1].
func (t *Tree[T]) SetConfidence(confidence float64) error {
	if confidence <= 0 || confidence > 1 {
		return t.fail(ErrInvalidConfiguration, "set confidence")
	}
	t.confidence = confidence
	return nil
}

// LastError returns the human-readable message of the most recently
// returned error, or an empty string if no operation has failed yet.
func (t *Tree[T]) LastError() string {
	if t.lastErr == nil {
		return ""
	}
	return t.lastErr.Error()
}

// TotalTransactions returns the number of transactions inserted so far.
func (t *Tree[T]) TotalTransactions() int { return t.totalTx }

// Insert adds a transaction to the tree. Duplicate items within the
// transaction are discarded; the remainder is sorted by ascending rank
// (most frequent first) and walked from the root, creating or revisiting
// children as needed and updating header aggregate counts at every step.
// It fails if items is empty or contains a label absent from the ranking;
// on failure the tree is left exactly as it was before the call.
func (t *Tree[T]) Insert(items []T) error {
	if len(items) == 0 {
		return t.fail(ErrEmptyInput, "insert")
	}

	seen := make(map[T]struct{}, len(items))
	unique := make([]T, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		if _, ok := t.header.lookup(it); !ok {
			return t.failf(ErrUnknownItem, "insert: item %v not in ranking", it)
		}
		unique = append(unique, it)
	}
	if len(unique) == 0 {
		return t.fail(ErrEmptyInput, "insert")
	}

	sort.SliceStable(unique, func(i, j int) bool {
		ri, _ := t.header.rankOf(unique[i])
		rj, _ := t.header.rankOf(unique[j])
		return ri < rj
	})

	cur := t.root
	for _, item := range unique {
		entry, _ := t.header.lookup(item)
		if child, ok := cur.childPresent(item); ok {
			child.incrementTraversal()
			cur = child
		} else {
			child, err := cur.addChild(item)
			if err != nil {
				return t.fail(err, "insert")
			}
			entry.appendChain(child)
			cur = child
		}
		entry.count++
	}

	t.totalTx++
	t.log.Debug("transaction inserted", "size", len(unique), "total", t.totalTx)
	return nil
}

// Reset clears the mined pattern store only; tree structure, counts, and
// configured thresholds are preserved so mining can be re-run at a
// different support without re-inserting transactions.
func (t *Tree[T]) Reset() {
	t.patterns = make(map[string]*patternEntry[T])
	t.maxPatternLength = 0
	t.cache.clear()
	t.log.Debug("patterns reset")
}

// supportCount is the integer minimum transaction count a pattern must
// reach to be considered frequent: ceil(totalTx * support).
func (t *Tree[T]) supportCount() int {
	return int(math.Ceil(float64(t.totalTx) * t.support))
}

// canonicalKey renders the items' ranks as a delimiter-joined string after
// sorting a copy into ascending rank order, so that distinct items never
// share a key and any two candidate subsets
// representing the same underlying set always produce the same key and the
// same canonical item ordering, regardless of which header-chain traversal
// discovered them.
func (t *Tree[T]) canonicalKey(items []T) (string, []T) {
	ordered := make([]T, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, _ := t.header.rankOf(ordered[i])
		rj, _ := t.header.rankOf(ordered[j])
		return ri < rj
	})

	parts := make([]string, len(ordered))
	for i, it := range ordered {
		r, _ := t.header.rankOf(it)
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, keyDelimiter), ordered
}
