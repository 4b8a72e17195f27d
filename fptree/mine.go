package fptree

// conditionalBase is one conditional pattern base discovered while walking
// a header chain: a candidate item sequence (the mined item followed by
// its ancestor path) together with the transaction count it represents.
type conditionalBase[T comparable] struct {
	items []T
	count int
}

// resetAllReadCounts walks every header chain, zeroing every node's read
// count. spec.md §4.5/§9 requires this at the start of every mining run:
// the original algorithm this package generalizes omits it, which silently
// under-counts the second and subsequent mining pass over the same tree.
func (t *Tree[T]) resetAllReadCounts() {
	for _, item := range t.header.byRank {
		resetReadChain(t.header.entries[item].head)
	}
}

// getPatterns walks item's header chain and returns one conditional base
// per chain node: [item, ancestor...] together with that node's adjusted
// count at the time of its prefix walk.
func (t *Tree[T]) getPatterns(item T) ([]conditionalBase[T], error) {
	entry := t.header.entries[item]
	var bases []conditionalBase[T]
	for n := entry.head; n != nil; n = n.next {
		prefix, count, err := n.prefixPath()
		if err != nil {
			return nil, t.fail(err, "get patterns")
		}
		candidate := make([]T, 0, len(prefix)+1)
		candidate = append(candidate, item)
		candidate = append(candidate, prefix...)
		bases = append(bases, conditionalBase[T]{items: candidate, count: count})
	}
	return bases, nil
}

// storeCombinations enumerates every subset of orderedItems of length 2 or
// more that begins with its first element (the suffix identifying the
// conditional pattern base), and adds count to that subset's aggregate
// count in the pattern store, creating the entry if necessary. The bare
// single-item subset is excluded: fpGrowth seeds that one directly from the
// header entry's aggregate count, per spec.md §4.5 step 3, before this
// function is ever called for the item.
func (t *Tree[T]) storeCombinations(count int, orderedItems []T) {
	if len(orderedItems) == 0 || count == 0 {
		return
	}
	suffix := orderedItems[0]
	for _, subset := range Combinations(orderedItems) {
		if subset[0] != suffix || len(subset) < 2 {
			continue
		}
		key, ranked := t.canonicalKey(subset)
		if e, ok := t.patterns[key]; ok {
			e.count += count
		} else {
			t.patterns[key] = &patternEntry[T]{count: count, items: ranked}
		}
		if len(ranked) > t.maxPatternLength {
			t.maxPatternLength = len(ranked)
		}
	}
}

// seedSingleItemPattern writes item's frequent single-item pattern straight
// from its header aggregate, ahead of the adjusted-count-consuming chain
// walk getPatterns performs for longer combinations. The header aggregate
// is item's true support regardless of how much of any one node's count the
// walk later attributes to ancestor combinations, so it must be captured
// before that walk runs, not derived from it.
func (t *Tree[T]) seedSingleItemPattern(item T, count int) {
	key, ranked := t.canonicalKey([]T{item})
	t.patterns[key] = &patternEntry[T]{count: count, items: ranked}
	if len(ranked) > t.maxPatternLength {
		t.maxPatternLength = len(ranked)
	}
}

// fpGrowth is the mining driver: it resets read-count bookkeeping, seeds
// the pattern store with every frequent single item, then walks header
// chains in descending-rank (least frequent first) order extracting and
// aggregating conditional pattern bases. It returns ErrNoPatterns if
// nothing meets the configured minimum support.
func (t *Tree[T]) fpGrowth() error {
	t.Reset()
	t.resetAllReadCounts()

	minCount := t.supportCount()
	t.log.Debug("fp-growth started", "minCount", minCount, "total", t.totalTx)

	for _, item := range t.header.byRank {
		if t.header.entries[item].count == 0 {
			return t.failf(ErrIncompleteData, "fp-growth: item %v declared but never inserted", item)
		}
	}

	// Items whose header aggregate meets minCount are processed least
	// frequent first. Each one's single-item pattern is seeded directly
	// from its header aggregate, then its conditional pattern bases are
	// walked to accumulate the longer combinations that include it.
	for _, item := range t.header.itemsDescendingRank() {
		entry := t.header.entries[item]
		if entry.count < minCount {
			continue
		}
		t.seedSingleItemPattern(item, entry.count)

		bases, err := t.getPatterns(item)
		if err != nil {
			return err
		}
		for _, base := range bases {
			t.storeCombinations(base.count, base.items)
		}
	}

	if len(t.patterns) == 0 {
		return t.fail(ErrNoPatterns, "fp-growth")
	}

	// Patterns below minCount can have been created transiently above only
	// via storeCombinations, which always receives counts already filtered
	// to individual chain-node adjusted counts; a subset's aggregate can
	// still end up below minCount once combined. Drop those now so the
	// store only ever holds patterns that are actually frequent.
	for key, entry := range t.patterns {
		if entry.count < minCount {
			delete(t.patterns, key)
		}
	}
	if len(t.patterns) == 0 {
		return t.fail(ErrNoPatterns, "fp-growth")
	}

	t.recomputeMaxPatternLength()
	t.log.Debug("fp-growth finished", "patterns", len(t.patterns), "maxLength", t.maxPatternLength)
	return nil
}

func (t *Tree[T]) recomputeMaxPatternLength() {
	longest := 0
	for _, entry := range t.patterns {
		if len(entry.items) > longest {
			longest = len(entry.items)
		}
	}
	t.maxPatternLength = longest
}
