package fptree

import "github.com/dgraph-io/ristretto"

// patternCache is a small read-through cache in front of the pattern
// store's count(L) lookups performed while deriving rules (spec.md §4.6
// step 4). Lookups are skewed towards a handful of short antecedents reused
// across many emitted rules for the same MLFP, which is what makes caching
// them worthwhile; the pattern store itself remains the single source of
// truth and is always consulted on a cache miss. A nil patternCache, or one
// with no backing cache (when the configured cache cost is 0), behaves as an
// always-miss cache.
type patternCache struct {
	cache *ristretto.Cache
}

func newPatternCache(maxCost int64) *patternCache {
	if maxCost <= 0 {
		return &patternCache{}
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		// A misconfigured cache is not fatal to mining correctness, only to
		// its speed: fall back to always-miss.
		return &patternCache{}
	}
	return &patternCache{cache: c}
}

func (pc *patternCache) get(key string) (int, bool) {
	if pc == nil || pc.cache == nil {
		return 0, false
	}
	v, ok := pc.cache.Get(key)
	if !ok {
		return 0, false
	}
	count, ok := v.(int)
	return count, ok
}

func (pc *patternCache) set(key string, count int) {
	if pc == nil || pc.cache == nil {
		return
	}
	pc.cache.Set(key, count, 1)
}

// clear drops every cached entry. Called by Tree.Reset since support/
// confidence thresholds may change before the next mining run, making
// cached counts from the old pattern store stale.
func (pc *patternCache) clear() {
	if pc == nil || pc.cache == nil {
		return
	}
	pc.cache.Clear()
}
