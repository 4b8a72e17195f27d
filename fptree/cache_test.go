package fptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternCache_DisabledIsAlwaysMiss(t *testing.T) {
	pc := newPatternCache(0)
	pc.set("k", 5)
	_, ok := pc.get("k")
	assert.False(t, ok)
}

func TestPatternCache_NilIsAlwaysMiss(t *testing.T) {
	var pc *patternCache
	assert.NotPanics(t, func() { pc.set("k", 5) })
	_, ok := pc.get("k")
	assert.False(t, ok)
}

func TestPatternCache_SetThenGet(t *testing.T) {
	pc := newPatternCache(1 << 10)
	pc.set("k", 7)
	pc.cache.Wait()

	v, ok := pc.get("k")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestPatternCache_Clear(t *testing.T) {
	pc := newPatternCache(1 << 10)
	pc.set("k", 7)
	pc.cache.Wait()
	pc.clear()

	_, ok := pc.get("k")
	assert.False(t, ok)
}
