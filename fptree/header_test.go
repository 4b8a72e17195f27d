package fptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeader_RejectsEmpty(t *testing.T) {
	_, err := newHeader[string](nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestNewHeader_RejectsDuplicate(t *testing.T) {
	_, err := newHeader([]string{"a", "b", "a"})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestHeader_RankOf(t *testing.T) {
	h, err := newHeader([]string{"a", "b", "c"})
	require.NoError(t, err)

	r, ok := h.rankOf("a")
	require.True(t, ok)
	assert.Equal(t, 1, r)

	r, ok = h.rankOf("c")
	require.True(t, ok)
	assert.Equal(t, 3, r)

	_, ok = h.rankOf("z")
	assert.False(t, ok)
}

func TestHeader_ItemsDescendingRank(t *testing.T) {
	h, err := newHeader([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, h.itemsDescendingRank())
}

func TestHeaderEntry_AppendChain(t *testing.T) {
	h, err := newHeader([]string{"a"})
	require.NoError(t, err)
	entry, ok := h.lookup("a")
	require.True(t, ok)

	n1 := newChildNode[string]("a", nil)
	n2 := newChildNode[string]("a", nil)
	entry.appendChain(n1)
	entry.appendChain(n2)

	assert.Same(t, n1, entry.head)
	assert.Same(t, n2, entry.tail)
	assert.Same(t, n2, n1.next)
	// appendChain leaves the aggregate count to its caller (Insert).
	assert.Equal(t, 0, entry.count)
}
