package fptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinations_Empty(t *testing.T) {
	out := Combinations[string](nil)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestCombinations_Singleton(t *testing.T) {
	out := Combinations([]string{"a"})
	assert.Equal(t, [][]string{{"a"}}, out)
}

func TestCombinations_Count(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	out := Combinations(items)
	assert.Len(t, out, (1<<len(items))-1)

	seen := make(map[string]bool)
	for _, subset := range out {
		assert.NotEmpty(t, subset)
		key := ""
		for _, it := range subset {
			key += it
		}
		assert.False(t, seen[key], "duplicate subset %v", subset)
		seen[key] = true
	}
}

func TestCombinations_PreservesOrder(t *testing.T) {
	items := []string{"a", "b", "c"}
	out := Combinations(items)
	for _, subset := range out {
		for i := 1; i < len(subset); i++ {
			prevIdx, curIdx := -1, -1
			for j, it := range items {
				if it == subset[i-1] {
					prevIdx = j
				}
				if it == subset[i] {
					curIdx = j
				}
			}
			assert.Less(t, prevIdx, curIdx)
		}
	}
}

func TestCombinations_FirstElementFiltering(t *testing.T) {
	items := []string{"x", "y", "z"}
	out := Combinations(items)

	var startingWithX [][]string
	for _, subset := range out {
		if subset[0] == "x" {
			startingWithX = append(startingWithX, subset)
		}
	}
	// Every subset that includes x and no item before it in items must have
	// x first: exactly the subsets of {y, z} with x prepended, plus {x}.
	assert.Len(t, startingWithX, 1<<(len(items)-1))
}
