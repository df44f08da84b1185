package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestExpandWithAncestors(t *testing.T) {
	// 1 <- 2 <- 3, 4 standalone
	parents := map[int64]*int64{
		1: nil,
		2: ptr(1),
		3: ptr(2),
		4: nil,
	}

	t.Run("leaf pulls full chain", func(t *testing.T) {
		assert.Equal(t, []int64{3, 2, 1}, ExpandWithAncestors([]int64{3}, parents))
	})

	t.Run("root stays alone", func(t *testing.T) {
		assert.Equal(t, []int64{1}, ExpandWithAncestors([]int64{1}, parents))
	})

	t.Run("overlapping chains deduplicate", func(t *testing.T) {
		got := ExpandWithAncestors([]int64{3, 2, 4}, parents)
		assert.ElementsMatch(t, []int64{1, 2, 3, 4}, got)
		assert.Len(t, got, 4)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ExpandWithAncestors(nil, parents))
	})
}

func TestExpandWithAncestorsCycle(t *testing.T) {
	// 1 <-> 2 corrupted into a cycle must still terminate
	parents := map[int64]*int64{
		1: ptr(2),
		2: ptr(1),
	}
	got := ExpandWithAncestors([]int64{1}, parents)
	assert.ElementsMatch(t, []int64{1, 2}, got)

	// self-parent
	parents = map[int64]*int64{5: ptr(5)}
	assert.Equal(t, []int64{5}, ExpandWithAncestors([]int64{5}, parents))
}
