package hostkv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestBTreeMapBasics(t *testing.T) {
	m := NewBTreeMap[int, string](intCmp)

	_, existed := m.Insert(1, "a")
	assert.False(t, existed)
	old, existed := m.Insert(1, "b")
	assert.True(t, existed)
	assert.Equal(t, "a", old)

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = m.Get(2)
	assert.False(t, ok)

	m.Insert(5, "e")
	m.Insert(3, "c")
	assert.Equal(t, 3, m.Len())

	first, ok := m.FirstKeyValue()
	require.True(t, ok)
	assert.Equal(t, 1, first.Key)

	last, ok := m.LastKeyValue()
	require.True(t, ok)
	assert.Equal(t, 5, last.Key)
}

func TestBTreeMapRangeInclusiveBothEnds(t *testing.T) {
	m := NewBTreeMap[int, string](intCmp)
	for i := 0; i < 10; i++ {
		m.Insert(i, string(rune('a'+i)))
	}

	got := m.Range(3, 6)
	var keys []int
	for _, e := range got {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []int{3, 4, 5, 6}, keys)

	// Range including the true maximum must include it (regression for an
	// exclusive-upper-bound-off-by-one).
	got = m.Range(8, 9)
	assert.Len(t, got, 2)
	assert.Equal(t, 9, got[len(got)-1].Key)
}

func TestBTreeMapRemove(t *testing.T) {
	m := NewBTreeMap[int, string](intCmp)
	m.Insert(1, "a")
	old, existed := m.Remove(1)
	assert.True(t, existed)
	assert.Equal(t, "a", old)

	_, existed = m.Remove(1)
	assert.False(t, existed)
	assert.Equal(t, 0, m.Len())
}

func TestBTreeMapIterAscending(t *testing.T) {
	m := NewBTreeMap[int, string](intCmp)
	m.Insert(3, "c")
	m.Insert(1, "a")
	m.Insert(2, "b")

	got := m.Iter()
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Key < got[i].Key)
	}
}
