package ulist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvlath-labs/matroid/ulist"
)

func collect(start *ulist.Node[int]) []int {
	var out []int
	for n := range ulist.IterFrom(start) {
		out = append(out, n.Value)
	}
	return out
}

func TestPushBackAndOrder(t *testing.T) {
	l := ulist.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, collect(l.First()))
}

func TestInsertBefore(t *testing.T) {
	l := ulist.New[int]()
	n3 := l.PushBack(3)
	l.PushBack(4)
	l.InsertBefore(n3, 1)
	l.InsertBefore(n3, 2)
	assert.Equal(t, []int{1, 2, 3, 4}, collect(l.First()))
}

func TestInsertBefore_Duplicate_ReturnsExistingNode(t *testing.T) {
	l := ulist.New[int]()
	n1 := l.PushBack(1)
	l.PushBack(2)
	got := l.InsertBefore(nil, 1)
	assert.Same(t, n1, got)
	assert.Equal(t, 2, l.Len())
}

func TestRemove(t *testing.T) {
	l := ulist.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	l.Remove(2)
	assert.Equal(t, []int{1, 3}, collect(l.First()))
	assert.False(t, l.Contains(2))
	assert.Equal(t, 2, l.Len())

	l.Remove(1)
	assert.Equal(t, []int{3}, collect(l.First()))
	assert.Equal(t, l.First(), l.Last())
}

func TestRemoveLastUpdatesTail(t *testing.T) {
	l := ulist.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.Remove(2)
	assert.Equal(t, 1, l.Last().Value)
	n := l.InsertBefore(nil, 3)
	assert.Same(t, n, l.Last())
}

func TestIterFromMidpoint(t *testing.T) {
	l := ulist.New[int]()
	l.PushBack(1)
	n2 := l.PushBack(2)
	l.PushBack(3)
	assert.Equal(t, []int{2, 3}, collect(n2))
}
