package bplustree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodePredicates(t *testing.T) {
	const order = 5 // m = ceil(5/2)-1 = 2

	root := newLeaf[int, int, string]()
	require.True(t, root.empty())
	require.True(t, root.isRoot())
	require.True(t, root.isLeaf())
	require.True(t, root.valid(order), "root may have 0 keys")
	require.False(t, root.full(order))
	require.Equal(t, 0, root.height())

	child := newLeaf[int, int, string]()
	child.parent = root
	require.False(t, child.isRoot())
	require.Equal(t, 1, child.height())

	child.keys = []int{1, 2}
	require.True(t, child.valid(order), "m=2, 2 keys satisfies the minimum")
	require.False(t, child.borrowable(order), "borrowable requires strictly more than m")

	child.keys = []int{1, 2, 3}
	require.True(t, child.borrowable(order))

	full := newLeaf[int, int, string]()
	full.keys = []int{1, 2, 3, 4, 5}
	require.True(t, full.full(order))
}

func TestMinKeys(t *testing.T) {
	require.Equal(t, 1, minKeys(3))
	require.Equal(t, 2, minKeys(5))
	require.Equal(t, 1, minKeys(4))
	require.Equal(t, 49, minKeys(100))
}
