package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	id        uint
	parentID  *uint
	sortOrder int
	code      string
}

func (n testNode) NodeID() uint        { return n.id }
func (n testNode) NodeParentID() *uint { return n.parentID }
func (n testNode) NodeSortOrder() int  { return n.sortOrder }
func (n testNode) NodeCode() string    { return n.code }

func ptr(v uint) *uint { return &v }

type builtNode struct {
	id       uint
	children []*builtNode
}

func build(items []testNode) []*builtNode {
	return Build(items,
		func(n testNode) *builtNode { return &builtNode{id: n.id} },
		func(parent, child *builtNode) { parent.children = append(parent.children, child) },
	)
}

func TestSortOrdersBySortOrderThenCode(t *testing.T) {
	items := []testNode{
		{id: 1, sortOrder: 2, code: "B"},
		{id: 2, sortOrder: 1, code: "Z"},
		{id: 3, sortOrder: 2, code: "A"},
		{id: 4, sortOrder: 1, code: "A"},
	}

	Sort(items)

	got := make([]uint, len(items))
	for i, item := range items {
		got[i] = item.id
	}
	assert.Equal(t, []uint{4, 2, 3, 1}, got)
}

func TestBuildForestWithMultipleRoots(t *testing.T) {
	items := []testNode{
		{id: 1, sortOrder: 2, code: "R2"},
		{id: 2, sortOrder: 1, code: "R1"},
		{id: 3, parentID: ptr(2), sortOrder: 2, code: "C2"},
		{id: 4, parentID: ptr(2), sortOrder: 1, code: "C1"},
		{id: 5, parentID: ptr(4), sortOrder: 1, code: "G1"},
	}

	roots := build(items)

	require.Len(t, roots, 2)
	assert.Equal(t, uint(2), roots[0].id)
	assert.Equal(t, uint(1), roots[1].id)

	require.Len(t, roots[0].children, 2)
	assert.Equal(t, uint(4), roots[0].children[0].id)
	assert.Equal(t, uint(3), roots[0].children[1].id)

	require.Len(t, roots[0].children[0].children, 1)
	assert.Equal(t, uint(5), roots[0].children[0].children[0].id)
	assert.Empty(t, roots[1].children)
}

func TestBuildDropsNodesWithAbsentParent(t *testing.T) {
	// Parent 2 was filtered out upstream; its subtree must vanish with it
	// instead of surfacing at the root.
	items := []testNode{
		{id: 1, sortOrder: 1, code: "R"},
		{id: 3, parentID: ptr(2), sortOrder: 1, code: "orphan"},
		{id: 4, parentID: ptr(3), sortOrder: 1, code: "orphan-child"},
	}

	roots := build(items)

	require.Len(t, roots, 1)
	assert.Equal(t, uint(1), roots[0].id)
	assert.Empty(t, roots[0].children)
}

func TestBuildIsDeterministic(t *testing.T) {
	items := []testNode{
		{id: 1, sortOrder: 1, code: "A"},
		{id: 2, parentID: ptr(1), sortOrder: 1, code: "B"},
		{id: 3, parentID: ptr(1), sortOrder: 1, code: "C"},
	}
	shuffled := []testNode{items[2], items[0], items[1]}

	first := build(items)
	second := build(shuffled)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.Len(t, first[0].children, 2)
	require.Len(t, second[0].children, 2)
	assert.Equal(t, first[0].children[0].id, second[0].children[0].id)
	assert.Equal(t, first[0].children[1].id, second[0].children[1].id)
}

func TestDescendantsPreOrder(t *testing.T) {
	items := []testNode{
		{id: 1, sortOrder: 1, code: "R"},
		{id: 2, parentID: ptr(1), sortOrder: 2, code: "B"},
		{id: 3, parentID: ptr(1), sortOrder: 1, code: "A"},
		{id: 4, parentID: ptr(3), sortOrder: 1, code: "A1"},
		{id: 5, sortOrder: 1, code: "other-root"},
	}

	got := Descendants(items, 1)

	ids := make([]uint, len(got))
	for i, item := range got {
		ids[i] = item.id
	}
	assert.Equal(t, []uint{1, 3, 4, 2}, ids)
}

func TestDescendantsUnknownRoot(t *testing.T) {
	items := []testNode{{id: 1, sortOrder: 1, code: "R"}}
	assert.Nil(t, Descendants(items, 99))
}

func TestWouldCycle(t *testing.T) {
	// 1 -> 2 -> 3
	items := []testNode{
		{id: 1, sortOrder: 1, code: "A"},
		{id: 2, parentID: ptr(1), sortOrder: 1, code: "B"},
		{id: 3, parentID: ptr(2), sortOrder: 1, code: "C"},
		{id: 4, sortOrder: 1, code: "D"},
	}

	assert.True(t, WouldCycle(items, 1, ptr(1)), "self-parent")
	assert.True(t, WouldCycle(items, 1, ptr(3)), "moving under own grandchild")
	assert.True(t, WouldCycle(items, 2, ptr(3)), "moving under own child")
	assert.False(t, WouldCycle(items, 3, ptr(1)), "moving up the chain")
	assert.False(t, WouldCycle(items, 1, ptr(4)), "moving under a sibling tree")
	assert.False(t, WouldCycle(items, 1, nil), "moving to root")
}

func TestWouldCycleTerminatesOnCorruptData(t *testing.T) {
	// 2 and 3 already point at each other; the walk must still terminate
	items := []testNode{
		{id: 2, parentID: ptr(3), sortOrder: 1, code: "B"},
		{id: 3, parentID: ptr(2), sortOrder: 1, code: "C"},
	}

	assert.False(t, WouldCycle(items, 1, ptr(2)))
}
