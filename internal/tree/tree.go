package tree

import (
	"fmt"
	"sort"
)

// Item is implemented by models that live in a self-referential hierarchy
// (Department, Menu, MaterialCategory). A nil parent means a root node.
type Item interface {
	NodeID() uint
	NodeParentID() *uint
	NodeSortOrder() int
	NodeCode() string
}

// CycleError is returned when a reparent would make a node its own ancestor.
type CycleError struct {
	NodeID uint
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("reparenting node %d would create a cycle", e.NodeID)
}

// Sort orders items by (sort_order, code) ascending. The ordering is stable,
// so identical inputs always produce identical tree output.
func Sort[T Item](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].NodeSortOrder() != items[j].NodeSortOrder() {
			return items[i].NodeSortOrder() < items[j].NodeSortOrder()
		}
		return items[i].NodeCode() < items[j].NodeCode()
	})
}

// Roots returns the items with no parent, in (sort_order, code) order.
func Roots[T Item](items []T) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	Sort(sorted)

	var roots []T
	for _, item := range sorted {
		if item.NodeParentID() == nil {
			roots = append(roots, item)
		}
	}
	return roots
}

// ChildrenOf returns the direct children of parentID in (sort_order, code)
// order. A nil parentID selects the root nodes.
func ChildrenOf[T Item](items []T, parentID *uint) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	Sort(sorted)

	var children []T
	for _, item := range sorted {
		p := item.NodeParentID()
		if parentID == nil {
			if p == nil {
				children = append(children, item)
			}
		} else if p != nil && *p == *parentID {
			children = append(children, item)
		}
	}
	return children
}

// Descendants returns rootID and everything below it in depth-first
// pre-order, siblings ordered by (sort_order, code).
func Descendants[T Item](items []T, rootID uint) []T {
	byID := make(map[uint]T, len(items))
	childIDs := make(map[uint][]uint)

	sorted := make([]T, len(items))
	copy(sorted, items)
	Sort(sorted)

	for _, item := range sorted {
		byID[item.NodeID()] = item
		if p := item.NodeParentID(); p != nil {
			childIDs[*p] = append(childIDs[*p], item.NodeID())
		}
	}

	root, ok := byID[rootID]
	if !ok {
		return nil
	}

	var out []T
	var walk func(T)
	walk = func(node T) {
		out = append(out, node)
		for _, id := range childIDs[node.NodeID()] {
			walk(byID[id])
		}
	}
	walk(root)
	return out
}

// WouldCycle reports whether moving nodeID under newParentID would make the
// node an ancestor of itself. A nil newParentID (move to root) never cycles.
func WouldCycle[T Item](items []T, nodeID uint, newParentID *uint) bool {
	if newParentID == nil {
		return false
	}
	if *newParentID == nodeID {
		return true
	}

	parentOf := make(map[uint]*uint, len(items))
	for _, item := range items {
		parentOf[item.NodeID()] = item.NodeParentID()
	}

	// Walk up from the proposed parent; hitting nodeID means the new parent
	// is a descendant of the node being moved. The step bound guards against
	// corrupt data that already contains a loop.
	cur := newParentID
	for steps := 0; cur != nil && steps <= len(items); steps++ {
		if *cur == nodeID {
			return true
		}
		cur = parentOf[*cur]
	}
	return false
}

// Build arranges items into a forest. convert produces the output node for
// an item and attach appends a built child node to its parent's node.
//
// A node whose parent is absent from items (filtered out upstream) is
// dropped entirely rather than promoted to root: showing it without its
// parent would leak hierarchy the caller chose to hide.
func Build[T Item, N any](items []T, convert func(T) N, attach func(parent, child N)) []N {
	sorted := make([]T, len(items))
	copy(sorted, items)
	Sort(sorted)

	nodes := make(map[uint]N, len(sorted))
	for _, item := range sorted {
		nodes[item.NodeID()] = convert(item)
	}

	var roots []N
	for _, item := range sorted {
		node := nodes[item.NodeID()]
		p := item.NodeParentID()
		if p == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*p]; ok {
			attach(parent, node)
		}
	}
	return roots
}
