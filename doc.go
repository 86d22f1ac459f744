// Package bplustree implements a generic, in-memory B+ tree: an ordered
// map keyed by a totally ordered projection of a caller-supplied key type,
// with values stored only at the leaves and leaves linked together for fast
// ordered range iteration.
//
// A B+ tree generalizes a binary search tree with high fanout: internal
// nodes hold only separator keys and child pointers, while every value
// lives in a leaf. Leaves form a singly linked list in ascending key order,
// so a range scan never has to revisit internal nodes once it reaches the
// first leaf.
//
// This implementation provides:
//   - Two type parameters, a caller key type K and a cmp.Ordered projection
//     O, connected by a keyFunc(K) O supplied at construction (identity by
//     default via NewOrdered).
//   - Insert (with optional update-in-place), Search, Delete, Contains,
//     Clear, Len.
//   - Lazy, forward, single-pass range iteration over [start, stop).
//
// Example usage:
//
//	tree, err := bplustree.NewOrdered[int, string](4)
//	if err != nil {
//	    panic(err)
//	}
//
//	tree.Insert(10, "ten", false)
//	tree.Insert(5, "five", false)
//	tree.Insert(20, "twenty", false)
//
//	if value, err := tree.Search(10); err == nil {
//	    fmt.Printf("found: %s\n", value)
//	}
//
//	it, err := tree.Items(nil, nil)
//	if err != nil {
//	    panic(err)
//	}
//	for it.Next() {
//	    k, v := it.Key(), it.Value()
//	    fmt.Printf("%v -> %v\n", k, v)
//	}
//
// The tree is particularly useful for:
//   - Ordered in-memory indexes over a key-value map
//   - Range queries over sorted keys
//   - Building blocks for a higher-level storage or query engine
//
// Performance characteristics:
//   - Insert: O(log_order n)
//   - Search: O(log_order n)
//   - Delete: O(log_order n)
//   - Range scan of k elements starting at a bound: O(log_order n + k)
//   - Space: O(n)
//
// The order parameter controls fanout:
//   - Low order (3-8): taller trees with small nodes, useful for testing
//     rebalancing logic exhaustively
//   - High order (100+): very short trees, fewer node traversals per lookup
//
// Single-threaded only: the tree does not lock internally, and it is
// undefined behavior to mutate a tree while a range iterator produced by it
// is still live. See SPEC_FULL.md section 5 for the rationale.
package bplustree
