package main

import (
	"fmt"

	"bplustree"
)

func main() {
	tree, err := bplustree.NewOrdered[int, string](3)
	if err != nil {
		panic(err)
	}

	fmt.Println("=== B+ Tree Example ===")
	fmt.Println("\nInserting values...")

	for _, k := range []int{10, 20, 5, 15, 25, 1, 30, 12, 18} {
		if err := tree.Insert(k, fmt.Sprintf("Value-%d", k), false); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Total entries: %d\n", tree.Len())

	fmt.Println("\n--- Search ---")
	if value, err := tree.Search(15); err == nil {
		fmt.Printf("Key 15: %s\n", value)
	}
	if _, err := tree.Search(99); err != nil {
		fmt.Println("Key 99: not found")
	}

	fmt.Println("\n--- Range Query [10, 25) ---")
	start, stop := 10, 25
	items, err := tree.GetRange(&start, &stop)
	if err != nil {
		panic(err)
	}
	for _, e := range items {
		fmt.Printf("  Key: %d, Value: %s\n", e.Key, e.Value)
	}

	fmt.Println("\n--- Update ---")
	_ = tree.Insert(10, "Updated-10", true)
	if value, err := tree.Search(10); err == nil {
		fmt.Printf("Key 10 updated: %s, total still %d\n", value, tree.Len())
	}

	fmt.Println("\n--- Delete ---")
	if err := tree.Delete(5); err != nil {
		panic(err)
	}
	fmt.Printf("After deleting key 5, total entries: %d\n", tree.Len())

	fmt.Println("\n--- All Entries (sorted, unbounded range) ---")
	all, _ := tree.GetRange(nil, nil)
	for _, e := range all {
		fmt.Printf("  Key: %d, Value: %s\n", e.Key, e.Value)
	}

	fmt.Println("\n--- Custom key ordering ---")
	// keyFunc projects a string into its length, so keys are ordered by
	// word length rather than lexicographic order.
	byLen, err := bplustree.New[string, int, bool](3, func(s string) int { return len(s) })
	if err != nil {
		panic(err)
	}
	for _, w := range []string{"a", "bbb", "cc", "dddd"} {
		_ = byLen.Insert(w, true, false)
	}
	lenKeys, _ := byLen.Keys(nil, nil)
	fmt.Printf("Words ordered by length: %v\n", lenKeys)
}
