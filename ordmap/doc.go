// Package ordmap defines the ordered-map contract shared by every map in
// this module: the binary search tree family (searchtree), the skip list
// (skiplist) and the sorted search table (searchtable).
//
// All implementations are interchangeable behind Map[K, V]:
//
//	var m ordmap.Map[int, string] = searchtree.NewAVL[int, string]()
//	m.Put(3, "c")
//	m.Put(1, "a")
//	for k, v := range m.All() {
//	    fmt.Println(k, v) // 1 a, then 3 c
//	}
//
// Keys are ordered by a Comparator. Constructors without a comparator
// argument use Natural, which requires K to satisfy cmp.Ordered.
//
// A missing key is not an error: Get and Remove report it through the
// boolean result. Duplicate keys are not supported; Put on an existing
// key replaces the value in place.
//
// None of the maps are safe for concurrent use. Guard them with a mutex
// if they are shared between goroutines.
package ordmap
