// SPDX-License-Identifier: MIT

// Package pq provides array-backed binary min-heap priority queues.
//
// Heap supports Insert, Min and DeleteMin. AdaptableHeap additionally lets
// a caller remove an arbitrary entry or change its key or value, which is
// what decrease-key algorithms such as Dijkstra and Prim-Jarnik need.
//
// Every entry records its own slot in the backing slice and every swap
// updates the slots of both entries involved, so an entry handed out by
// Insert can be located in O(1) and re-positioned in O(log n).
//
// Entries are handles: an entry from another queue, or one that has
// already left this queue, is rejected with ErrInvalidEntry.
//
// Complexity:
//
//	Insert, DeleteMin, Remove, ReplaceKey   O(log n)
//	Min, ReplaceValue, Size                 O(1)
//
// Queues are not safe for concurrent use.
package pq
