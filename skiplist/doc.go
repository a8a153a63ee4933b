// Package skiplist implements an ordered map on a randomized skip list.
//
// The list is a stack of sorted linked levels. Level 0 holds every entry;
// each entry also appears on the levels above it up to a height decided by
// fair coin flips, forming a tower. Every level is framed by a -inf and a
// +inf sentinel, so the leftmost tower is the entry point for searches.
//
//	level 2: -inf ------------------> 7 ----------> +inf
//	level 1: -inf ------> 3 --------> 7 ----------> +inf
//	level 0: -inf -> 1 -> 3 -> 4 ---> 7 -> 8 -> 9 -> +inf
//
// Searches start at the top-left sentinel, move right while the next key
// is <= the target and drop one level when they cannot. Expected cost of
// Get, Put and Remove is O(log n); the height is unbounded in the worst
// case.
//
// The random source can be fixed with WithSeed or WithRand for
// reproducible layouts. A Map is not safe for concurrent use.
package skiplist
