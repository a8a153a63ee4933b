// Package baseline adapts third-party ordered trees to the ordmap.Map
// contract. The adapters serve as reference oracles in tests and as
// comparison points for the benchmark driver.
//
//   - BTreeMap wraps github.com/google/btree (generic B-tree)
//   - LLRBMap wraps github.com/petar/GoLLRB (left-leaning red-black tree)
//   - GodsMap wraps github.com/emirpasic/gods trees/redblacktree
package baseline
