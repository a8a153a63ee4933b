package ordmap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsa/internal/baseline"
	"github.com/katalvlaran/dsa/ordmap"
	"github.com/katalvlaran/dsa/searchtable"
	"github.com/katalvlaran/dsa/searchtree"
	"github.com/katalvlaran/dsa/skiplist"
)

// operation represents a map operation driven by the fuzzer.
type operation int

const (
	opPut operation = iota
	opGet
	opRemove
	opCount
)

// candidates returns a fresh instance of every ordered map in the module.
func candidates(seed int64) map[string]ordmap.Map[int, string] {
	return map[string]ordmap.Map[int, string]{
		"bst":         searchtree.NewBST[int, string](),
		"avl":         searchtree.NewAVL[int, string](),
		"redblack":    searchtree.NewRedBlack[int, string](),
		"splay":       searchtree.NewSplay[int, string](),
		"skiplist":    skiplist.New[int, string](skiplist.WithSeed(seed)),
		"searchtable": searchtable.New[int, string](),
		"llrb":        baseline.NewLLRB[int, string](),
		"gods":        baseline.NewGods[int, string](),
	}
}

// FuzzOrderedMaps drives every map with the same random operation stream
// and compares each step against a google/btree oracle.
func FuzzOrderedMaps(f *testing.F) {
	f.Add(int64(1), uint(10))
	f.Add(int64(42), uint(100))
	f.Add(int64(123), uint(500))

	f.Fuzz(func(t *testing.T, seed int64, numOps uint) {
		if numOps > 1000 {
			numOps = 1000
		}
		rng := rand.New(rand.NewSource(seed))
		oracle := baseline.NewBTree[int, string]()
		maps := candidates(seed)

		for i := uint(0); i < numOps; i++ {
			key := rng.Intn(64)
			switch operation(rng.Intn(int(opCount))) {
			case opPut:
				value := string(rune('a' + rng.Intn(26)))
				wantOld, wantReplaced := oracle.Put(key, value)
				for name, m := range maps {
					old, replaced := m.Put(key, value)
					if replaced != wantReplaced || old != wantOld {
						t.Fatalf("%s: Put(%d) = (%q, %v), want (%q, %v)", name, key, old, replaced, wantOld, wantReplaced)
					}
				}
			case opGet:
				want, wantOK := oracle.Get(key)
				for name, m := range maps {
					if got, ok := m.Get(key); ok != wantOK || got != want {
						t.Fatalf("%s: Get(%d) = (%q, %v), want (%q, %v)", name, key, got, ok, want, wantOK)
					}
				}
			case opRemove:
				want, wantOK := oracle.Remove(key)
				for name, m := range maps {
					if got, ok := m.Remove(key); ok != wantOK || got != want {
						t.Fatalf("%s: Remove(%d) = (%q, %v), want (%q, %v)", name, key, got, ok, want, wantOK)
					}
				}
			}
		}

		wantKeys := oracle.Keys()
		wantValues := oracle.Values()
		for name, m := range maps {
			if m.Size() != oracle.Size() {
				t.Fatalf("%s: size mismatch: expected %d, got %d", name, oracle.Size(), m.Size())
			}
			if m.IsEmpty() != oracle.IsEmpty() {
				t.Fatalf("%s: IsEmpty mismatch", name)
			}
			keys, values := m.Keys(), m.Values()
			for j := range wantKeys {
				if keys[j] != wantKeys[j] || values[j] != wantValues[j] {
					t.Fatalf("%s: entry %d = %d=%s, want %d=%s", name, j, keys[j], values[j], wantKeys[j], wantValues[j])
				}
			}
		}
	})
}
