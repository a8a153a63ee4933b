package searchtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/searchtree"
)

func TestSplayPutMovesKeyToRoot(t *testing.T) {
	tr := searchtree.NewSplay[int, string]()
	for _, k := range []int{5, 1, 4, 3, 2} {
		tr.Put(k, "")
		assert.Equal(t, k, key(tr.Root()))
	}
	assert.Equal(t, 1, key(tr.Root().Left()))
	assert.Equal(t, 3, key(tr.Root().Right()))
	checkOrder(t, tr)
}

func TestSplayGetMovesKeyToRoot(t *testing.T) {
	tr := searchtree.NewSplay[int, string]()
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		tr.Put(k, "")
	}
	// sequential inserts leave a left-leaning path below 7
	_, ok := tr.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1, key(tr.Root()))
	checkOrder(t, tr)

	// a miss splays the last node on the search path
	_, ok = tr.Get(100)
	assert.False(t, ok)
	assert.Equal(t, 7, key(tr.Root()))
}

func TestSplayRemove(t *testing.T) {
	tr := searchtree.NewSplay[int, string]()
	for _, k := range []int{5, 9, 2, 8, 4, 7} {
		tr.Put(k, "")
	}
	assert.Equal(t, 7, key(tr.Root()))

	// zig-zag on the failed search path
	_, ok := tr.Remove(6)
	assert.False(t, ok)
	assert.Equal(t, 5, key(tr.Root()))
	assert.Equal(t, 7, key(tr.Root().Right()))

	_, ok = tr.Remove(5)
	require.True(t, ok)
	assert.Equal(t, 4, key(tr.Root()))
	assert.Equal(t, 2, key(tr.Root().Left()))
	assert.Equal(t, 7, key(tr.Root().Right()))

	// 9 is splayed up by a zig-zig and a zig, then spliced out
	_, ok = tr.Remove(9)
	require.True(t, ok)
	assert.Equal(t, 4, key(tr.Root()))
	assert.Equal(t, 8, key(tr.Root().Right()))
	assert.Equal(t, 7, key(tr.Root().Right().Left()))
	checkOrder(t, tr)
	assert.Equal(t, []int{2, 4, 7, 8}, tr.Keys())
}
