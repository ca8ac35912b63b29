package comparisons

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/bstree/Trees"
	"github.com/google/btree"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func ascending[S constraints.Unsigned](t *Trees.OrderedTree[int, S]) (s []int) {
	t.InOrder(func(v int) bool {
		s = append(s, v)
		return true
	})
	return
}

// The same random sequence of inserts and removes is applied to the tree and to
// google/btree, whose ascending order and membership must agree at every check.
func TestOracle_GoogleBTree(t *testing.T) {
	re := require.New(t)
	tree := Trees.NewOrdered[int](uint32(0))
	bt := btree.NewOrderedG[int](8)
	for i := 0; i < oracleOps; i++ {
		v := rg.Intn(oracleValRange)
		if rg.Intn(5) < 2 {
			_, had := bt.Delete(v)
			err := tree.Remove(v)
			re.Equal(had, err == nil, "remove %d", v)
			if !had {
				re.True(Trees.ErrNotFound.Equal(err))
			}
		} else {
			_, had := bt.ReplaceOrInsert(v)
			added, err := tree.Insert(v)
			re.NoError(err)
			re.Equal(!had, added, "insert %d", v)
		}
		re.EqualValues(bt.Len(), tree.Size())
		if i%1000 == 0 {
			var want []int
			bt.Ascend(func(v int) bool {
				want = append(want, v)
				return true
			})
			re.Equal(want, ascending(tree))
			re.False(tree.Corrupt())
		}
	}
	for v := 0; v < oracleValRange; v++ {
		re.Equal(bt.Has(v), tree.Contains(v), "contains %d", v)
	}
}

// Predecessors found by walking parent links agree with the floor query of a
// red-black tree.
func TestOracle_GodsPredecessor(t *testing.T) {
	tree := Trees.NewOrdered[int](uint(0))
	rb := redblacktree.NewWithIntComparator()
	for i := 0; i < oracleOps/4; i++ {
		v := rg.Intn(oracleValRange)
		_, _ = tree.Insert(v)
		rb.Put(v, struct{}{})
		if rg.Intn(4) == 0 {
			d := rg.Intn(oracleValRange)
			rb.Remove(d)
			_ = tree.Remove(d)
		}
	}
	keys := make([]int, 0, rb.Size())
	for _, k := range rb.Keys() {
		keys = append(keys, k.(int))
	}
	if got := ascending(tree); !slices.Equal(got, keys) {
		t.Fatalf("ascending order differs from red-black tree")
	}
	for _, k := range keys {
		h, ok := tree.Search(k)
		if !ok {
			t.Fatalf("missing key %d", k)
		}
		p, ok := tree.Predecessor(h)
		floor, found := rb.Floor(k - 1)
		if ok != found {
			t.Fatalf("predecessor of %d: found=%v, red-black tree found=%v", k, ok, found)
		}
		if ok && tree.Value(p) != floor.Key.(int) {
			t.Fatalf("predecessor of %d is %d, want %d", k, tree.Value(p), floor.Key)
		}
	}
}
