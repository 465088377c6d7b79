// Package dsu implements an array-backed disjoint-set forest (Union-Find)
// over the dense integer universe 0..n-1.
//
// Find uses full path compression and Union uses union by rank, so a
// sequence of m operations costs O(m·α(n)). A DSU only grows: there is no
// removal, and callers create a fresh instance per computation.
//
// A DSU is not safe for concurrent use; Find mutates parent links.
package dsu

// DSU is a disjoint-set forest over 0..n-1.
type DSU struct {
	parent []int
	rank   []uint8
	sets   int
}

// New returns a DSU with n singleton sets of rank 0.
// A negative n yields an empty universe.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the size of the universe.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Find returns the representative of x's set and re-parents every node on
// the walked path directly to that representative.
// x must lie in 0..Len()-1.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of a and b. It reports false, leaving the forest
// untouched, when they already share a representative.
//
// The lower-rank root is attached under the higher-rank one. On equal ranks
// b's root always goes under a's root and a's rank grows by one.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}
