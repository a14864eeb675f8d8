package midline

import (
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// unionFind over segment indices
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}

// Merge partitions segments into maximal components of segments sharing at
// least one exact coordinate. The partition does not depend on the order of
// the input. Components are ordered by their lowest segment index.
func Merge(segments []geometry.Shape) []Component {
	u := newUnionFind(len(segments))

	owner := make(map[geometry.Point]int)
	for i, segment := range segments {
		for _, p := range segment {
			if j, found := owner[p]; found {
				u.union(i, j)
			} else {
				owner[p] = i
			}
		}
	}

	index := make(map[int]int)
	var components []Component
	for i := range segments {
		root := u.find(i)
		c, found := index[root]
		if !found {
			c = len(components)
			index[root] = c
			components = append(components, Component{})
		}
		components[c].Segments = append(components[c].Segments, i)
	}

	for c := range components {
		seen := make(map[geometry.Point]struct{})
		for _, i := range components[c].Segments {
			for _, p := range segments[i] {
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				components[c].Points = append(components[c].Points, p)
			}
		}
	}
	return components
}
