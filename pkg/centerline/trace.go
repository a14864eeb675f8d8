package centerline

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// branch is a chain of skeleton cells between two nodes (or a closed loop)
type branch struct {
	cells []int
	alive bool
}

func (b *branch) first() int { return b.cells[0] }
func (b *branch) last() int  { return b.cells[len(b.cells)-1] }

func (b *branch) closed() bool {
	return len(b.cells) > 1 && b.first() == b.last()
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// trace splits the thinned raster into branches. Cells whose degree is not
// two are nodes; every branch starts and ends on a node except pure loops.
func (g *grid) trace() []*branch {
	adjacency := make(map[int][]int)
	for i, on := range g.set {
		if on {
			adjacency[i] = g.neighbours(i)
		}
	}

	visited := make(map[[2]int]bool)
	var branches []*branch

	walk := func(start, next int) *branch {
		cells := []int{start}
		prev, cur := start, next
		visited[edgeKey(prev, cur)] = true
		for {
			cells = append(cells, cur)
			if len(adjacency[cur]) != 2 || cur == start {
				break
			}
			n := adjacency[cur][0]
			if n == prev {
				n = adjacency[cur][1]
			}
			if visited[edgeKey(cur, n)] {
				break
			}
			visited[edgeKey(cur, n)] = true
			prev, cur = cur, n
		}
		return &branch{cells: cells, alive: true}
	}

	// deterministic order: scan cells by index
	for i, on := range g.set {
		if !on {
			continue
		}
		ns := adjacency[i]
		if len(ns) == 2 {
			continue
		}
		if len(ns) == 0 {
			branches = append(branches, &branch{cells: []int{i}, alive: true})
			continue
		}
		for _, n := range ns {
			if !visited[edgeKey(i, n)] {
				branches = append(branches, walk(i, n))
			}
		}
	}

	// what is left are loops without any node
	for i, on := range g.set {
		if !on || len(adjacency[i]) != 2 {
			continue
		}
		n := adjacency[i][0]
		if !visited[edgeKey(i, n)] {
			branches = append(branches, walk(i, n))
		}
	}
	return branches
}

// network holds traced branches together with the number of branch ends
// touching every node cell
type network struct {
	g        *grid
	branches []*branch
	degree   map[int]int
}

func newNetwork(g *grid, branches []*branch) *network {
	n := &network{g: g, branches: branches, degree: make(map[int]int)}
	for _, b := range branches {
		if len(b.cells) < 2 || b.closed() {
			continue
		}
		n.degree[b.first()]++
		n.degree[b.last()]++
	}
	return n
}

func (n *network) lineString(b *branch) orb.LineString {
	ls := make(orb.LineString, len(b.cells))
	for i, c := range b.cells {
		x, y := n.g.coords(c)
		ls[i] = n.g.point(x, y)
	}
	return ls
}

// prune repeatedly removes spurs: terminal branches shorter than minLength
// whose other end sits on a junction
func (n *network) prune(minLength float64) {
	if minLength <= 0 {
		return
	}
	for {
		removed := false
		for _, b := range n.branches {
			if !b.alive || len(b.cells) < 2 || b.closed() {
				continue
			}
			da, db := n.degree[b.first()], n.degree[b.last()]
			terminal := (da == 1 && db >= 3) || (db == 1 && da >= 3)
			if !terminal || planar.Length(n.lineString(b)) >= minLength {
				continue
			}
			b.alive = false
			n.degree[b.first()]--
			n.degree[b.last()]--
			removed = true
		}
		if !removed {
			return
		}
	}
}

// join merges branches meeting at cells that are no longer junctions
func (n *network) join() {
	for {
		var cells []int
		for cell, deg := range n.degree {
			if deg == 2 {
				cells = append(cells, cell)
			}
		}
		sort.Ints(cells)

		joined := false
		for _, cell := range cells {
			var ends []*branch
			for _, b := range n.branches {
				if b.alive && len(b.cells) > 1 && !b.closed() && (b.first() == cell || b.last() == cell) {
					ends = append(ends, b)
				}
			}
			if len(ends) != 2 {
				continue
			}
			a, b := ends[0], ends[1]
			if a.first() == cell {
				reverse(a.cells)
			}
			if b.last() == cell {
				reverse(b.cells)
			}
			a.cells = append(a.cells, b.cells[1:]...)
			b.alive = false
			delete(n.degree, cell)
			joined = true
			break
		}
		if !joined {
			return
		}
	}
}

// alive returns the remaining branches in trace order
func (n *network) alive() []*branch {
	var out []*branch
	for _, b := range n.branches {
		if b.alive {
			out = append(out, b)
		}
	}
	return out
}

func reverse(cells []int) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}
