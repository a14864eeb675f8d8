package centerline

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	minCellsAcross = 8
	maxCellsAcross = 512
)

// grid is a binary raster of a polygon with a one-cell empty border
type grid struct {
	width, height int
	cell          float64
	origin        orb.Point // model position of the center of cell (0,0)
	set           []bool
}

// rasterize samples the ring at cell centers
func rasterize(ring orb.Ring, densify float64) *grid {
	bound := ring.Bound()
	w := bound.Max[0] - bound.Min[0]
	h := bound.Max[1] - bound.Min[1]
	minSide, maxSide := math.Min(w, h), math.Max(w, h)

	cell := densify / 2
	if cell <= 0 || minSide/cell < minCellsAcross {
		cell = minSide / minCellsAcross
	}
	if maxSide/cell > maxCellsAcross {
		cell = maxSide / maxCellsAcross
	}

	g := &grid{
		width:  int(math.Ceil(w/cell)) + 2,
		height: int(math.Ceil(h/cell)) + 2,
		cell:   cell,
		origin: orb.Point{bound.Min[0] - cell/2, bound.Min[1] - cell/2},
	}
	g.set = make([]bool, g.width*g.height)

	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			g.set[g.index(x, y)] = planar.RingContains(ring, g.point(x, y))
		}
	}
	return g
}

func (g *grid) index(x, y int) int {
	return y*g.width + x
}

func (g *grid) coords(i int) (int, int) {
	return i % g.width, i / g.width
}

// point returns the model position of the center of cell (x, y)
func (g *grid) point(x, y int) orb.Point {
	return orb.Point{g.origin[0] + float64(x)*g.cell, g.origin[1] + float64(y)*g.cell}
}

func (g *grid) at(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.set[g.index(x, y)]
}

// neighbours in Zhang-Suen order: P2..P9 clockwise starting north
var ring8 = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// thin reduces the raster to a one-cell-wide skeleton (Zhang-Suen)
func (g *grid) thin() {
	var remove []int
	for {
		changed := false
		for pass := 0; pass < 2; pass++ {
			remove = remove[:0]
			for y := 1; y < g.height-1; y++ {
				for x := 1; x < g.width-1; x++ {
					if g.at(x, y) && g.removable(x, y, pass) {
						remove = append(remove, g.index(x, y))
					}
				}
			}
			for _, i := range remove {
				g.set[i] = false
			}
			changed = changed || len(remove) > 0
		}
		if !changed {
			return
		}
	}
}

func (g *grid) removable(x, y, pass int) bool {
	var p [8]bool
	count := 0
	for i, d := range ring8 {
		p[i] = g.at(x+d[0], y+d[1])
		if p[i] {
			count++
		}
	}
	if count < 2 || count > 6 {
		return false
	}

	transitions := 0
	for i := 0; i < 8; i++ {
		if !p[i] && p[(i+1)%8] {
			transitions++
		}
	}
	if transitions != 1 {
		return false
	}

	// p[0]=N p[2]=E p[4]=S p[6]=W
	if pass == 0 {
		return !(p[0] && p[2] && p[4]) && !(p[2] && p[4] && p[6])
	}
	return !(p[0] && p[2] && p[6]) && !(p[0] && p[4] && p[6])
}

// neighbours returns the set cells adjacent to cell i. Diagonal links are
// dropped when an orthogonal cell already connects both ends, so staircases
// trace as simple chains.
func (g *grid) neighbours(i int) []int {
	x, y := g.coords(i)
	var out []int
	for _, d := range ring8 {
		nx, ny := x+d[0], y+d[1]
		if !g.at(nx, ny) {
			continue
		}
		if d[0] != 0 && d[1] != 0 && (g.at(x+d[0], y) || g.at(x, y+d[1])) {
			continue
		}
		out = append(out, g.index(nx, ny))
	}
	return out
}
