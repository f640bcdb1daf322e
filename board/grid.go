package board

import "github.com/lixenwraith/rockfall/core"

// MaxEntitiesPerCell bounds co-located entities; only baby monsters ever stack
const MaxEntitiesPerCell = 7

// cell holds the ids present at one coordinate, unordered
type cell struct {
	count uint8
	ids   [MaxEntitiesPerCell]int
}

// grid is a dense cell index over the play field plus the one-cell ring around it
// Coordinates run from (0,0) to (width+1, height+1)
type grid struct {
	width  int
	height int
	cells  []cell
}

func newGrid(width, height int) *grid {
	return &grid{
		width:  width + 2,
		height: height + 2,
		cells:  make([]cell, (width+2)*(height+2)),
	}
}

func (g *grid) index(p core.Point) (int, bool) {
	if p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
		return 0, false
	}
	return p.Y*g.width + p.X, true
}

// add inserts id at p, returns false outside the grid or when the cell is full
func (g *grid) add(id int, p core.Point) bool {
	idx, ok := g.index(p)
	if !ok {
		return false
	}
	c := &g.cells[idx]
	if int(c.count) >= MaxEntitiesPerCell {
		return false
	}
	c.ids[c.count] = id
	c.count++
	return true
}

// remove deletes id from p using swap-remove
func (g *grid) remove(id int, p core.Point) {
	idx, ok := g.index(p)
	if !ok {
		return
	}
	c := &g.cells[idx]
	for i := uint8(0); i < c.count; i++ {
		if c.ids[i] == id {
			c.count--
			if i < c.count {
				c.ids[i] = c.ids[c.count]
			}
			c.ids[c.count] = 0
			return
		}
	}
}

// at returns a view of the ids at p, nil when empty or outside
// Callers must not retain the slice across mutations
func (g *grid) at(p core.Point) []int {
	idx, ok := g.index(p)
	if !ok {
		return nil
	}
	c := &g.cells[idx]
	if c.count == 0 {
		return nil
	}
	return c.ids[:c.count]
}
