// Package spatial provides a bucket-based spatial hash over entity ids.
// It is a plain utility on top of the entity/component APIs: callers feed
// it positions, it answers neighborhood queries. It holds no component
// state of its own.
package spatial

// Cell addresses one bucket of the grid.
type Cell struct {
	X, Y int
}

// Grid hashes entity ids into square cells of a fixed size. Insert,
// Remove and Move are O(1) amortized; Query visits only the buckets
// overlapping the requested region.
//
// The grid does not watch entity lifecycles: callers must Remove an id
// when its entity is destroyed, typically from a system draining the
// world's removal queue.
type Grid struct {
	cellSize float64
	buckets  map[Cell][]int
	cells    map[int]Cell
}

// NewGrid creates a grid with the given cell size in world units.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{
		cellSize: cellSize,
		buckets:  make(map[Cell][]int),
		cells:    make(map[int]Cell),
	}
}

// CellAt returns the cell containing the world position.
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{X: floorDiv(x, g.cellSize), Y: floorDiv(y, g.cellSize)}
}

// Insert places id at the given position. An id already present is moved.
func (g *Grid) Insert(id int, x, y float64) {
	cell := g.CellAt(x, y)
	if prev, ok := g.cells[id]; ok {
		if prev == cell {
			return
		}
		g.removeFromBucket(id, prev)
	}
	g.buckets[cell] = append(g.buckets[cell], id)
	g.cells[id] = cell
}

// Remove drops id from the grid, reporting whether it was present.
func (g *Grid) Remove(id int) bool {
	cell, ok := g.cells[id]
	if !ok {
		return false
	}
	g.removeFromBucket(id, cell)
	delete(g.cells, id)
	return true
}

// Query appends to dst every id within the axis-aligned box around
// (x, y) extending radius in each direction, and returns dst. Ids come
// back in bucket order, not distance order.
func (g *Grid) Query(dst []int, x, y, radius float64) []int {
	min := g.CellAt(x-radius, y-radius)
	max := g.CellAt(x+radius, y+radius)
	for cy := min.Y; cy <= max.Y; cy++ {
		for cx := min.X; cx <= max.X; cx++ {
			dst = append(dst, g.buckets[Cell{X: cx, Y: cy}]...)
		}
	}
	return dst
}

// Len returns the number of ids in the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Clear empties every bucket, keeping allocated capacity where possible.
func (g *Grid) Clear() {
	for cell := range g.buckets {
		g.buckets[cell] = g.buckets[cell][:0]
	}
	clear(g.cells)
}

func (g *Grid) removeFromBucket(id int, cell Cell) {
	bucket := g.buckets[cell]
	for i, other := range bucket {
		if other == id {
			bucket[i] = bucket[len(bucket)-1]
			g.buckets[cell] = bucket[:len(bucket)-1]
			return
		}
	}
}

func floorDiv(v, size float64) int {
	q := v / size
	n := int(q)
	if q < 0 && float64(n) != q {
		n--
	}
	return n
}
