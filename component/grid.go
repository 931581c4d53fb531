package component

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/common"
)

// Cell addresses one tile of a walkability grid.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Grid is a row-major walkability map. A cell is blocked when an impassable
// obstacle's top-left corner lies inside it.
type Grid struct {
	Cols int
	Rows int
	Tile int

	walkable [][]bool
}

// NewGrid returns a fully walkable grid.
func NewGrid(cols, rows, tile int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	walkable := make([][]bool, rows)
	for r := range walkable {
		row := make([]bool, cols)
		for c := range row {
			row[c] = true
		}
		walkable[r] = row
	}
	return &Grid{Cols: cols, Rows: rows, Tile: tile, walkable: walkable}
}

// BuildGrid sizes the grid as world pixels divided by tile size, rounded down,
// and blocks the cell holding each obstacle's top-left pixel. Obstacles whose
// corner falls outside the grid are ignored.
func BuildGrid(worldW, worldH, tile int, obstacles []common.Rect) *Grid {
	if tile <= 0 {
		return NewGrid(0, 0, tile)
	}
	g := NewGrid(worldW/tile, worldH/tile, tile)
	for _, o := range obstacles {
		g.SetBlocked(g.CellAt(float64(o.X), float64(o.Y)), true)
	}
	return g
}

// InBounds reports whether c addresses a grid cell.
func (g *Grid) InBounds(c Cell) bool {
	if g == nil {
		return false
	}
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Cols && c.Row < g.Rows
}

// Walkable is false for blocked and out of range cells.
func (g *Grid) Walkable(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.walkable[c.Row][c.Col]
}

func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.InBounds(c) {
		return
	}
	g.walkable[c.Row][c.Col] = !blocked
}

// CellAt converts a pixel position to its cell using floor division.
func (g *Grid) CellAt(x, y float64) Cell {
	if g == nil || g.Tile <= 0 {
		return Cell{}
	}
	t := float64(g.Tile)
	return Cell{Col: int(math.Floor(x / t)), Row: int(math.Floor(y / t))}
}

// CellCenter is the pixel center of c.
func (g *Grid) CellCenter(c Cell) cp.Vector {
	if g == nil {
		return cp.Vector{}
	}
	return cp.Vector{
		X: float64(c.Col*g.Tile + g.Tile/2),
		Y: float64(c.Row*g.Tile + g.Tile/2),
	}
}

// Snapshot returns a copy of the walkability table indexed [row][col].
func (g *Grid) Snapshot() [][]bool {
	if g == nil {
		return nil
	}
	out := make([][]bool, len(g.walkable))
	for r, row := range g.walkable {
		out[r] = append([]bool(nil), row...)
	}
	return out
}
