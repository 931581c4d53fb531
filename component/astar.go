package component

import (
	"container/heap"
)

type openItem struct {
	cell  Cell
	f     int
	g     int
	seq   int
	index int
}

// openSet orders by f, then by insertion sequence so equal-f ties are stable.
type openSet []*openItem

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}

func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}

func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*o = old[:n-1]
	return item
}

var neighborOffsets = [4]Cell{{Col: 1}, {Col: -1}, {Row: 1}, {Row: -1}}

// AStar finds a shortest 4-connected path on g with unit step cost. The
// result runs from start to goal inclusive. It is empty when either endpoint
// is out of bounds or blocked, or when the goal cannot be reached.
func AStar(g *Grid, start, goal Cell) []Cell {
	if g == nil || !g.Walkable(start) || !g.Walkable(goal) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}

	size := g.Cols * g.Rows
	idx := func(c Cell) int { return c.Row*g.Cols + c.Col }

	gScore := make([]int, size)
	cameFrom := make([]int, size)
	closed := make([]bool, size)
	for i := range gScore {
		gScore[i] = -1
		cameFrom[i] = -1
	}

	seq := 0
	open := &openSet{}
	heap.Init(open)
	gScore[idx(start)] = 0
	heap.Push(open, &openItem{cell: start, f: manhattan(start, goal), seq: seq})

	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		ci := idx(current.cell)
		if closed[ci] || current.g != gScore[ci] {
			continue
		}
		if current.cell == goal {
			return reconstructPath(g, cameFrom, ci)
		}
		closed[ci] = true

		for _, d := range neighborOffsets {
			next := Cell{Col: current.cell.Col + d.Col, Row: current.cell.Row + d.Row}
			if !g.Walkable(next) {
				continue
			}
			ni := idx(next)
			tentative := current.g + 1
			if gScore[ni] >= 0 && tentative >= gScore[ni] {
				continue
			}
			gScore[ni] = tentative
			cameFrom[ni] = ci
			closed[ni] = false
			seq++
			heap.Push(open, &openItem{cell: next, g: tentative, f: tentative + manhattan(next, goal), seq: seq})
		}
	}

	return nil
}

func reconstructPath(g *Grid, cameFrom []int, current int) []Cell {
	path := make([]Cell, 0, 32)
	for current >= 0 {
		path = append(path, Cell{Col: current % g.Cols, Row: current / g.Cols})
		current = cameFrom[current]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b Cell) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
