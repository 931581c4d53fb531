package component

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFromRows(rows []string) *Grid {
	g := NewGrid(len(rows[0]), len(rows), 64)
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				g.SetBlocked(Cell{Col: c, Row: r}, true)
			}
		}
	}
	return g
}

// bfsDistance returns the shortest step count or -1 when unreachable.
func bfsDistance(g *Grid, start, goal Cell) int {
	if !g.Walkable(start) || !g.Walkable(goal) {
		return -1
	}
	dist := map[Cell]int{start: 0}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, d := range neighborOffsets {
			next := Cell{Col: cur.Col + d.Col, Row: cur.Row + d.Row}
			if _, seen := dist[next]; seen || !g.Walkable(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func assertValidPath(t *testing.T, g *Grid, path []Cell, start, goal Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i, c := range path {
		assert.True(t, g.Walkable(c), "step %d %v blocked", i, c)
		if i == 0 {
			continue
		}
		assert.Equal(t, 1, manhattan(path[i-1], c), "step %d not adjacent", i)
	}
}

func TestAStarNoPath(t *testing.T) {
	g := gridFromRows([]string{
		"..#..",
		"..#..",
		"..#..",
	})
	cases := []struct {
		name        string
		start, goal Cell
	}{
		{"walled_off", Cell{Col: 0, Row: 0}, Cell{Col: 4, Row: 2}},
		{"start_out_of_bounds", Cell{Col: -1, Row: 0}, Cell{Col: 1, Row: 1}},
		{"goal_out_of_bounds", Cell{Col: 0, Row: 0}, Cell{Col: 0, Row: 3}},
		{"goal_blocked", Cell{Col: 0, Row: 0}, Cell{Col: 2, Row: 1}},
		{"start_blocked", Cell{Col: 2, Row: 0}, Cell{Col: 0, Row: 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Empty(t, AStar(g, c.start, c.goal))
		})
	}
	assert.Empty(t, AStar(nil, Cell{}, Cell{}))
}

func TestAStarStartEqualsGoal(t *testing.T) {
	g := NewGrid(3, 3, 64)
	assert.Equal(t, []Cell{{Col: 1, Row: 1}}, AStar(g, Cell{Col: 1, Row: 1}, Cell{Col: 1, Row: 1}))
}

func TestAStarAroundWall(t *testing.T) {
	g := gridFromRows([]string{
		".....",
		".###.",
		".....",
	})
	start, goal := Cell{Col: 2, Row: 0}, Cell{Col: 2, Row: 2}
	path := AStar(g, start, goal)
	assertValidPath(t, g, path, start, goal)
	assert.Len(t, path, 7)
}

func TestAStarIsDeterministic(t *testing.T) {
	g := NewGrid(8, 8, 64)
	start, goal := Cell{}, Cell{Col: 7, Row: 7}
	first := AStar(g, start, goal)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AStar(g, start, goal))
	}
}

func TestAStarMatchesBFSOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		cols, rows := 3+rng.Intn(12), 3+rng.Intn(12)
		g := NewGrid(cols, rows, 64)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if rng.Float64() < 0.3 {
					g.SetBlocked(Cell{Col: c, Row: r}, true)
				}
			}
		}
		start := Cell{Col: rng.Intn(cols), Row: rng.Intn(rows)}
		goal := Cell{Col: rng.Intn(cols), Row: rng.Intn(rows)}

		want := bfsDistance(g, start, goal)
		path := AStar(g, start, goal)
		if want < 0 {
			assert.Empty(t, path, "trial %d", trial)
			continue
		}
		assertValidPath(t, g, path, start, goal)
		assert.Equal(t, want, len(path)-1, "trial %d: path not shortest", trial)
	}
}
