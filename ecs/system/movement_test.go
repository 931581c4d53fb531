package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
)

func TestMoveNormalizesDirection(t *testing.T) {
	b := components.NewBody(common.NewRect(0, 0, 10, 10), 0, 0)
	b.Direction = cp.Vector{X: 3, Y: 4}

	Move(&b, 100, 1, nil)
	assert.InDelta(t, 65.0, b.Pos.X, 1e-9)
	assert.InDelta(t, 85.0, b.Pos.Y, 1e-9)
	assert.Equal(t, 65, b.Hitbox.CenterX())
	assert.Equal(t, 85, b.Hitbox.CenterY())
	assert.Equal(t, b.Hitbox.CenterX(), b.Rect.CenterX())
}

func TestMoveZeroDirectionStaysPut(t *testing.T) {
	b := components.NewBody(common.NewRect(10, 10, 20, 20), 0, 0)
	before := b
	Move(&b, 300, 1.0/60, []common.Rect{common.NewRect(30, 10, 10, 10)})
	assert.Equal(t, before, b)
}

func TestMoveStopsFlushAgainstObstacle(t *testing.T) {
	cases := []struct {
		name     string
		dir      cp.Vector
		obstacle common.Rect
		check    func(t *testing.T, hb common.Rect)
	}{
		{"right", cp.Vector{X: 1}, common.NewRect(25, -50, 20, 100), func(t *testing.T, hb common.Rect) {
			assert.Equal(t, 25, hb.Right())
		}},
		{"left", cp.Vector{X: -1}, common.NewRect(-35, -50, 20, 100), func(t *testing.T, hb common.Rect) {
			assert.Equal(t, -15, hb.Left())
		}},
		{"down", cp.Vector{Y: 1}, common.NewRect(-50, 25, 100, 20), func(t *testing.T, hb common.Rect) {
			assert.Equal(t, 25, hb.Bottom())
		}},
		{"up", cp.Vector{Y: -1}, common.NewRect(-50, -35, 100, 20), func(t *testing.T, hb common.Rect) {
			assert.Equal(t, -15, hb.Top())
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := components.NewBody(common.NewRect(0, 0, 20, 20), 0, 0)
			b.Direction = c.dir
			Move(&b, 12, 1, []common.Rect{c.obstacle})

			assert.False(t, b.Hitbox.Intersects(c.obstacle))
			c.check(t, b.Hitbox)
			assert.Equal(t, float64(b.Hitbox.CenterX()), b.Pos.X)
			assert.Equal(t, float64(b.Hitbox.CenterY()), b.Pos.Y)
		})
	}
}

func TestMoveResolvesXBeforeY(t *testing.T) {
	// Resolving y first would stop the body against the obstacle's left side
	// instead of its top.
	obstacle := common.NewRect(12, 14, 20, 20)
	b := components.NewBody(common.NewRect(0, 0, 10, 10), 0, 0)
	b.Direction = cp.Vector{X: 1, Y: 1}

	Move(&b, 5*math.Sqrt2, 1, []common.Rect{obstacle})
	assert.Equal(t, 5, b.Hitbox.X)
	assert.Equal(t, 4, b.Hitbox.Y)
	assert.False(t, b.Hitbox.Intersects(obstacle))
}

func TestMoveKeepsSubPixelPosition(t *testing.T) {
	b := components.NewBody(common.NewRect(0, 0, 10, 10), 0, 0)
	b.Direction = cp.Vector{X: 1}
	for i := 0; i < 4; i++ {
		Move(&b, 0.3, 1, nil)
	}
	assert.InDelta(t, 6.2, b.Pos.X, 1e-9)
	assert.Equal(t, 6, b.Hitbox.CenterX())
}

func TestMoveNeverOverlapsObstacles(t *testing.T) {
	const (
		tile  = 32
		cols  = 20
		rows  = 20
		steps = 300
	)
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		var obstacles []common.Rect
		blocked := map[[2]int]bool{}
		for i := 0; i < 60; i++ {
			c, r := rng.Intn(cols), rng.Intn(rows)
			if c == cols/2 && r == rows/2 {
				continue
			}
			if !blocked[[2]int{c, r}] {
				blocked[[2]int{c, r}] = true
				obstacles = append(obstacles, common.NewRect(c*tile, r*tile, tile, tile))
			}
		}

		center := cols / 2 * tile
		b := components.NewBody(common.RectFromCenter(center+tile/2, center+tile/2, 20, 16), 0, 0)
		for s := 0; s < steps; s++ {
			if s%20 == 0 {
				angle := rng.Float64() * 2 * math.Pi
				b.Direction = cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
			}
			// at most 10px per step, under the obstacle size
			Move(&b, 600, 1.0/60, obstacles)
			for _, o := range obstacles {
				require.Falsef(t, b.Hitbox.Intersects(o), "trial %d step %d: hitbox %+v overlaps %+v", trial, s, b.Hitbox, o)
			}
		}
	}
}

func TestMovementSystemUsesPropsAsObstacles(t *testing.T) {
	w := ecs.NewWorld(1)
	_, p := addPlayer(w, 100, 100)
	prop := w.CreateEntity()
	w.SetProp(prop, &components.Prop{
		Kind:   "grass",
		Rect:   common.NewRect(140, 60, 64, 64),
		Hitbox: common.NewRect(140, 65, 64, 54),
	})
	p.Direction = cp.Vector{X: 1}
	// 30px this step, enough to reach the prop
	w.Advance(frame, 0.1)

	NewMovementSystem().Update(w)
	assert.Equal(t, 140, p.Hitbox.Right())
}
