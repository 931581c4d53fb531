package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
)

func TestEnemyBehaviorByDistance(t *testing.T) {
	cases := []struct {
		name      string
		distance  int
		canAttack bool
		want      components.Behavior
	}{
		{"attack_in_range", 50, true, components.BehaviorAttack},
		{"cooling_down_moves", 50, false, components.BehaviorMove},
		{"noticed", 200, true, components.BehaviorMove},
		{"on_notice_edge", 360, true, components.BehaviorMove},
		{"too_far", 500, true, components.BehaviorIdle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			addPlayer(w, 400, 400)
			_, m := addMonster(w, 400+c.distance, 400)
			m.CanAttack = c.canAttack
			w.Advance(frame, 1.0/60)

			NewEnemySystem().Update(w)
			assert.Equal(t, c.want, m.Behavior)
			if c.want != components.BehaviorMove {
				assert.True(t, common.IsZero(m.Direction))
			}
		})
	}
}

func TestEnemyAttackDamagesEveryFrame(t *testing.T) {
	w := ecs.NewWorld(1)
	addPlayer(w, 400, 400)
	_, m := addMonster(w, 450, 400)
	m.Animation.Frame = 2.5
	enemy := NewEnemySystem()

	w.Advance(frame, 1.0/60)
	enemy.Update(w)
	assert.Zero(t, m.Animation.Frame, "attack clip restarts on entry")
	assert.Equal(t, []ecs.Event{
		{Type: components.EventDamagePlayer, Data: components.DamagePlayer{Amount: 20, AttackType: "slash"}},
		{Type: components.EventPlaySound, Data: components.PlaySound{Name: "slash"}},
	}, w.Events().Drain())

	for i := 2; i <= 4; i++ {
		w.Advance(time.Duration(i)*frame, 1.0/60)
		enemy.Update(w)
		assert.Equal(t, []ecs.Event{
			{Type: components.EventDamagePlayer, Data: components.DamagePlayer{Amount: 20, AttackType: "slash"}},
		}, w.Events().Drain(), "frame %d", i)
	}
	assert.Equal(t, components.BehaviorAttack, m.Behavior)
}

func TestEnemyLeavingMoveClearsPath(t *testing.T) {
	cases := []struct {
		name   string
		player cp.Vector
		want   components.Behavior
	}{
		{"out_of_notice", cp.Vector{X: 19*64 + 32, Y: 19*64 + 32}, components.BehaviorIdle},
		{"in_attack_range", cp.Vector{X: 2*64 + 32 + 50, Y: 2*64 + 32}, components.BehaviorAttack},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld(1)
			w.SetGrid(component.NewGrid(20, 20, 64))
			_, p := addPlayer(w, 6*64+32, 2*64+32)
			_, m := addMonster(w, 2*64+32, 2*64+32)
			enemy := NewEnemySystem()

			w.Advance(frame, 1.0/60)
			enemy.Update(w)
			require.Equal(t, components.BehaviorMove, m.Behavior)
			require.NotEmpty(t, m.Path.Nodes)

			p.Teleport(c.player)
			w.Advance(2*frame, 1.0/60)
			enemy.Update(w)
			assert.Equal(t, c.want, m.Behavior)
			assert.Empty(t, m.Path.Nodes)
			assert.True(t, common.IsZero(m.Direction))
		})
	}
}

func TestEnemyIdlesWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld(1)
	_, m := addMonster(w, 100, 100)
	m.Behavior = components.BehaviorMove
	m.Path.Nodes = []component.Cell{{Col: 1, Row: 1}}
	m.Direction = cp.Vector{X: 1}
	w.Advance(frame, 1.0/60)

	NewEnemySystem().Update(w)
	assert.Equal(t, components.BehaviorIdle, m.Behavior)
	assert.Empty(t, m.Path.Nodes)
	assert.True(t, common.IsZero(m.Direction))
	assert.False(t, m.SeenPlayer)
}

func TestEnemyRemembersPlayer(t *testing.T) {
	w := ecs.NewWorld(1)
	_, p := addPlayer(w, 400, 400)
	_, m := addMonster(w, 1400, 400)
	w.Advance(frame, 1.0/60)

	NewEnemySystem().Update(w)
	assert.True(t, m.SeenPlayer)
	assert.Equal(t, p.Center(), m.LastPlayerPos)
}

func TestEnemyKnockbackOverridesDirection(t *testing.T) {
	w := ecs.NewWorld(1)
	addPlayer(w, 400, 400)
	_, m := addMonster(w, 1000, 400)
	m.Knockback = cp.Vector{X: 1}
	m.Vitals.Invulnerable.Start(0)
	w.Advance(frame, 1.0/60)

	NewEnemySystem().Update(w)
	assert.Equal(t, components.BehaviorIdle, m.Behavior)
	assert.InDelta(t, -1, m.Direction.X, 1e-9)
	assert.InDelta(t, 0, m.Direction.Y, 1e-9)
	assert.Equal(t, m.Speed*m.Resistance, m.MoveSpeed())
}

func TestEnemyPathRecompute(t *testing.T) {
	w := ecs.NewWorld(1)
	w.SetGrid(component.NewGrid(20, 20, 64))
	_, p := addPlayer(w, 6*64+32, 2*64+32)
	_, m := addMonster(w, 2*64+32, 2*64+32)
	enemy := NewEnemySystem()

	w.Advance(frame, 1.0/60)
	enemy.Update(w)
	require.Equal(t, components.BehaviorMove, m.Behavior)
	assert.Equal(t, component.Cell{Col: 6, Row: 2}, m.Path.Goal)
	assert.Equal(t, frame, m.Path.LastRecalc)
	require.NotEmpty(t, m.Path.Nodes)
	assert.Equal(t, component.Cell{Col: 3, Row: 2}, m.Path.Nodes[0], "start cell is dropped")
	assert.Equal(t, component.Cell{Col: 6, Row: 2}, m.Path.Nodes[len(m.Path.Nodes)-1])
	assert.InDelta(t, 1, m.Direction.X, 1e-9)

	t.Run("goal_change", func(t *testing.T) {
		p.Teleport(cp.Vector{X: 6*64 + 32, Y: 4*64 + 32})
		w.Advance(2*frame, 1.0/60)
		enemy.Update(w)
		assert.Equal(t, component.Cell{Col: 6, Row: 4}, m.Path.Goal)
		assert.Equal(t, 2*frame, m.Path.LastRecalc)
	})

	t.Run("fresh_path_kept", func(t *testing.T) {
		w.Advance(2*frame+400*time.Millisecond, 1.0/60)
		enemy.Update(w)
		assert.Equal(t, 2*frame, m.Path.LastRecalc)
	})

	t.Run("stale_path_recomputed", func(t *testing.T) {
		now := 2*frame + 501*time.Millisecond
		w.Advance(now, 1.0/60)
		enemy.Update(w)
		assert.Equal(t, now, m.Path.LastRecalc)
	})
}

func TestEnemyPopsReachedNode(t *testing.T) {
	w := ecs.NewWorld(1)
	w.SetGrid(component.NewGrid(20, 20, 64))
	addPlayer(w, 6*64+32, 2*64+32)
	_, m := addMonster(w, 2*64+32, 2*64+32)
	enemy := NewEnemySystem()

	w.Advance(frame, 1.0/60)
	enemy.Update(w)
	first := len(m.Path.Nodes)

	// within reach of the first node
	m.Teleport(cp.Vector{X: 3*64 + 30, Y: 2*64 + 32 + 2})
	w.Advance(2*frame, 1.0/60)
	enemy.Update(w)
	assert.Len(t, m.Path.Nodes, first-1)
	assert.Equal(t, component.Cell{Col: 4, Row: 2}, m.Path.Nodes[0])
}

func TestEnemyWalksAroundWall(t *testing.T) {
	const (
		tile = 64
		cols = 12
		rows = 10
	)
	w := ecs.NewWorld(1)
	w.SetBounds(cols*tile, rows*tile)
	for r := 0; r <= 5; r++ {
		addObstacle(w, common.NewRect(5*tile, r*tile, tile, tile))
	}
	w.SetGrid(component.BuildGrid(cols*tile, rows*tile, tile, w.ImpassableHitboxes()))

	addPlayer(w, 8*tile+tile/2, tile+tile/2)
	_, m := addMonster(w, 2*tile+tile/2, tile+tile/2)
	m.Body = components.NewBody(common.RectFromCenter(2*tile+tile/2, tile+tile/2, 40, 40), 0, -10)
	m.NoticeRadius = 600

	enemy := NewEnemySystem()
	movement := NewMovementSystem()
	obstacles := w.ImpassableHitboxes()

	frames := 0
	lowest := 0.0
	for ; frames < 1200 && m.Behavior != components.BehaviorAttack; frames++ {
		w.Advance(time.Duration(frames+1)*frame, 1.0/60)
		enemy.Update(w)
		movement.Update(w)
		if y := m.Center().Y; y > lowest {
			lowest = y
		}
		for _, o := range obstacles {
			require.Falsef(t, m.Hitbox.Intersects(o), "frame %d: %+v overlaps %+v", frames, m.Hitbox, o)
		}
	}
	require.Equal(t, components.BehaviorAttack, m.Behavior, "monster never reached the player")
	assert.Greater(t, lowest, float64(6*tile), "monster went under the wall")
	assert.Greater(t, m.Center().X, float64(6*tile))
}
