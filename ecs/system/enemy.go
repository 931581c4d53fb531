package system

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/logger"
)

const (
	defaultPathRecalcInterval = 500 * time.Millisecond
	defaultNodeReach          = 4.0
)

// EnemySystem picks each monster's behavior from its distance to the player
// and turns that behavior into a movement direction.
type EnemySystem struct {
	// RecalcInterval is the maximum age of a path before it is recomputed.
	RecalcInterval time.Duration
	// NodeReach is how close, in pixels, a monster must get to a node center
	// before moving on to the next node.
	NodeReach float64
}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{
		RecalcInterval: defaultPathRecalcInterval,
		NodeReach:      defaultNodeReach,
	}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	_, player, ok := w.Player()

	for _, e := range w.MonsterSet().Entities() {
		m := w.GetMonster(e)
		if m == nil {
			continue
		}
		if !ok {
			m.Behavior = components.BehaviorIdle
			m.Path.Clear()
			m.Direction = cp.Vector{}
			continue
		}

		entered := s.updateBehavior(m, player)
		switch m.Behavior {
		case components.BehaviorAttack:
			m.Direction = cp.Vector{}
			// the player's invulnerability window gates repeated hits
			w.Events().Emit(components.EventDamagePlayer, components.DamagePlayer{Amount: m.Damage, AttackType: m.AttackType})
			if entered {
				w.Events().Emit(components.EventPlaySound, components.PlaySound{Name: m.AttackSound})
			}
		case components.BehaviorMove:
			s.followPlayer(w, m, player)
		default:
			m.Direction = cp.Vector{}
		}

		if !m.Vitals.Vulnerable() {
			m.Direction = m.Knockback.Neg()
		}

		m.LastPlayerPos = player.Center()
		m.SeenPlayer = true
	}
}

// updateBehavior applies the distance thresholds and reports whether the
// monster just entered its attack.
func (s *EnemySystem) updateBehavior(m *components.Monster, player *components.Player) bool {
	dist := m.Center().Distance(player.Center())
	prev := m.Behavior

	switch {
	case dist <= m.AttackRadius && m.CanAttack:
		m.Behavior = components.BehaviorAttack
	case dist <= m.NoticeRadius:
		m.Behavior = components.BehaviorMove
	default:
		m.Behavior = components.BehaviorIdle
	}

	if m.Behavior != components.BehaviorMove {
		m.Path.Clear()
	}
	if m.Behavior != prev {
		logger.Log.WithFields(logrus.Fields{
			"monster": m.Kind,
			"from":    prev.String(),
			"to":      m.Behavior.String(),
		}).Debug("monster behavior changed")
	}

	entered := m.Behavior == components.BehaviorAttack && prev != components.BehaviorAttack
	if entered {
		m.Animation.Reset()
	}
	return entered
}

// followPlayer refreshes the path when it is missing, stale or aimed at an old
// player cell, then steers toward the next node.
func (s *EnemySystem) followPlayer(w *ecs.World, m *components.Monster, player *components.Player) {
	grid := w.Grid()
	if grid == nil {
		m.Direction = cp.Vector{}
		return
	}
	now := w.Now()
	center := m.Center()
	goal := grid.CellAt(player.Center().X, player.Center().Y)

	stale := now-m.Path.LastRecalc > s.RecalcInterval
	if len(m.Path.Nodes) == 0 || stale || !m.Path.HasGoal || goal != m.Path.Goal {
		start := grid.CellAt(center.X, center.Y)
		raw := component.AStar(grid, start, goal)
		if len(raw) > 1 {
			m.Path.Nodes = raw[1:]
		} else {
			m.Path.Nodes = nil
		}
		m.Path.Goal = goal
		m.Path.HasGoal = true
		m.Path.LastRecalc = now
	}

	next, ok := m.Path.Next()
	if !ok {
		m.Direction = cp.Vector{}
		return
	}
	toNext := grid.CellCenter(next).Sub(center)
	if toNext.Length() < s.NodeReach {
		m.Path.Pop()
		if next, ok = m.Path.Next(); !ok {
			m.Direction = cp.Vector{}
			return
		}
		toNext = grid.CellCenter(next).Sub(center)
	}
	m.Direction = common.Unit(toNext)
}
