package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
)

// AnimationSystem advances animation cursors. A monster whose attack clip
// wraps loses its attack and starts the attack cooldown.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DT()

	for _, e := range w.PlayerSet().Entities() {
		if p := w.GetPlayer(e); p != nil {
			p.Animation.Advance(p.Status.String(), dt)
		}
	}

	for _, e := range w.MonsterSet().Entities() {
		m := w.GetMonster(e)
		if m == nil {
			continue
		}
		wrapped := m.Animation.Advance(m.Behavior.String(), dt)
		if wrapped && m.Behavior == components.BehaviorAttack {
			m.CanAttack = false
			m.AttackCooldown.Start(w.Now())
		}
	}
}
