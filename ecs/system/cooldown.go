package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
)

// CooldownSystem expires attack, switch and vulnerability timers.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()

	for _, e := range w.PlayerSet().Entities() {
		p := w.GetPlayer(e)
		if p == nil {
			continue
		}
		if p.Attacking && p.AttackTimer.StopIfExpired(now) {
			p.Attacking = false
			w.Events().Emit(components.EventDestroyAttack, nil)
		}
		p.WeaponSwitch.StopIfExpired(now)
		p.MagicSwitch.StopIfExpired(now)
		p.Vitals.Tick(now)
	}

	for _, e := range w.MonsterSet().Entities() {
		m := w.GetMonster(e)
		if m == nil {
			continue
		}
		if !m.CanAttack && m.AttackCooldown.StopIfExpired(now) {
			m.CanAttack = true
		}
		m.Vitals.Tick(now)
	}
}
