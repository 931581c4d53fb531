package system

import (
	"github.com/milk9111/overworld/ecs"
)

// TTLSystem removes expired magic bursts and particles, and walks homing
// particles toward their target.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()

	for _, e := range w.AttackSet().Entities() {
		if a := w.GetAttack(e); a != nil && a.Lifetime.Expired(now) {
			w.DestroyEntity(e)
		}
	}

	dt := w.DT()
	for _, e := range w.EffectSet().Entities() {
		fx := w.GetEffect(e)
		if fx == nil {
			continue
		}
		if fx.Homing {
			toTarget := fx.Target.Sub(fx.Pos)
			step := fx.Speed * dt
			if toTarget.Length() <= step {
				w.DestroyEntity(e)
				continue
			}
			fx.Pos = fx.Pos.Add(toTarget.Normalize().Mult(step))
		}
		if fx.Life.Expired(now) {
			w.DestroyEntity(e)
		}
	}
}
