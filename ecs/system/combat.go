package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
)

// HitSound is played when an attack damages a monster.
const HitSound = "hit"

// CombatSystem lands player attacks on monsters and cuts props.
type CombatSystem struct {
	Resolver *component.CombatResolver

	// LeafMin and LeafMax bound the number of leaf particles per cut prop.
	LeafMin, LeafMax int
	// LeafOffset is subtracted from the prop center to place the leaves.
	LeafOffset cp.Vector
}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{
		Resolver:   component.NewCombatResolver(),
		LeafMin:    3,
		LeafMax:    6,
		LeafOffset: cp.Vector{X: 0, Y: 75},
	}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	defer s.Resolver.Tick()

	_, player, ok := w.Player()
	if !ok {
		return
	}

	var strikers []component.Striker
	var attacks []*components.Attack
	for _, e := range w.AttackSet().Entities() {
		if a := w.GetAttack(e); a != nil {
			strikers = append(strikers, a)
			attacks = append(attacks, a)
		}
	}
	if len(strikers) == 0 {
		return
	}

	var targets []component.Attackable
	var owners []ecs.Entity
	for _, e := range w.MonsterSet().Entities() {
		if m := w.GetMonster(e); m != nil {
			targets = append(targets, m)
			owners = append(owners, e)
		}
	}
	for _, e := range w.PropSet().Entities() {
		if p := w.GetProp(e); p != nil {
			targets = append(targets, p)
			owners = append(owners, e)
		}
	}

	now := w.Now()
	for _, c := range s.Resolver.Resolve(strikers, targets) {
		target := targets[c.Target]
		owner := owners[c.Target]
		if !w.IsAlive(owner) {
			continue
		}
		if target.Destructible() {
			s.cut(w, owner, target)
			continue
		}
		attack := attacks[c.Striker]
		hit := component.Hit{
			Kind:   attack.Kind,
			Amount: player.Damage(attack.Kind),
			Source: player.Center(),
			Type:   attack.Style,
		}
		if target.TakeHit(hit, now) {
			w.Events().Emit(components.EventPlaySound, components.PlaySound{Name: HitSound})
		}
	}
}

func (s *CombatSystem) cut(w *ecs.World, e ecs.Entity, target component.Attackable) {
	n := s.LeafMin
	if s.LeafMax > s.LeafMin {
		n += w.Rand().Intn(s.LeafMax - s.LeafMin + 1)
	}
	pos := target.TargetRect().Center().Sub(s.LeafOffset)
	var spawn cp.Vector
	if p := w.GetProp(e); p != nil {
		spawn = p.Spawn
	}
	for i := 0; i < n; i++ {
		w.Events().Emit(components.EventLeafParticles, components.LeafParticles{Pos: pos, Spawn: spawn})
	}
	w.DestroyEntity(e)
}
