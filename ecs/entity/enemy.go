package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/prefabs"
)

var ErrUnknownMonster = errors.New("entity: unknown monster")

// NewMonster spawns a monster of kind with its visual rect's top-left at pos.
func NewMonster(w *ecs.World, cat *prefabs.Catalog, kind string, pos cp.Vector) (ecs.Entity, error) {
	if cat == nil || cat.World == nil {
		return 0, fmt.Errorf("monster: nil catalog")
	}
	spec, ok := cat.Monsters[kind]
	if !ok {
		return 0, fmt.Errorf("monster: %w %q", ErrUnknownMonster, kind)
	}

	rect := common.NewRect(common.RoundInt(pos.X), common.RoundInt(pos.Y), spec.Width, spec.Height)
	vitals := component.NewHealth(spec.Health, ms(cat.World.MonsterInvulnerabilityMS))

	m := &components.Monster{
		Body: components.NewBody(rect, spec.HitboxInflate[0], spec.HitboxInflate[1]),
		Animation: components.Animation{
			FPS:     spec.Animation.FPS,
			Lengths: spec.Animation.Lengths,
		},
		Kind:           kind,
		Vitals:         *vitals,
		Exp:            spec.Exp,
		Damage:         spec.Damage,
		Speed:          spec.Speed,
		Resistance:     spec.Resistance,
		AttackRadius:   spec.AttackRadius,
		NoticeRadius:   spec.NoticeRadius,
		AttackType:     spec.AttackType,
		AttackSound:    spec.AttackSound,
		CanAttack:      true,
		AttackCooldown: component.NewTimer(ms(cat.World.MonsterAttackCooldownMS)),
		Spawn:          pos,
	}

	e := w.CreateEntity()
	w.SetMonster(e, m)
	return e, nil
}

// RetuneMonsters reapplies combat tuning to every live monster, keeping
// position, health and state.
func RetuneMonsters(w *ecs.World, specs prefabs.MonsterSpecs) int {
	n := 0
	for _, e := range w.MonsterSet().Entities() {
		m := w.GetMonster(e)
		if m == nil {
			continue
		}
		spec, ok := specs[m.Kind]
		if !ok {
			continue
		}
		m.Exp = spec.Exp
		m.Damage = spec.Damage
		m.Speed = spec.Speed
		m.Resistance = spec.Resistance
		m.AttackRadius = spec.AttackRadius
		m.NoticeRadius = spec.NoticeRadius
		m.AttackType = spec.AttackType
		m.AttackSound = spec.AttackSound
		m.Vitals.SetMax(spec.Health)
		n++
	}
	return n
}
