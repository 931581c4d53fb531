package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/prefabs"
)

var (
	ErrUnknownWeapon = errors.New("entity: unknown weapon")
	ErrUnknownSpell  = errors.New("entity: unknown spell")
	ErrMissingStat   = errors.New("entity: missing stat")
)

// NewPlayer spawns the player with its visual rect's top-left at pos.
func NewPlayer(w *ecs.World, cat *prefabs.Catalog, pos cp.Vector) (ecs.Entity, error) {
	if cat == nil || cat.Player == nil {
		return 0, fmt.Errorf("player: nil catalog")
	}
	spec := cat.Player

	stats, err := statTable(spec.Stats)
	if err != nil {
		return 0, fmt.Errorf("player: stats: %w", err)
	}
	maxStats, err := statTable(spec.MaxStats)
	if err != nil {
		return 0, fmt.Errorf("player: max stats: %w", err)
	}
	costs, err := statTable(spec.UpgradeCost)
	if err != nil {
		return 0, fmt.Errorf("player: upgrade cost: %w", err)
	}

	weapons := make([]components.Weapon, 0, len(spec.Weapons))
	for _, name := range spec.Weapons {
		ws, ok := cat.Weapon(name)
		if !ok {
			return 0, fmt.Errorf("player: %w %q", ErrUnknownWeapon, name)
		}
		weapons = append(weapons, components.Weapon{
			Name:     ws.Name,
			Cooldown: ws.Cooldown(),
			Damage:   ws.Damage,
			Width:    ws.Width,
			Height:   ws.Height,
		})
	}
	spells := make([]components.Spell, 0, len(spec.Spells))
	for _, name := range spec.Spells {
		sp, ok := cat.Spell(name)
		if !ok {
			return 0, fmt.Errorf("player: %w %q", ErrUnknownSpell, name)
		}
		spells = append(spells, components.Spell{Name: sp.Name, Strength: sp.Strength, Cost: sp.Cost})
	}

	rect := common.NewRect(common.RoundInt(pos.X), common.RoundInt(pos.Y), spec.Width, spec.Height)
	vitals := component.NewHealth(stats[components.StatHealth], ms(spec.InvulnerabilityMS))
	vitals.Current = stats[components.StatHealth] * spec.StartHealthRatio
	switchCooldown := ms(spec.SwitchCooldownMS)

	p := &components.Player{
		Body: components.NewBody(rect, spec.HitboxInflate[0], spec.HitboxInflate[1]),
		Animation: components.Animation{
			FPS:     spec.Animation.FPS,
			Lengths: spec.Animation.Lengths,
		},
		Stats:          stats,
		MaxStats:       maxStats,
		UpgradeCost:    costs,
		Vitals:         *vitals,
		Energy:         stats[components.StatEnergy] * spec.StartEnergyRatio,
		Weapons:        weapons,
		Spells:         spells,
		AttackCooldown: ms(spec.AttackCooldownMS),
		WeaponSwitch:   component.NewTimer(switchCooldown),
		MagicSwitch:    component.NewTimer(switchCooldown),
		EnergyRecovery: spec.EnergyRecovery,
	}

	e := w.CreateEntity()
	w.SetPlayer(e, p)
	return e, nil
}

func statTable(in map[string]float64) (components.Stats, error) {
	out := make(components.Stats, len(components.StatOrder))
	for _, stat := range components.StatOrder {
		v, ok := in[string(stat)]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingStat, stat)
		}
		out[stat] = v
	}
	return out, nil
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
