package system

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
)

// WeaponSound is played when the player swings a weapon.
const WeaponSound = "weapon"

const referenceFPS = 60.0

// PlayerControllerSystem turns the player's input into a direction, attacks,
// spells and equipment switches, derives the animation status and recovers
// energy.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.PlayerSet().Entities() {
		p := w.GetPlayer(e)
		if p == nil {
			continue
		}
		s.handleInput(w, p)
		updateStatus(p)
		recoverEnergy(p, w.DT())
	}
}

func (s *PlayerControllerSystem) handleInput(w *ecs.World, p *components.Player) {
	if p.Attacking {
		return
	}
	now := w.Now()
	in := p.Input

	var dir cp.Vector
	switch {
	case in.Up:
		dir.Y = -1
		p.Status.Facing = components.FacingUp
	case in.Down:
		dir.Y = 1
		p.Status.Facing = components.FacingDown
	}
	switch {
	case in.Right:
		dir.X = 1
		p.Status.Facing = components.FacingRight
	case in.Left:
		dir.X = -1
		p.Status.Facing = components.FacingLeft
	}
	p.Direction = dir

	if in.Attack {
		startAttack(p, now)
		w.Events().Emit(components.EventCreateAttack, nil)
		w.Events().Emit(components.EventPlaySound, components.PlaySound{Name: WeaponSound})
	}
	if in.Magic {
		startAttack(p, now)
		spell := p.Spell()
		w.Events().Emit(components.EventCreateMagic, components.CreateMagic{
			Style:    spell.Name,
			Strength: spell.Strength + p.Stats[components.StatMagic],
			Cost:     spell.Cost,
		})
	}

	if in.SwitchWeapon && !p.WeaponSwitch.Running() && len(p.Weapons) > 0 {
		p.WeaponSwitch.Start(now)
		p.WeaponIndex = (p.WeaponIndex + 1) % len(p.Weapons)
	}
	if in.SwitchMagic && !p.MagicSwitch.Running() && len(p.Spells) > 0 {
		p.MagicSwitch.Start(now)
		p.MagicIndex = (p.MagicIndex + 1) % len(p.Spells)
	}
}

// startAttack locks movement for the base attack cooldown plus the selected
// weapon's cooldown.
func startAttack(p *components.Player, now time.Duration) {
	p.Attacking = true
	p.AttackTimer.Duration = p.AttackCooldown + p.Weapon().Cooldown
	p.AttackTimer.Start(now)
}

func updateStatus(p *components.Player) {
	switch {
	case p.Attacking:
		p.Direction = cp.Vector{}
		p.Status.Activity = components.ActivityAttacking
	case common.IsZero(p.Direction):
		p.Status.Activity = components.ActivityIdle
	default:
		p.Status.Activity = components.ActivityMoving
	}
}

// recoverEnergy regains a fraction of the magic stat per reference frame,
// capped at the energy stat.
func recoverEnergy(p *components.Player, dt float64) {
	limit := p.Stats[components.StatEnergy]
	if p.Energy < limit {
		p.Energy += p.EnergyRecovery * p.Stats[components.StatMagic] * dt * referenceFPS
	}
	if p.Energy > limit {
		p.Energy = limit
	}
}
