package components

import (
	"time"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
)

// Stat names a player attribute.
type Stat string

const (
	StatHealth Stat = "health"
	StatEnergy Stat = "energy"
	StatAttack Stat = "attack"
	StatMagic  Stat = "magic"
	StatSpeed  Stat = "speed"
)

// StatOrder is the display and save order of player stats.
var StatOrder = []Stat{StatHealth, StatEnergy, StatAttack, StatMagic, StatSpeed}

// Stats maps each stat to a value.
type Stats map[Stat]float64

// Clone returns an independent copy.
func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Weapon is an entry of the weapon catalog.
type Weapon struct {
	Name     string
	Cooldown time.Duration
	Damage   float64
	// Width and Height describe the hitbox when swung left or right; up and
	// down swings use the transposed size.
	Width  int
	Height int
}

// Spell is an entry of the magic catalog.
type Spell struct {
	Name     string
	Strength float64
	Cost     float64
}

// Player is the controllable character.
type Player struct {
	Body
	Animation Animation
	Status    Status
	Input     InputState

	Stats       Stats
	MaxStats    Stats
	UpgradeCost Stats

	// Vitals.Max mirrors Stats[StatHealth].
	Vitals component.Health
	Energy float64
	Exp    float64

	Weapons     []Weapon
	Spells      []Spell
	WeaponIndex int
	MagicIndex  int

	Attacking      bool
	AttackCooldown time.Duration
	AttackTimer    component.Timer
	WeaponSwitch   component.Timer
	MagicSwitch    component.Timer

	// EnergyRecovery is the fraction of the magic stat regained per 1/60 s.
	EnergyRecovery float64
}

func (p *Player) Kinematics() *Body {
	if p == nil {
		return nil
	}
	return &p.Body
}

func (p *Player) MoveSpeed() float64 {
	if p == nil {
		return 0
	}
	return p.Stats[StatSpeed]
}

// Weapon returns the selected weapon.
func (p *Player) Weapon() Weapon {
	if p == nil || len(p.Weapons) == 0 {
		return Weapon{}
	}
	return p.Weapons[p.WeaponIndex%len(p.Weapons)]
}

// Spell returns the selected spell.
func (p *Player) Spell() Spell {
	if p == nil || len(p.Spells) == 0 {
		return Spell{}
	}
	return p.Spells[p.MagicIndex%len(p.Spells)]
}

// WeaponDamage is the attack stat plus the selected weapon's damage.
func (p *Player) WeaponDamage() float64 {
	if p == nil {
		return 0
	}
	return p.Stats[StatAttack] + p.Weapon().Damage
}

// MagicDamage is the magic stat plus the selected spell's strength.
func (p *Player) MagicDamage() float64 {
	if p == nil {
		return 0
	}
	return p.Stats[StatMagic] + p.Spell().Strength
}

// Damage returns the full damage for an attack of the given kind.
func (p *Player) Damage(kind component.AttackKind) float64 {
	if kind == component.AttackMagic {
		return p.MagicDamage()
	}
	return p.WeaponDamage()
}

// WeaponRect places the selected weapon's hitbox beside the player's visual
// rect according to facing.
func (p *Player) WeaponRect() common.Rect {
	if p == nil {
		return common.Rect{}
	}
	w := p.Weapon()
	r := p.Rect
	switch p.Status.Facing {
	case FacingRight:
		box := common.Rect{W: w.Width, H: w.Height}
		box.SetLeft(r.Right())
		box.SetCenterY(r.CenterY() + 16)
		return box
	case FacingLeft:
		box := common.Rect{W: w.Width, H: w.Height}
		box.SetRight(r.Left())
		box.SetCenterY(r.CenterY() + 16)
		return box
	case FacingUp:
		box := common.Rect{W: w.Height, H: w.Width}
		box.SetBottom(r.Top())
		box.SetCenterX(r.CenterX() - 10)
		return box
	}
	box := common.Rect{W: w.Height, H: w.Width}
	box.SetTop(r.Bottom())
	box.SetCenterX(r.CenterX() - 10)
	return box
}

// Dead reports whether the player has run out of health.
func (p *Player) Dead() bool {
	return p != nil && p.Vitals.Current <= 0
}
