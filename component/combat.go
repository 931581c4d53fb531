package component

import "github.com/jakecoffman/cp"

// AttackKind tags an attack hitbox with its damage source.
type AttackKind string

const (
	AttackWeapon AttackKind = "weapon"
	AttackMagic  AttackKind = "magic"
)

// Hit describes one landed attack.
type Hit struct {
	Kind   AttackKind
	Amount float64
	// Source is the attacker's center at the time of the hit.
	Source cp.Vector
	// Type is the attack flavour used for particles, e.g. "slash" or "flame".
	Type string
}
