package components

import "github.com/jakecoffman/cp"

// Event type tags pushed to the world event queue by systems and drained by
// the level once per frame.
const (
	EventCreateAttack    = "create_attack"
	EventDestroyAttack   = "destroy_attack"
	EventCreateMagic     = "create_magic"
	EventDamagePlayer    = "damage_player"
	EventDeathParticles  = "death_particles"
	EventGrantExperience = "grant_experience"
	EventExpParticles    = "exp_particles"
	EventLeafParticles   = "leaf_particles"
	EventPlaySound       = "play_sound"
)

type CreateMagic struct {
	Style    string
	Strength float64
	Cost     float64
}

type DamagePlayer struct {
	Amount     float64
	AttackType string
}

// DeathParticles also carries the monster's level placement so the kill can
// be persisted.
type DeathParticles struct {
	Pos   cp.Vector
	Kind  string
	Spawn cp.Vector
}

type GrantExperience struct {
	Amount float64
}

type ExpParticles struct {
	From   cp.Vector
	To     cp.Vector
	Amount float64
}

type LeafParticles struct {
	Pos   cp.Vector
	Spawn cp.Vector
}

type PlaySound struct {
	Name string
}
