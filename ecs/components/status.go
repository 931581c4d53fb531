package components

// Facing is the last direction an entity looked in.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	}
	return "down"
}

// Activity is what an entity is doing while facing somewhere.
type Activity int

const (
	ActivityIdle Activity = iota
	ActivityMoving
	ActivityAttacking
)

// Status is the player's animation state.
type Status struct {
	Facing   Facing
	Activity Activity
}

// String returns the animation tag, e.g. "down_idle", "left" or "up_attack".
func (s Status) String() string {
	switch s.Activity {
	case ActivityIdle:
		return s.Facing.String() + "_idle"
	case ActivityAttacking:
		return s.Facing.String() + "_attack"
	}
	return s.Facing.String()
}

// Behavior is a monster's combat state.
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorMove
	BehaviorAttack
)

func (b Behavior) String() string {
	switch b {
	case BehaviorMove:
		return "move"
	case BehaviorAttack:
		return "attack"
	}
	return "idle"
}
