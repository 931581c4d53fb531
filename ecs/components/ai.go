package components

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
)

// Path is a monster's remaining route, next cell first.
type Path struct {
	Nodes []component.Cell
	// Goal is the player cell the route was computed for.
	Goal       component.Cell
	HasGoal    bool
	LastRecalc time.Duration
}

// Clear drops the remaining nodes.
func (p *Path) Clear() {
	if p == nil {
		return
	}
	p.Nodes = nil
}

// Next returns the next cell to walk to.
func (p *Path) Next() (component.Cell, bool) {
	if p == nil || len(p.Nodes) == 0 {
		return component.Cell{}, false
	}
	return p.Nodes[0], true
}

// Pop removes the next cell.
func (p *Path) Pop() {
	if p == nil || len(p.Nodes) == 0 {
		return
	}
	p.Nodes = p.Nodes[1:]
}

// Monster is an enemy record. Combat tuning comes from the monster prefab.
type Monster struct {
	Body
	Animation Animation

	Kind   string
	Vitals component.Health

	Exp          float64
	Damage       float64
	Speed        float64
	Resistance   float64
	AttackRadius float64
	NoticeRadius float64
	AttackType   string
	AttackSound  string

	Behavior       Behavior
	CanAttack      bool
	AttackCooldown component.Timer
	// Knockback is the unit vector toward the last attacker, set on hit.
	Knockback cp.Vector
	Path      Path

	LastPlayerPos cp.Vector
	SeenPlayer    bool

	// Spawn is the level placement, used to suppress respawns after a save.
	Spawn cp.Vector
}

func (m *Monster) Kinematics() *Body {
	if m == nil {
		return nil
	}
	return &m.Body
}

// MoveSpeed is the walk speed, multiplied by resistance while flinching.
func (m *Monster) MoveSpeed() float64 {
	if m == nil {
		return 0
	}
	if !m.Vitals.Vulnerable() {
		return m.Speed * m.Resistance
	}
	return m.Speed
}

func (m *Monster) TargetRect() common.Rect {
	if m == nil {
		return common.Rect{}
	}
	return m.Rect
}

func (m *Monster) Destructible() bool { return false }

// TakeHit applies damage unless the monster is still inside its vulnerability
// window, and records the knockback direction.
func (m *Monster) TakeHit(hit component.Hit, now time.Duration) bool {
	if m == nil {
		return false
	}
	if !m.Vitals.ApplyDamage(hit, now) {
		return false
	}
	m.Knockback = common.Unit(hit.Source.Sub(m.Center()))
	return true
}

// Dead reports whether the monster should be removed.
func (m *Monster) Dead() bool {
	return m != nil && m.Vitals.Current <= 0
}
