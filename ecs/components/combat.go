package components

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
)

// Attack is an active attack hitbox: a weapon swing or one flame burst.
type Attack struct {
	Kind  component.AttackKind
	Style string
	Rect  common.Rect
	// Lifetime removes magic bursts; weapon swings live until destroyed.
	Lifetime component.Timer
}

func (a *Attack) StrikeRect() common.Rect {
	if a == nil {
		return common.Rect{}
	}
	return a.Rect
}

func (a *Attack) StrikeKind() component.AttackKind {
	if a == nil {
		return component.AttackWeapon
	}
	return a.Kind
}

// Prop is a destructible obstacle such as grass. It blocks movement but is
// left out of the walkability grid.
type Prop struct {
	Kind    string
	Variant int
	Rect    common.Rect
	Hitbox  common.Rect
	Spawn   cp.Vector
}

func (p *Prop) TargetRect() common.Rect {
	if p == nil {
		return common.Rect{}
	}
	return p.Rect
}

func (p *Prop) Destructible() bool { return true }

// TakeHit never applies damage; props are removed by the combat system.
func (p *Prop) TakeHit(component.Hit, time.Duration) bool { return false }
