package components

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/common"
)

// Body is the shared movable and collidable state of players and monsters.
// Pos tracks the hitbox center with sub-pixel precision; Rect is the visual
// rect and always shares the hitbox center.
type Body struct {
	Pos       cp.Vector
	Rect      common.Rect
	Hitbox    common.Rect
	Direction cp.Vector
}

// NewBody places a body at the visual rect with the hitbox inflated by
// (dw, dh), usually negative.
func NewBody(rect common.Rect, dw, dh int) Body {
	hb := rect.Inflate(dw, dh)
	return Body{
		Pos:    hb.Center(),
		Rect:   rect,
		Hitbox: hb,
	}
}

// SyncRect recenters the visual rect on the hitbox.
func (b *Body) SyncRect() {
	if b == nil {
		return
	}
	b.Rect.SetCenter(b.Hitbox.CenterX(), b.Hitbox.CenterY())
}

// Center is the visual rect center, the reference point for distances.
func (b *Body) Center() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.Rect.Center()
}

// Teleport moves the body so that its hitbox is centered at p.
func (b *Body) Teleport(p cp.Vector) {
	if b == nil {
		return
	}
	b.Pos = p
	b.Hitbox.SetCenter(common.RoundInt(p.X), common.RoundInt(p.Y))
	b.SyncRect()
}

// Mover is anything the movement resolver can displace.
type Mover interface {
	Kinematics() *Body
	// MoveSpeed is the current speed in pixels per second.
	MoveSpeed() float64
}

// Obstacle is a static impassable hitbox such as a boundary or an object.
type Obstacle struct {
	Kind   string
	Hitbox common.Rect
}
