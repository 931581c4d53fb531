package system

import (
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
)

// Move advances b along its direction at speed px/s for dt seconds. Each axis
// is resolved separately, x before y: after displacing on an axis, the hitbox
// is snapped flush against every obstacle it overlaps on the side it moved
// toward. Pos keeps its sub-pixel value unless a snap happened.
func Move(b *components.Body, speed, dt float64, obstacles []common.Rect) {
	if b == nil {
		return
	}
	if !common.IsZero(b.Direction) {
		b.Direction = common.Unit(b.Direction)
	}
	dir := b.Direction

	b.Pos.X += dir.X * speed * dt
	b.Hitbox.SetCenterX(common.RoundInt(b.Pos.X))
	if collideHorizontal(b, dir.X, obstacles) {
		b.Pos.X = float64(b.Hitbox.CenterX())
	}

	b.Pos.Y += dir.Y * speed * dt
	b.Hitbox.SetCenterY(common.RoundInt(b.Pos.Y))
	if collideVertical(b, dir.Y, obstacles) {
		b.Pos.Y = float64(b.Hitbox.CenterY())
	}

	b.SyncRect()
}

func collideHorizontal(b *components.Body, dx float64, obstacles []common.Rect) bool {
	snapped := false
	for _, o := range obstacles {
		if !o.Intersects(b.Hitbox) {
			continue
		}
		switch {
		case dx > 0:
			b.Hitbox.SetRight(o.Left())
			snapped = true
		case dx < 0:
			b.Hitbox.SetLeft(o.Right())
			snapped = true
		}
	}
	return snapped
}

func collideVertical(b *components.Body, dy float64, obstacles []common.Rect) bool {
	snapped := false
	for _, o := range obstacles {
		if !o.Intersects(b.Hitbox) {
			continue
		}
		switch {
		case dy > 0:
			b.Hitbox.SetBottom(o.Top())
			snapped = true
		case dy < 0:
			b.Hitbox.SetTop(o.Bottom())
			snapped = true
		}
	}
	return snapped
}

// MovementSystem moves every player and monster against the world's
// obstacles.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	obstacles := w.Obstacles()
	dt := w.DT()
	for _, m := range w.Movers() {
		Move(m.Kinematics(), m.MoveSpeed(), dt, obstacles)
	}
}
