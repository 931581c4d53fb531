package ecs

import (
	"math/rand"
	"time"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
)

// World owns entities, components, and the per-frame clock.
type World struct {
	entities entityStore
	events   EventQueue

	players   *SparseSet
	monsters  *SparseSet
	obstacles *SparseSet
	props     *SparseSet
	attacks   *SparseSet
	effects   *SparseSet

	grid *component.Grid
	rng  *rand.Rand

	width, height int
	now           time.Duration
	dt            float64
}

// NewWorld creates an empty ECS world with a seeded random source.
func NewWorld(seed int64) *World {
	return &World{rng: rand.New(rand.NewSource(seed))}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity drops every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range []*SparseSet{w.players, w.monsters, w.obstacles, w.props, w.attacks, w.effects} {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.len()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Advance sets the frame clock. now is the time since the session started and
// dt the frame length in seconds.
func (w *World) Advance(now time.Duration, dt float64) {
	if w == nil {
		return
	}
	w.now = now
	w.dt = dt
}

// Now returns the current frame time.
func (w *World) Now() time.Duration {
	if w == nil {
		return 0
	}
	return w.now
}

// DT returns the current frame length in seconds.
func (w *World) DT() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Rand returns the world's seeded random source.
func (w *World) Rand() *rand.Rand {
	if w == nil {
		return nil
	}
	return w.rng
}

// SetBounds records the world size in pixels.
func (w *World) SetBounds(width, height int) {
	if w == nil {
		return
	}
	w.width, w.height = width, height
}

// Bounds returns the world size in pixels.
func (w *World) Bounds() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

// SetGrid attaches the walkability grid built at level load.
func (w *World) SetGrid(g *component.Grid) {
	if w == nil {
		return
	}
	w.grid = g
}

// Grid returns the walkability grid, if any.
func (w *World) Grid() *component.Grid {
	if w == nil {
		return nil
	}
	return w.grid
}

// Obstacles returns every hitbox that blocks movement: impassable obstacles
// followed by live props.
func (w *World) Obstacles() []common.Rect {
	if w == nil {
		return nil
	}
	out := make([]common.Rect, 0, w.ObstacleSet().Len()+w.PropSet().Len())
	for _, e := range w.ObstacleSet().Entities() {
		if o := w.GetObstacle(e); o != nil {
			out = append(out, o.Hitbox)
		}
	}
	for _, e := range w.PropSet().Entities() {
		if p := w.GetProp(e); p != nil {
			out = append(out, p.Hitbox)
		}
	}
	return out
}

// ImpassableHitboxes returns only the static obstacles; props are excluded.
func (w *World) ImpassableHitboxes() []common.Rect {
	if w == nil {
		return nil
	}
	out := make([]common.Rect, 0, w.ObstacleSet().Len())
	for _, e := range w.ObstacleSet().Entities() {
		if o := w.GetObstacle(e); o != nil {
			out = append(out, o.Hitbox)
		}
	}
	return out
}
