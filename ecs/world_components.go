package ecs

import "github.com/milk9111/overworld/ecs/components"

// PlayerSet returns the player records storage.
func (w *World) PlayerSet() *SparseSet {
	if w == nil {
		return nil
	}
	if w.players == nil {
		w.players = &SparseSet{}
	}
	return w.players
}

// SetPlayer attaches a player component.
func (w *World) SetPlayer(e Entity, v *components.Player) {
	if w == nil || v == nil || !w.IsAlive(e) {
		return
	}
	w.PlayerSet().Set(e, v)
}

// GetPlayer returns a player component.
func (w *World) GetPlayer(e Entity) *components.Player {
	if w == nil {
		return nil
	}
	if v, ok := w.PlayerSet().Get(e).(*components.Player); ok {
		return v
	}
	return nil
}

// MonsterSet returns the monster records storage.
func (w *World) MonsterSet() *SparseSet {
	if w == nil {
		return nil
	}
	if w.monsters == nil {
		w.monsters = &SparseSet{}
	}
	return w.monsters
}

// SetMonster attaches a monster component.
func (w *World) SetMonster(e Entity, v *components.Monster) {
	if w == nil || v == nil || !w.IsAlive(e) {
		return
	}
	w.MonsterSet().Set(e, v)
}

// GetMonster returns a monster component.
func (w *World) GetMonster(e Entity) *components.Monster {
	if w == nil {
		return nil
	}
	if v, ok := w.MonsterSet().Get(e).(*components.Monster); ok {
		return v
	}
	return nil
}

// ObstacleSet returns the static obstacles storage.
func (w *World) ObstacleSet() *SparseSet {
	if w == nil {
		return nil
	}
	if w.obstacles == nil {
		w.obstacles = &SparseSet{}
	}
	return w.obstacles
}

// SetObstacle attaches a obstacle component.
func (w *World) SetObstacle(e Entity, v *components.Obstacle) {
	if w == nil || v == nil || !w.IsAlive(e) {
		return
	}
	w.ObstacleSet().Set(e, v)
}

// GetObstacle returns a obstacle component.
func (w *World) GetObstacle(e Entity) *components.Obstacle {
	if w == nil {
		return nil
	}
	if v, ok := w.ObstacleSet().Get(e).(*components.Obstacle); ok {
		return v
	}
	return nil
}

// PropSet returns the destructible props storage.
func (w *World) PropSet() *SparseSet {
	if w == nil {
		return nil
	}
	if w.props == nil {
		w.props = &SparseSet{}
	}
	return w.props
}

// SetProp attaches a prop component.
func (w *World) SetProp(e Entity, v *components.Prop) {
	if w == nil || v == nil || !w.IsAlive(e) {
		return
	}
	w.PropSet().Set(e, v)
}

// GetProp returns a prop component.
func (w *World) GetProp(e Entity) *components.Prop {
	if w == nil {
		return nil
	}
	if v, ok := w.PropSet().Get(e).(*components.Prop); ok {
		return v
	}
	return nil
}

// AttackSet returns the active attack hitboxes storage.
func (w *World) AttackSet() *SparseSet {
	if w == nil {
		return nil
	}
	if w.attacks == nil {
		w.attacks = &SparseSet{}
	}
	return w.attacks
}

// SetAttack attaches a attack component.
func (w *World) SetAttack(e Entity, v *components.Attack) {
	if w == nil || v == nil || !w.IsAlive(e) {
		return
	}
	w.AttackSet().Set(e, v)
}

// GetAttack returns a attack component.
func (w *World) GetAttack(e Entity) *components.Attack {
	if w == nil {
		return nil
	}
	if v, ok := w.AttackSet().Get(e).(*components.Attack); ok {
		return v
	}
	return nil
}

// EffectSet returns the particle effects storage.
func (w *World) EffectSet() *SparseSet {
	if w == nil {
		return nil
	}
	if w.effects == nil {
		w.effects = &SparseSet{}
	}
	return w.effects
}

// SetEffect attaches a effect component.
func (w *World) SetEffect(e Entity, v *components.Effect) {
	if w == nil || v == nil || !w.IsAlive(e) {
		return
	}
	w.EffectSet().Set(e, v)
}

// GetEffect returns a effect component.
func (w *World) GetEffect(e Entity) *components.Effect {
	if w == nil {
		return nil
	}
	if v, ok := w.EffectSet().Get(e).(*components.Effect); ok {
		return v
	}
	return nil
}

// Player returns the first player entity, if any.
func (w *World) Player() (Entity, *components.Player, bool) {
	if w == nil {
		return 0, nil, false
	}
	for _, e := range w.PlayerSet().Entities() {
		if p := w.GetPlayer(e); p != nil {
			return e, p, true
		}
	}
	return 0, nil, false
}

// Movers returns every entity the movement resolver should displace, players
// first.
func (w *World) Movers() []components.Mover {
	if w == nil {
		return nil
	}
	out := make([]components.Mover, 0, w.PlayerSet().Len()+w.MonsterSet().Len())
	for _, e := range w.PlayerSet().Entities() {
		if p := w.GetPlayer(e); p != nil {
			out = append(out, p)
		}
	}
	for _, e := range w.MonsterSet().Entities() {
		if m := w.GetMonster(e); m != nil {
			out = append(out, m)
		}
	}
	return out
}
