package level

import "github.com/milk9111/overworld/ecs/components"

// ActorSnapshot is a read-only view of a player or monster.
type ActorSnapshot struct {
	Entity    string  `json:"entity"`
	Kind      string  `json:"kind"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Status    string  `json:"status"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	PathLen   int     `json:"path_len,omitempty"`
}

// Snapshot is a copy of the level state safe to hand to other goroutines.
type Snapshot struct {
	Level    string          `json:"level"`
	Frame    uint64          `json:"frame"`
	TimeMS   int64           `json:"time_ms"`
	Player   *ActorSnapshot  `json:"player,omitempty"`
	Energy   float64         `json:"energy"`
	Exp      float64         `json:"exp"`
	Monsters []ActorSnapshot `json:"monsters"`
	Attacks  int             `json:"attacks"`
	Effects  int             `json:"effects"`
}

// Snapshot copies the current state. Call it from the frame goroutine.
func (l *Level) Snapshot() Snapshot {
	if l == nil {
		return Snapshot{}
	}
	w := l.World
	snap := Snapshot{
		Level:    l.Name,
		Frame:    l.frame,
		TimeMS:   w.Now().Milliseconds(),
		Monsters: make([]ActorSnapshot, 0, w.MonsterSet().Len()),
		Attacks:  w.AttackSet().Len(),
		Effects:  w.EffectSet().Len(),
	}

	if p := l.Player(); p != nil {
		snap.Player = &ActorSnapshot{
			Entity:    l.player.String(),
			Kind:      "player",
			X:         p.Pos.X,
			Y:         p.Pos.Y,
			Status:    p.Status.String(),
			Health:    p.Vitals.Current,
			MaxHealth: p.Stats[components.StatHealth],
		}
		snap.Energy = p.Energy
		snap.Exp = p.Exp
	}

	for _, e := range w.MonsterSet().Entities() {
		m := w.GetMonster(e)
		if m == nil {
			continue
		}
		snap.Monsters = append(snap.Monsters, ActorSnapshot{
			Entity:    e.String(),
			Kind:      m.Kind,
			X:         m.Pos.X,
			Y:         m.Pos.Y,
			Status:    m.Behavior.String(),
			Health:    m.Vitals.Current,
			MaxHealth: m.Vitals.Max,
			PathLen:   len(m.Path.Nodes),
		})
	}
	return snap
}
