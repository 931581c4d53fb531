package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/logger"
)

// DeathSound is played when a monster dies.
const DeathSound = "death"

// DeathSystem removes monsters whose health ran out and announces the kill.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem {
	return &DeathSystem{}
}

func (s *DeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.MonsterSet().Entities() {
		m := w.GetMonster(e)
		if m == nil || !m.Dead() {
			continue
		}
		center := m.Center()
		events := w.Events()
		events.Emit(components.EventDeathParticles, components.DeathParticles{Pos: center, Kind: m.Kind, Spawn: m.Spawn})
		events.Emit(components.EventGrantExperience, components.GrantExperience{Amount: m.Exp})
		if m.SeenPlayer {
			events.Emit(components.EventExpParticles, components.ExpParticles{From: center, To: m.LastPlayerPos, Amount: m.Exp})
		}
		events.Emit(components.EventPlaySound, components.PlaySound{Name: DeathSound})

		logger.Log.WithFields(logrus.Fields{
			"monster": m.Kind,
			"entity":  e.String(),
			"exp":     m.Exp,
		}).Debug("monster died")
		w.DestroyEntity(e)
	}
}
