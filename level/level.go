package level

import (
	"errors"
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/ecs/system"
	"github.com/milk9111/overworld/levels"
	"github.com/milk9111/overworld/logger"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/save"
)

var (
	ErrNotEnoughExp = errors.New("level: not enough experience")
	ErrStatMaxed    = errors.New("level: stat already at maximum")
	ErrUnknownStat  = errors.New("level: unknown stat")
	ErrNoPlayer     = errors.New("level: no player")
)

// Options configures New.
type Options struct {
	// Seed overrides the catalog seed when non-zero.
	Seed int64
	// State restores player progress and suppresses cleared spawns.
	State *save.State
}

// Level runs one loaded map: it owns the world, steps the systems in frame
// order and applies the events they emit.
type Level struct {
	Name      string
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Catalog   *prefabs.Catalog

	player ecs.Entity
	attack ecs.Entity
	frame  uint64

	defeated  pointSet
	destroyed pointSet
	sounds    []string
}

// New builds the world for lvl. Monsters and grass recorded in opts.State as
// cleared are not spawned.
func New(cat *prefabs.Catalog, lvl *levels.Level, opts Options) (*Level, error) {
	if cat == nil || cat.World == nil || lvl == nil {
		return nil, fmt.Errorf("level: nil catalog or level")
	}
	seed := opts.Seed
	if seed == 0 {
		seed = cat.World.Seed
	}

	l := &Level{
		Name:    lvl.Name,
		World:   ecs.NewWorld(seed),
		Catalog: cat,
	}
	st := opts.State
	foreign := st != nil && st.Level != "" && st.Level != lvl.Name
	if foreign {
		logger.Log.WithFields(logrus.Fields{
			"save":  st.Level,
			"level": lvl.Name,
		}).Warn("save belongs to another level, ignoring cleared spawns and position")
	} else if st != nil {
		l.defeated.addAll(st.DefeatedMonsters)
		l.destroyed.addAll(st.DestroyedGrass)
	}

	loaded, err := entity.LoadLevelToWorld(l.World, cat, lvl, entity.LoadOptions{
		SkipMonster: l.defeated.hasVector,
		SkipProp:    l.destroyed.hasVector,
	})
	if err != nil {
		return nil, err
	}
	l.player = loaded.Player
	if !l.player.Valid() {
		return nil, fmt.Errorf("%w in %s", ErrNoPlayer, lvl.Name)
	}
	if st != nil {
		if err := l.restorePlayer(st.Player, !foreign); err != nil {
			return nil, err
		}
	}

	l.Scheduler = ecs.NewScheduler(newSystems(cat.World)...)
	return l, nil
}

func newSystems(ws *prefabs.WorldSpec) []ecs.System {
	enemy := system.NewEnemySystem()
	if ws.PathRecalcMS > 0 {
		enemy.RecalcInterval = time.Duration(ws.PathRecalcMS) * time.Millisecond
	}
	if ws.NodeReach > 0 {
		enemy.NodeReach = ws.NodeReach
	}

	combat := system.NewCombatSystem()
	if ws.LeafCount[1] > 0 {
		combat.LeafMin, combat.LeafMax = ws.LeafCount[0], ws.LeafCount[1]
	}
	combat.LeafOffset = cp.Vector{X: ws.LeafOffset[0], Y: ws.LeafOffset[1]}

	return []ecs.System{
		system.NewPlayerControllerSystem(),
		enemy,
		system.NewMovementSystem(),
		system.NewAnimationSystem(),
		system.NewCooldownSystem(),
		combat,
		system.NewDeathSystem(),
		system.NewTTLSystem(),
	}
}

// Step runs one frame. now is the session time and dt the frame length in
// seconds.
func (l *Level) Step(now time.Duration, dt float64, in components.InputState) {
	if l == nil {
		return
	}
	l.frame++
	l.World.Advance(now, dt)
	if p := l.Player(); p != nil {
		p.Input = in
	}
	l.Scheduler.Update(l.World)
	l.applyEvents()
}

// Player returns the player record, or nil once it is gone.
func (l *Level) Player() *components.Player {
	if l == nil {
		return nil
	}
	return l.World.GetPlayer(l.player)
}

// Frame is the number of steps run so far.
func (l *Level) Frame() uint64 {
	if l == nil {
		return 0
	}
	return l.frame
}

// DrainSounds returns the sounds requested since the last call.
func (l *Level) DrainSounds() []string {
	if l == nil || len(l.sounds) == 0 {
		return nil
	}
	out := l.sounds
	l.sounds = nil
	return out
}

// Retune reapplies monster tuning after a prefab reload.
func (l *Level) Retune(specs prefabs.MonsterSpecs) int {
	if l == nil {
		return 0
	}
	l.Catalog.Monsters = specs
	return entity.RetuneMonsters(l.World, specs)
}
