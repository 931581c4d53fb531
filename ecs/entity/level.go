package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/levels"
	"github.com/milk9111/overworld/logger"
	"github.com/milk9111/overworld/prefabs"
)

// LoadOptions filters what a level load spawns.
type LoadOptions struct {
	// SkipMonster suppresses monsters whose spawn point was recorded as
	// defeated.
	SkipMonster func(pos cp.Vector) bool
	// SkipProp suppresses props whose spawn point was recorded as destroyed.
	SkipProp func(pos cp.Vector) bool
}

// Loaded is what LoadLevelToWorld produced.
type Loaded struct {
	Player   ecs.Entity
	Monsters int
	Props    int
	Skipped  int
}

// LoadLevelToWorld populates world from lvl: static obstacles, props,
// monsters and the player, then builds the walkability grid from the
// impassable obstacles only.
func LoadLevelToWorld(world *ecs.World, cat *prefabs.Catalog, lvl *levels.Level, opts LoadOptions) (*Loaded, error) {
	if world == nil || cat == nil || lvl == nil {
		return nil, fmt.Errorf("level: nil argument")
	}
	tile := lvl.TileSize
	width, height := lvl.PixelSize()
	world.SetBounds(width, height)

	out := &Loaded{}
	lvl.Tiles(func(ch rune, x, y int) {
		rect := common.NewRect(x, y, tile, tile)
		switch ch {
		case levels.TileBoundary:
			addObstacle(world, "boundary", rect, inflateFor(cat, "boundary"))
		case levels.TileObject:
			addObstacle(world, "object", rect, inflateFor(cat, "object"))
		case levels.TileGrass:
			spawn := cp.Vector{X: float64(x), Y: float64(y)}
			if opts.SkipProp != nil && opts.SkipProp(spawn) {
				out.Skipped++
				return
			}
			in := inflateFor(cat, "grass")
			e := world.CreateEntity()
			world.SetProp(e, &components.Prop{
				Kind:    "grass",
				Variant: (x/tile + y/tile) % 3,
				Rect:    rect,
				Hitbox:  rect.Inflate(in[0], in[1]),
				Spawn:   spawn,
			})
			out.Props++
		}
	})

	for _, o := range lvl.Objects {
		addObstacle(world, o.Kind, common.NewRect(o.X, o.Y, o.Width, o.Height), inflateFor(cat, "object"))
	}

	for _, s := range lvl.Spawns() {
		pos := cp.Vector{X: float64(s.X), Y: float64(s.Y)}
		if s.Type == "player" {
			if out.Player.Valid() {
				logger.Log.WithField("level", lvl.Name).Warn("extra player spawn ignored")
				continue
			}
			e, err := NewPlayer(world, cat, pos)
			if err != nil {
				return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
			}
			out.Player = e
			continue
		}
		if opts.SkipMonster != nil && opts.SkipMonster(pos) {
			out.Skipped++
			continue
		}
		if _, err := NewMonster(world, cat, s.Type, pos); err != nil {
			return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
		}
		out.Monsters++
	}

	world.SetGrid(component.BuildGrid(width, height, tile, world.ImpassableHitboxes()))

	logger.Log.WithFields(logrus.Fields{
		"level":    lvl.Name,
		"monsters": out.Monsters,
		"props":    out.Props,
		"skipped":  out.Skipped,
	}).Info("level loaded")
	return out, nil
}

func addObstacle(world *ecs.World, kind string, rect common.Rect, in prefabs.Inflate) {
	hb := rect.Inflate(in[0], in[1])
	if hb.Empty() {
		logger.Log.WithFields(logrus.Fields{
			"kind": kind,
			"x":    rect.X,
			"y":    rect.Y,
		}).Warn("zero-size obstacle hitbox skipped")
		return
	}
	e := world.CreateEntity()
	world.SetObstacle(e, &components.Obstacle{Kind: kind, Hitbox: hb})
}

func inflateFor(cat *prefabs.Catalog, kind string) prefabs.Inflate {
	if cat == nil || cat.World == nil {
		return prefabs.Inflate{}
	}
	return cat.World.HitboxInflate[kind]
}
