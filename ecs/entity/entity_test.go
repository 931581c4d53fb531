package entity

import (
	"os"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/levels"
	"github.com/milk9111/overworld/logger"
	"github.com/milk9111/overworld/prefabs"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func loadCatalog(t *testing.T) *prefabs.Catalog {
	t.Helper()
	cat, err := prefabs.LoadCatalog()
	require.NoError(t, err)
	return cat
}

func TestNewPlayer(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld(1)

	e, err := NewPlayer(w, cat, cp.Vector{X: 128, Y: 128})
	require.NoError(t, err)
	p := w.GetPlayer(e)
	require.NotNil(t, p)

	assert.Equal(t, 50.0, p.Vitals.Current)
	assert.Equal(t, 100.0, p.Vitals.Max)
	assert.InDelta(t, 48.0, p.Energy, 1e-9)
	assert.Equal(t, 500*time.Millisecond, p.Vitals.Invulnerable.Duration)
	assert.Equal(t, 400*time.Millisecond, p.AttackCooldown)
	assert.Equal(t, "sword", p.Weapon().Name)
	assert.Equal(t, "flame", p.Spell().Name)
	assert.Equal(t, 25.0, p.WeaponDamage())

	// hitbox is the 64x64 rect inflated by (-6, -26) around the same center
	assert.Equal(t, 58, p.Hitbox.W)
	assert.Equal(t, 38, p.Hitbox.H)
	assert.Equal(t, p.Rect.CenterX(), p.Hitbox.CenterX())
	assert.Equal(t, cp.Vector{X: 160, Y: 160}, p.Pos)
}

func TestNewPlayerRejectsUnknownWeapon(t *testing.T) {
	cat := loadCatalog(t)
	spec := *cat.Player
	spec.Weapons = []string{"bow"}
	cat.Player = &spec

	_, err := NewPlayer(ecs.NewWorld(1), cat, cp.Vector{})
	assert.ErrorIs(t, err, ErrUnknownWeapon)
}

func TestNewMonster(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld(1)

	e, err := NewMonster(w, cat, "raccoon", cp.Vector{X: 64, Y: 64})
	require.NoError(t, err)
	m := w.GetMonster(e)
	require.NotNil(t, m)
	assert.True(t, m.CanAttack)
	assert.Equal(t, 300.0, m.Vitals.Current)
	assert.Equal(t, 400*time.Millisecond, m.AttackCooldown.Duration)
	assert.Equal(t, 300*time.Millisecond, m.Vitals.Invulnerable.Duration)
	assert.Equal(t, 118, m.Hitbox.H)
	assert.Equal(t, components.BehaviorIdle, m.Behavior)

	_, err = NewMonster(w, cat, "dragon", cp.Vector{})
	assert.ErrorIs(t, err, ErrUnknownMonster)
}

func TestLoadLevelToWorld(t *testing.T) {
	cat := loadCatalog(t)
	lvl := &levels.Level{
		Name:     "test",
		TileSize: 64,
		Rows: []string{
			"#####",
			"#P.g#",
			"#.s.#",
			"#####",
		},
	}
	w := ecs.NewWorld(1)
	loaded, err := LoadLevelToWorld(w, cat, lvl, LoadOptions{})
	require.NoError(t, err)

	assert.True(t, loaded.Player.Valid())
	assert.Equal(t, 1, loaded.Monsters)
	assert.Equal(t, 1, loaded.Props)
	assert.Len(t, w.ImpassableHitboxes(), 14)
	assert.Len(t, w.Obstacles(), 15)

	g := w.Grid()
	require.NotNil(t, g)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, 4, g.Rows)
	assert.False(t, g.Walkable(component.Cell{Col: 0, Row: 0}))
	// grass blocks movement but not the grid
	assert.True(t, g.Walkable(component.Cell{Col: 3, Row: 1}))
}

func TestLoadLevelSkipsRecordedSpawns(t *testing.T) {
	cat := loadCatalog(t)
	lvl := &levels.Level{Name: "skip", TileSize: 64, Rows: []string{"Pgs"}}
	w := ecs.NewWorld(1)

	loaded, err := LoadLevelToWorld(w, cat, lvl, LoadOptions{
		SkipMonster: func(pos cp.Vector) bool { return pos == cp.Vector{X: 128, Y: 0} },
		SkipProp:    func(pos cp.Vector) bool { return pos == cp.Vector{X: 64, Y: 0} },
	})
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Monsters)
	assert.Equal(t, 0, loaded.Props)
	assert.Equal(t, 2, loaded.Skipped)
}

func TestLoadLevelDropsZeroSizeObstacles(t *testing.T) {
	cat := loadCatalog(t)
	lvl := &levels.Level{
		Name:     "flat",
		TileSize: 64,
		Rows:     []string{"P.."},
		Objects:  []levels.Object{{Kind: "sign", X: 64, Y: 0, Width: 64, Height: 40}},
	}
	w := ecs.NewWorld(1)
	_, err := LoadLevelToWorld(w, cat, lvl, LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, w.ImpassableHitboxes())
}

func TestRetuneMonsters(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld(1)
	e, err := NewMonster(w, cat, "squid", cp.Vector{})
	require.NoError(t, err)

	specs := prefabs.MonsterSpecs{"squid": cat.Monsters["squid"]}
	tuned := specs["squid"]
	tuned.Speed = 90
	specs["squid"] = tuned

	assert.Equal(t, 1, RetuneMonsters(w, specs))
	assert.Equal(t, 90.0, w.GetMonster(e).Speed)

	t.Run("lower_health_clamps_current", func(t *testing.T) {
		weaker := specs["squid"]
		weaker.Health = 40
		specs["squid"] = weaker

		RetuneMonsters(w, specs)
		m := w.GetMonster(e)
		assert.Equal(t, 40.0, m.Vitals.Max)
		assert.Equal(t, 40.0, m.Vitals.Current)
	})

	t.Run("higher_health_keeps_current", func(t *testing.T) {
		stronger := specs["squid"]
		stronger.Health = 150
		specs["squid"] = stronger

		RetuneMonsters(w, specs)
		m := w.GetMonster(e)
		assert.Equal(t, 150.0, m.Vitals.Max)
		assert.Equal(t, 40.0, m.Vitals.Current)
	})
}
