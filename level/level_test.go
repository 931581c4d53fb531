package level

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/levels"
	"github.com/milk9111/overworld/logger"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/save"
)

const frame = time.Second / 60

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func newLevel(t *testing.T, st *save.State, rows ...string) *Level {
	t.Helper()
	cat, err := prefabs.LoadCatalog()
	require.NoError(t, err)
	l, err := New(cat, &levels.Level{Name: "test", TileSize: 64, Rows: rows}, Options{State: st})
	require.NoError(t, err)
	return l
}

// step runs frame n with the given input.
func step(l *Level, n int, in components.InputState) {
	l.Step(time.Duration(n)*frame, frame.Seconds(), in)
}

func effectKinds(l *Level) map[string]int {
	out := map[string]int{}
	for _, e := range l.World.EffectSet().Entities() {
		out[l.World.GetEffect(e).Kind]++
	}
	return out
}

func TestWeaponKillRecordsSpawn(t *testing.T) {
	l := newLevel(t, nil, "Ps")
	require.Equal(t, 1, l.World.MonsterSet().Len())
	m := l.World.GetMonster(l.World.MonsterSet().Entities()[0])
	m.Vitals.Current = 1

	step(l, 1, components.InputState{Right: true, Attack: true})
	require.Equal(t, 1, l.World.AttackSet().Len())
	assert.Equal(t, []string{"weapon", "slash"}, l.DrainSounds())
	assert.Equal(t, 30.0, l.Player().Vitals.Current)

	step(l, 2, components.InputState{})
	assert.Equal(t, 0, l.World.MonsterSet().Len())
	assert.Equal(t, []save.Point{{X: 64, Y: 0}}, l.Defeated())
	assert.Equal(t, 100.0, l.Player().Exp)
	assert.Equal(t, []string{"hit", "death"}, l.DrainSounds())

	kinds := effectKinds(l)
	assert.Equal(t, 1, kinds["squid"])
	assert.Equal(t, 1, kinds[EffectExp])
}

func TestAttackEndsAfterCooldown(t *testing.T) {
	l := newLevel(t, nil, "P.")
	step(l, 1, components.InputState{Attack: true})
	require.Equal(t, 1, l.World.AttackSet().Len())

	// sword: 400ms base plus 100ms weapon cooldown
	l.Step(499*time.Millisecond, frame.Seconds(), components.InputState{})
	assert.True(t, l.Player().Attacking)
	assert.Equal(t, 1, l.World.AttackSet().Len())

	l.Step(520*time.Millisecond, frame.Seconds(), components.InputState{})
	assert.False(t, l.Player().Attacking)
	assert.Equal(t, 0, l.World.AttackSet().Len())
}

func TestCutGrassRecordsSpawn(t *testing.T) {
	l := newLevel(t, nil, "Pg")
	step(l, 1, components.InputState{Right: true, Attack: true})
	step(l, 2, components.InputState{})

	assert.Equal(t, 0, l.World.PropSet().Len())
	assert.Equal(t, []save.Point{{X: 64, Y: 0}}, l.Destroyed())
	leaves := effectKinds(l)[EffectLeaf]
	assert.GreaterOrEqual(t, leaves, 3)
	assert.LessOrEqual(t, leaves, 6)
}

func TestDamagePlayerRespectsInvulnerability(t *testing.T) {
	l := newLevel(t, nil, "Ps")
	step(l, 1, components.InputState{})
	require.Equal(t, 30.0, l.Player().Vitals.Current)
	assert.Equal(t, 1, effectKinds(l)["slash"])

	l.World.Events().Emit(components.EventDamagePlayer, components.DamagePlayer{Amount: 10, AttackType: "claw"})
	step(l, 2, components.InputState{})
	assert.Equal(t, 30.0, l.Player().Vitals.Current)

	l.World.Events().Emit(components.EventDamagePlayer, components.DamagePlayer{Amount: 10, AttackType: "claw"})
	l.Step(600*time.Millisecond, frame.Seconds(), components.InputState{})
	assert.Equal(t, 20.0, l.Player().Vitals.Current)
}

func TestMonsterHitsWhenWindowClosesMidAttack(t *testing.T) {
	l := newLevel(t, nil, "P.s")
	p := l.Player()
	m := l.World.GetMonster(l.World.MonsterSet().Entities()[0])
	p.Vitals.Invulnerable.Start(0)

	var entered, hit time.Duration
	for n := 1; n <= 60 && hit == 0; n++ {
		step(l, n, components.InputState{})
		now := time.Duration(n) * frame
		if entered == 0 && m.Behavior == components.BehaviorAttack {
			entered = now
		}
		if p.Vitals.Current < 50 {
			hit = now
			assert.Equal(t, components.BehaviorAttack, m.Behavior, "hit lands inside the same attack")
		}
	}
	require.NotZero(t, entered, "monster never attacked")
	require.Less(t, entered, 500*time.Millisecond)
	require.NotZero(t, hit, "window closed but no hit landed")
	assert.GreaterOrEqual(t, hit, 500*time.Millisecond)
	assert.LessOrEqual(t, hit, 500*time.Millisecond+2*frame)
	assert.Equal(t, 30.0, p.Vitals.Current)
}

func TestHeal(t *testing.T) {
	l := newLevel(t, nil, "P.")
	p := l.Player()
	p.MagicIndex = 1

	step(l, 1, components.InputState{Magic: true})
	// heal strength 20 plus magic stat 4
	assert.Equal(t, 74.0, p.Vitals.Current)
	assert.InDelta(t, 38.04, p.Energy, 1e-6)
	kinds := effectKinds(l)
	assert.Equal(t, 1, kinds[EffectAura])
	assert.Equal(t, 1, kinds[EffectHeal])
}

func TestHealNeedsEnergy(t *testing.T) {
	l := newLevel(t, nil, "P.")
	p := l.Player()
	p.MagicIndex = 1
	p.Energy = 5

	step(l, 1, components.InputState{Magic: true})
	assert.Equal(t, 50.0, p.Vitals.Current)
	assert.InDelta(t, 5.04, p.Energy, 1e-6)
}

func TestFlameBursts(t *testing.T) {
	l := newLevel(t, nil, "P.")
	step(l, 1, components.InputState{Magic: true})

	require.Equal(t, 5, l.World.AttackSet().Len())
	for _, e := range l.World.AttackSet().Entities() {
		a := l.World.GetAttack(e)
		assert.Equal(t, "flame", a.Style)
		assert.True(t, a.Lifetime.Running())
	}
	assert.InDelta(t, 28.04, l.Player().Energy, 1e-6)

	l.Step(500*time.Millisecond, frame.Seconds(), components.InputState{})
	assert.Equal(t, 0, l.World.AttackSet().Len())
}

func TestUpgrade(t *testing.T) {
	cases := []struct {
		name    string
		stat    components.Stat
		exp     float64
		value   float64
		want    float64
		wantErr error
	}{
		{"grows", components.StatHealth, 1000, 100, 120, nil},
		{"clamps", components.StatAttack, 1000, 19, 20, nil},
		{"not_enough_exp", components.StatMagic, 99, 4, 4, ErrNotEnoughExp},
		{"maxed", components.StatSpeed, 1000, 600, 600, ErrStatMaxed},
		{"unknown", components.Stat("luck"), 1000, 0, 0, ErrUnknownStat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := newLevel(t, nil, "P.")
			p := l.Player()
			p.Exp = c.exp
			if _, ok := p.Stats[c.stat]; ok {
				p.Stats[c.stat] = c.value
			}

			err := l.Upgrade(c.stat)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				assert.Equal(t, c.exp, p.Exp)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, c.want, p.Stats[c.stat], 1e-9)
			assert.InDelta(t, 140.0, p.UpgradeCost[c.stat], 1e-9)
			assert.Equal(t, 900.0, p.Exp)
		})
	}
}

func TestUpgradeHealthRaisesMax(t *testing.T) {
	l := newLevel(t, nil, "P.")
	p := l.Player()
	p.Exp = 100
	require.NoError(t, l.Upgrade(components.StatHealth))
	assert.InDelta(t, 120.0, p.Vitals.Max, 1e-9)
}

func TestStateRoundTrip(t *testing.T) {
	l := newLevel(t, nil, "Psg")
	p := l.Player()
	p.Exp = 321
	p.WeaponIndex = 3
	p.Stats[components.StatAttack] = 15

	st, err := l.State()
	require.NoError(t, err)
	st.DefeatedMonsters = []save.Point{{X: 64, Y: 0}}
	st.DestroyedGrass = []save.Point{{X: 128, Y: 0}}

	restored := newLevel(t, st, "Psg")
	assert.Equal(t, 0, restored.World.MonsterSet().Len())
	assert.Equal(t, 0, restored.World.PropSet().Len())

	rp := restored.Player()
	assert.Equal(t, 321.0, rp.Exp)
	assert.Equal(t, 3, rp.WeaponIndex)
	assert.Equal(t, 15.0, rp.Stats[components.StatAttack])
	assert.Equal(t, p.Pos, rp.Pos)
	assert.Equal(t, p.Vitals.Current, rp.Vitals.Current)

	again, err := restored.State()
	require.NoError(t, err)
	assert.Equal(t, st.DefeatedMonsters, again.DefeatedMonsters)
	assert.Equal(t, st.DestroyedGrass, again.DestroyedGrass)
}

func TestForeignSaveKeepsLevelSpawn(t *testing.T) {
	st := &save.State{
		Level: "elsewhere",
		Player: save.PlayerState{
			Pos:    save.Point{X: 500, Y: 500},
			Health: 40,
			Exp:    75,
		},
		DefeatedMonsters: []save.Point{{X: 64, Y: 0}},
	}
	l := newLevel(t, st, "Ps")
	fresh := newLevel(t, nil, "Ps")

	assert.Equal(t, fresh.Player().Pos, l.Player().Pos)
	assert.Equal(t, 1, l.World.MonsterSet().Len())
	assert.Equal(t, 40.0, l.Player().Vitals.Current)
	assert.Equal(t, 75.0, l.Player().Exp)
}

func TestSnapshot(t *testing.T) {
	l := newLevel(t, nil, "Ps")
	step(l, 1, components.InputState{})

	snap := l.Snapshot()
	assert.Equal(t, "test", snap.Level)
	assert.Equal(t, uint64(1), snap.Frame)
	require.NotNil(t, snap.Player)
	assert.Equal(t, "down_idle", snap.Player.Status)
	require.Len(t, snap.Monsters, 1)
	assert.Equal(t, "squid", snap.Monsters[0].Kind)
	assert.Equal(t, "attack", snap.Monsters[0].Status)
}
