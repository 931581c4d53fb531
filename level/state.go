package level

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/save"
)

// pointSet keeps insertion order so saves are stable.
type pointSet struct {
	seen map[save.Point]struct{}
	list []save.Point
}

func (s *pointSet) add(p save.Point) {
	if s.seen == nil {
		s.seen = map[save.Point]struct{}{}
	}
	if _, ok := s.seen[p]; ok {
		return
	}
	s.seen[p] = struct{}{}
	s.list = append(s.list, p)
}

func (s *pointSet) addAll(points []save.Point) {
	for _, p := range points {
		s.add(p)
	}
}

func (s *pointSet) has(p save.Point) bool {
	_, ok := s.seen[p]
	return ok
}

func (s *pointSet) hasVector(v cp.Vector) bool {
	return s.has(pointOf(v))
}

func (s *pointSet) points() []save.Point {
	return append([]save.Point{}, s.list...)
}

func pointOf(v cp.Vector) save.Point {
	return save.Point{X: v.X, Y: v.Y}
}

// State captures the level's persisted progress.
func (l *Level) State() (*save.State, error) {
	if l == nil {
		return nil, fmt.Errorf("level: nil level")
	}
	p := l.Player()
	if p == nil {
		return nil, ErrNoPlayer
	}
	return &save.State{
		Version: save.Version,
		Level:   l.Name,
		Player: save.PlayerState{
			Pos:         pointOf(p.Pos),
			Health:      p.Vitals.Current,
			Energy:      p.Energy,
			Exp:         p.Exp,
			Stats:       statsOut(p.Stats),
			MaxStats:    statsOut(p.MaxStats),
			UpgradeCost: statsOut(p.UpgradeCost),
			WeaponIndex: p.WeaponIndex,
			MagicIndex:  p.MagicIndex,
		},
		DefeatedMonsters: l.defeated.points(),
		DestroyedGrass:   l.destroyed.points(),
	}, nil
}

// Defeated returns the spawn points of monsters killed so far.
func (l *Level) Defeated() []save.Point {
	if l == nil {
		return nil
	}
	return l.defeated.points()
}

// Destroyed returns the spawn points of props cut so far.
func (l *Level) Destroyed() []save.Point {
	if l == nil {
		return nil
	}
	return l.destroyed.points()
}

// restorePlayer applies the saved progress to the spawned player. The saved
// position only applies when the save was taken on this level.
func (l *Level) restorePlayer(ps save.PlayerState, keepPos bool) error {
	p := l.Player()
	if p == nil {
		return ErrNoPlayer
	}
	if err := statsIn(p.Stats, ps.Stats); err != nil {
		return fmt.Errorf("level: restore stats: %w", err)
	}
	if err := statsIn(p.MaxStats, ps.MaxStats); err != nil {
		return fmt.Errorf("level: restore max stats: %w", err)
	}
	if err := statsIn(p.UpgradeCost, ps.UpgradeCost); err != nil {
		return fmt.Errorf("level: restore upgrade cost: %w", err)
	}

	if keepPos {
		p.Teleport(cp.Vector{X: ps.Pos.X, Y: ps.Pos.Y})
	}
	p.Vitals.SetMax(p.Stats[components.StatHealth])
	p.Vitals.Current = ps.Health
	p.Energy = ps.Energy
	p.Exp = ps.Exp
	if n := len(p.Weapons); n > 0 && ps.WeaponIndex >= 0 {
		p.WeaponIndex = ps.WeaponIndex % n
	}
	if n := len(p.Spells); n > 0 && ps.MagicIndex >= 0 {
		p.MagicIndex = ps.MagicIndex % n
	}
	return nil
}

func statsOut(s components.Stats) map[string]float64 {
	out := make(map[string]float64, len(s))
	for k, v := range s {
		out[string(k)] = v
	}
	return out
}

// statsIn overwrites dst with the known stats found in src. Missing stats keep
// their prefab value.
func statsIn(dst components.Stats, src map[string]float64) error {
	for name, v := range src {
		stat := components.Stat(name)
		if _, ok := dst[stat]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownStat, name)
		}
		dst[stat] = v
	}
	return nil
}
