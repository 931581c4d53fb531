package prefabs

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Inflate is a [dw, dh] hitbox adjustment.
type Inflate [2]int

type AnimationSpec struct {
	FPS     float64        `yaml:"fps"`
	Lengths map[string]int `yaml:"lengths"`
}

type PlayerSpec struct {
	Name              string             `yaml:"name"`
	Width             int                `yaml:"width"`
	Height            int                `yaml:"height"`
	HitboxInflate     Inflate            `yaml:"hitbox_inflate"`
	Stats             map[string]float64 `yaml:"stats"`
	MaxStats          map[string]float64 `yaml:"max_stats"`
	UpgradeCost       map[string]float64 `yaml:"upgrade_cost"`
	StartHealthRatio  float64            `yaml:"start_health_ratio"`
	StartEnergyRatio  float64            `yaml:"start_energy_ratio"`
	AttackCooldownMS  int                `yaml:"attack_cooldown_ms"`
	SwitchCooldownMS  int                `yaml:"switch_cooldown_ms"`
	InvulnerabilityMS int                `yaml:"invulnerability_ms"`
	EnergyRecovery    float64            `yaml:"energy_recovery"`
	UpgradeScript     string             `yaml:"upgrade_script"`
	Weapons           []string           `yaml:"weapons"`
	Spells            []string           `yaml:"spells"`
	Animation         AnimationSpec      `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type MonsterSpec struct {
	Health        float64       `yaml:"health"`
	Exp           float64       `yaml:"exp"`
	Damage        float64       `yaml:"damage"`
	AttackType    string        `yaml:"attack_type"`
	AttackSound   string        `yaml:"attack_sound"`
	Speed         float64       `yaml:"speed"`
	Resistance    float64       `yaml:"resistance"`
	AttackRadius  float64       `yaml:"attack_radius"`
	NoticeRadius  float64       `yaml:"notice_radius"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	HitboxInflate Inflate       `yaml:"hitbox_inflate"`
	Animation     AnimationSpec `yaml:"animation"`
}

// MonsterSpecs is keyed by monster kind.
type MonsterSpecs map[string]MonsterSpec

func LoadMonsterSpecs() (MonsterSpecs, error) {
	return LoadSpec[MonsterSpecs]("monsters.yaml")
}

type WeaponSpec struct {
	Name       string  `yaml:"name"`
	CooldownMS int     `yaml:"cooldown_ms"`
	Damage     float64 `yaml:"damage"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

func (s WeaponSpec) Cooldown() time.Duration {
	return time.Duration(s.CooldownMS) * time.Millisecond
}

func LoadWeaponSpecs() ([]WeaponSpec, error) {
	return LoadSpec[[]WeaponSpec]("weapons.yaml")
}

type MagicSpec struct {
	Name       string  `yaml:"name"`
	Strength   float64 `yaml:"strength"`
	Cost       float64 `yaml:"cost"`
	Bursts     int     `yaml:"bursts"`
	BurstSize  int     `yaml:"burst_size"`
	LifetimeMS int     `yaml:"lifetime_ms"`
}

func LoadMagicSpecs() ([]MagicSpec, error) {
	return LoadSpec[[]MagicSpec]("magic.yaml")
}

type WorldSpec struct {
	TileSize                 int                `yaml:"tile_size"`
	Seed                     int64              `yaml:"seed"`
	PathRecalcMS             int                `yaml:"path_recalc_ms"`
	NodeReach                float64            `yaml:"node_reach"`
	MonsterAttackCooldownMS  int                `yaml:"monster_attack_cooldown_ms"`
	MonsterInvulnerabilityMS int                `yaml:"monster_invulnerability_ms"`
	LeafCount                [2]int             `yaml:"leaf_count"`
	LeafOffset               [2]float64         `yaml:"leaf_offset"`
	ParticleLifetimeMS       int                `yaml:"particle_lifetime_ms"`
	ExpOrbSpeed              float64            `yaml:"exp_orb_speed"`
	HitboxInflate            map[string]Inflate `yaml:"hitbox_inflate"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Catalog bundles every tuning table a level needs.
type Catalog struct {
	World    *WorldSpec
	Player   *PlayerSpec
	Monsters MonsterSpecs
	Weapons  []WeaponSpec
	Magic    []MagicSpec
	Upgrade  *UpgradeScript
}

// LoadCatalog loads all tuning tables and compiles the upgrade script.
func LoadCatalog() (*Catalog, error) {
	world, err := LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	monsters, err := LoadMonsterSpecs()
	if err != nil {
		return nil, err
	}
	weapons, err := LoadWeaponSpecs()
	if err != nil {
		return nil, err
	}
	magic, err := LoadMagicSpecs()
	if err != nil {
		return nil, err
	}
	upgrade, err := LoadUpgradeScript(player.UpgradeScript)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		World:    world,
		Player:   player,
		Monsters: monsters,
		Weapons:  weapons,
		Magic:    magic,
		Upgrade:  upgrade,
	}, nil
}

// Weapon looks up a weapon by name.
func (c *Catalog) Weapon(name string) (WeaponSpec, bool) {
	if c == nil {
		return WeaponSpec{}, false
	}
	for _, w := range c.Weapons {
		if w.Name == name {
			return w, true
		}
	}
	return WeaponSpec{}, false
}

// Spell looks up a spell by name.
func (c *Catalog) Spell(name string) (MagicSpec, bool) {
	if c == nil {
		return MagicSpec{}, false
	}
	for _, m := range c.Magic {
		if m.Name == name {
			return m, true
		}
	}
	return MagicSpec{}, false
}
