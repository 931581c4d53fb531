package level

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/logger"
)

// Effect kinds spawned by the level besides the monster and attack type
// names carried by events.
const (
	EffectLeaf  = "leaf"
	EffectExp   = "exp"
	EffectAura  = "aura"
	EffectHeal  = "heal"
	EffectFlame = "flame"
)

const (
	spellHeal  = "heal"
	spellFlame = "flame"
)

// healOffset lifts the heal particle above the player center.
var healOffset = cp.Vector{X: 0, Y: -20}

func (l *Level) applyEvents() {
	for _, evt := range l.World.Events().Drain() {
		switch evt.Type {
		case components.EventCreateAttack:
			l.createAttack()
		case components.EventDestroyAttack:
			l.destroyAttack()
		case components.EventCreateMagic:
			if data, ok := evt.Data.(components.CreateMagic); ok {
				l.createMagic(data)
			}
		case components.EventDamagePlayer:
			if data, ok := evt.Data.(components.DamagePlayer); ok {
				l.damagePlayer(data)
			}
		case components.EventGrantExperience:
			if data, ok := evt.Data.(components.GrantExperience); ok {
				if p := l.Player(); p != nil {
					p.Exp += data.Amount
				}
			}
		case components.EventDeathParticles:
			if data, ok := evt.Data.(components.DeathParticles); ok {
				l.defeated.add(pointOf(data.Spawn))
				l.spawnEffect(data.Kind, data.Pos)
			}
		case components.EventExpParticles:
			if data, ok := evt.Data.(components.ExpParticles); ok {
				l.spawnExpOrb(data)
			}
		case components.EventLeafParticles:
			if data, ok := evt.Data.(components.LeafParticles); ok {
				l.destroyed.add(pointOf(data.Spawn))
				l.spawnEffect(EffectLeaf, data.Pos)
			}
		case components.EventPlaySound:
			if data, ok := evt.Data.(components.PlaySound); ok && data.Name != "" {
				l.sounds = append(l.sounds, data.Name)
			}
		default:
			logger.Log.WithField("event", evt.Type).Warn("unhandled event")
		}
	}
}

func (l *Level) createAttack() {
	p := l.Player()
	if p == nil {
		return
	}
	l.destroyAttack()
	e := l.World.CreateEntity()
	l.World.SetAttack(e, &components.Attack{
		Kind:  component.AttackWeapon,
		Style: p.Weapon().Name,
		Rect:  p.WeaponRect(),
	})
	l.attack = e
}

func (l *Level) destroyAttack() {
	if l.attack.Valid() {
		l.World.DestroyEntity(l.attack)
	}
	l.attack = 0
}

func (l *Level) createMagic(data components.CreateMagic) {
	p := l.Player()
	if p == nil {
		return
	}
	if p.Energy < data.Cost {
		logger.Log.WithFields(logrus.Fields{
			"spell":  data.Style,
			"energy": p.Energy,
			"cost":   data.Cost,
		}).Debug("not enough energy")
		return
	}

	switch data.Style {
	case spellHeal:
		p.Energy -= data.Cost
		p.Vitals.Heal(data.Strength)
		l.spawnEffect(EffectAura, p.Center())
		l.spawnEffect(EffectHeal, p.Center().Add(healOffset))
	case spellFlame:
		p.Energy -= data.Cost
		l.castFlame(p)
	default:
		logger.Log.WithField("spell", data.Style).Warn("unknown spell")
	}
}

// castFlame places one burst per tile ahead of the player, each jittered by
// up to a third of a tile on both axes.
func (l *Level) castFlame(p *components.Player) {
	spec, _ := l.Catalog.Spell(spellFlame)
	tile := l.Catalog.World.TileSize
	jitter := tile / 3
	rng := l.World.Rand()
	now := l.World.Now()
	dir := facingVector(p.Status.Facing)
	center := p.Center()

	for i := 1; i <= spec.Bursts; i++ {
		pos := center.Add(dir.Mult(float64(i * tile)))
		if jitter > 0 {
			pos.X += float64(rng.Intn(2*jitter+1) - jitter)
			pos.Y += float64(rng.Intn(2*jitter+1) - jitter)
		}
		life := component.NewTimer(time.Duration(spec.LifetimeMS) * time.Millisecond)
		life.Start(now)

		e := l.World.CreateEntity()
		l.World.SetAttack(e, &components.Attack{
			Kind:     component.AttackMagic,
			Style:    spellFlame,
			Rect:     common.RectFromCenter(common.RoundInt(pos.X), common.RoundInt(pos.Y), spec.BurstSize, spec.BurstSize),
			Lifetime: life,
		})
		l.spawnEffect(EffectFlame, pos)
	}
}

func facingVector(f components.Facing) cp.Vector {
	switch f {
	case components.FacingUp:
		return cp.Vector{X: 0, Y: -1}
	case components.FacingLeft:
		return cp.Vector{X: -1, Y: 0}
	case components.FacingRight:
		return cp.Vector{X: 1, Y: 0}
	}
	return cp.Vector{X: 0, Y: 1}
}

func (l *Level) damagePlayer(data components.DamagePlayer) {
	p := l.Player()
	if p == nil {
		return
	}
	hit := component.Hit{Amount: data.Amount, Type: data.AttackType}
	if !p.Vitals.ApplyDamage(hit, l.World.Now()) {
		return
	}
	l.spawnEffect(data.AttackType, p.Center())
	logger.Log.WithFields(logrus.Fields{
		"amount": data.Amount,
		"type":   data.AttackType,
		"health": p.Vitals.Current,
	}).Debug("player damaged")
}

func (l *Level) spawnEffect(kind string, pos cp.Vector) {
	e := l.World.CreateEntity()
	l.World.SetEffect(e, &components.Effect{
		Kind: kind,
		Pos:  pos,
		Life: l.particleLife(),
	})
}

func (l *Level) spawnExpOrb(data components.ExpParticles) {
	e := l.World.CreateEntity()
	l.World.SetEffect(e, &components.Effect{
		Kind:   EffectExp,
		Pos:    data.From,
		Target: data.To,
		Homing: true,
		Speed:  l.Catalog.World.ExpOrbSpeed,
	})
}

func (l *Level) particleLife() component.Timer {
	t := component.NewTimer(time.Duration(l.Catalog.World.ParticleLifetimeMS) * time.Millisecond)
	t.Start(l.World.Now())
	return t
}
