package level

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/logger"
)

// Upgrade spends experience on one stat. The new value and cost come from the
// catalog's upgrade script; the value is clamped to the stat's maximum.
func (l *Level) Upgrade(stat components.Stat) error {
	p := l.Player()
	if p == nil {
		return ErrNoPlayer
	}
	value, ok := p.Stats[stat]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownStat, stat)
	}
	cost := p.UpgradeCost[stat]
	limit := p.MaxStats[stat]

	if p.Exp < cost {
		return fmt.Errorf("%w: %s needs %.0f, have %.0f", ErrNotEnoughExp, stat, cost, p.Exp)
	}
	if value >= limit {
		return fmt.Errorf("%w: %s", ErrStatMaxed, stat)
	}

	next, nextCost, err := l.Catalog.Upgrade.Apply(value, cost)
	if err != nil {
		return fmt.Errorf("level: upgrade %s: %w", stat, err)
	}
	if next > limit {
		next = limit
	}

	p.Exp -= cost
	p.Stats[stat] = next
	p.UpgradeCost[stat] = nextCost
	switch stat {
	case components.StatHealth:
		p.Vitals.SetMax(next)
	case components.StatEnergy:
		if p.Energy > next {
			p.Energy = next
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"stat":  string(stat),
		"value": next,
		"cost":  nextCost,
		"exp":   p.Exp,
	}).Info("stat upgraded")
	return nil
}
