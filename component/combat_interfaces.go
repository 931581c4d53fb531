package component

import (
	"time"

	"github.com/milk9111/overworld/common"
)

// Striker exposes an active attack area.
type Striker interface {
	StrikeRect() common.Rect
	StrikeKind() AttackKind
}

// Attackable is anything an attack can land on.
type Attackable interface {
	TargetRect() common.Rect
	// Destructible targets are removed on contact instead of taking damage.
	Destructible() bool
	TakeHit(hit Hit, now time.Duration) bool
}
