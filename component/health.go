package component

import "time"

// Health is a damage pool with a post-hit vulnerability window.
type Health struct {
	Max     float64
	Current float64

	// Invulnerable runs while the entity ignores further hits.
	Invulnerable Timer

	OnDamage func(h *Health, hit Hit)
}

// NewHealth creates a Health with current set to max and the given
// invulnerability window.
func NewHealth(max float64, window time.Duration) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max, Invulnerable: NewTimer(window)}
}

// IsAlive reports whether any health remains.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Vulnerable reports whether a hit would land.
func (h *Health) Vulnerable() bool {
	return h != nil && !h.Invulnerable.Running()
}

// ApplyDamage subtracts amount and opens the vulnerability window. It is a
// no-op while invulnerable. Returns true if damage was applied.
func (h *Health) ApplyDamage(hit Hit, now time.Duration) bool {
	if h == nil || !h.Vulnerable() {
		return false
	}
	h.Current -= hit.Amount
	h.Invulnerable.Start(now)
	if h.OnDamage != nil {
		h.OnDamage(h, hit)
	}
	return true
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Tick closes the vulnerability window once it has elapsed.
func (h *Health) Tick(now time.Duration) {
	if h == nil {
		return
	}
	h.Invulnerable.StopIfExpired(now)
}

// SetMax sets the maximum value and clamps Current if needed.
func (h *Health) SetMax(v float64) {
	if h == nil {
		return
	}
	h.Max = v
	if h.Max <= 0 {
		h.Max = 1
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
