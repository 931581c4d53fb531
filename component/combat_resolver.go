package component

import "github.com/milk9111/overworld/common"

// Contact pairs an attack with a target it overlaps, by slice index.
type Contact struct {
	Striker int
	Target  int
}

// CollisionRecord stores a recent contact for debug highlighting.
type CollisionRecord struct {
	Hit        common.Rect
	Hurt       common.Rect
	FramesLeft int
}

// CombatResolver finds attack/target overlaps each frame.
type CombatResolver struct {
	// Recent contacts recorded during Resolve.
	Recent []CollisionRecord

	frame int
}

// NewCombatResolver creates a resolver instance.
func NewCombatResolver() *CombatResolver {
	return &CombatResolver{}
}

// Tick advances internal frame counters and ages debug records.
func (r *CombatResolver) Tick() {
	if r == nil {
		return
	}
	r.frame++
	kept := r.Recent[:0]
	for _, rec := range r.Recent {
		rec.FramesLeft--
		if rec.FramesLeft > 0 {
			kept = append(kept, rec)
		}
	}
	r.Recent = kept
}

// Frame returns the number of ticks so far.
func (r *CombatResolver) Frame() int {
	if r == nil {
		return 0
	}
	return r.frame
}

// Resolve returns every overlapping (attack, target) pair, ordered by attack
// then by target.
func (r *CombatResolver) Resolve(strikers []Striker, targets []Attackable) []Contact {
	if r == nil || len(strikers) == 0 || len(targets) == 0 {
		return nil
	}
	var contacts []Contact
	for si, s := range strikers {
		if s == nil {
			continue
		}
		hit := s.StrikeRect()
		for ti, t := range targets {
			if t == nil {
				continue
			}
			hurt := t.TargetRect()
			if !hit.Intersects(hurt) {
				continue
			}
			contacts = append(contacts, Contact{Striker: si, Target: ti})
			r.Recent = append(r.Recent, CollisionRecord{Hit: hit, Hurt: hurt, FramesLeft: 6})
		}
	}
	return contacts
}
