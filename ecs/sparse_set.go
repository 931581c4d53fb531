package ecs

// SparseSet is a cache-friendly storage for components keyed by Entity.
// Values are stored as `any`; the World wraps each set in typed accessors.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

func (s *SparseSet) slot(e Entity) (int, bool) {
	if s == nil || !e.Valid() {
		return 0, false
	}
	i := int(e.id()) - 1
	if i >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[i]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has reports whether e has a value in the set.
func (s *SparseSet) Has(e Entity) bool {
	_, ok := s.slot(e)
	return ok
}

// Get returns the component for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx, ok := s.slot(e)
	if !ok {
		return nil
	}
	return s.denseValues[idx]
}

// Set inserts or updates a component for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	if idx, ok := s.slot(e); ok {
		s.denseValues[idx] = v
		return
	}
	i := int(e.id()) - 1
	for len(s.sparse) <= i {
		s.sparse = append(s.sparse, -1)
	}
	if old := s.sparse[i]; old >= 0 && old < len(s.denseEntities) && s.denseEntities[old].id() == e.id() {
		// stale generation in the same slot
		s.denseEntities[old] = e
		s.denseValues[old] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[i] = len(s.denseEntities) - 1
}

// Remove deletes the component for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	idx, ok := s.slot(e)
	if !ok {
		return false
	}
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[int(moved.id())-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[int(e.id())-1] = -1
	return true
}

// Entities returns a copy of the dense entity list, safe to range over while
// removing.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return append([]Entity(nil), s.denseEntities...)
}

// Values returns the dense component list.
func (s *SparseSet) Values() []any {
	if s == nil {
		return nil
	}
	return s.denseValues
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}
