package ecs

// entityStore tracks entity generations and free ids. Ids start at 1.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
	count int
}

func (s *entityStore) create() Entity {
	if s == nil {
		return 0
	}
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gen))
	}
	s.alive[id-1] = true
	s.count++
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gen[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || !e.Valid() || int(e.id()) > len(s.gen) {
		return false
	}
	idx := e.id() - 1
	return s.alive[idx] && s.gen[idx] == e.generation()
}

func (s *entityStore) len() int {
	if s == nil {
		return 0
	}
	return s.count
}
