package cache

// NonExpiringMapCache keeps entries until it reaches capacity and then refuses new keys. Existing keys may still be
// updated once full.
type NonExpiringMapCache[K comparable, V any] struct {
	store map[K]V
	stats Stats
}

func NewNonExpiringMapCache[K comparable, V any](capacity int) Cache[K, V] {
	return &NonExpiringMapCache[K, V]{
		store: make(map[K]V, capacity),
		stats: Stats{
			Capacity: capacity,
		},
	}
}

func (s *NonExpiringMapCache[K, V]) Put(key K, value V) {
	if _, exists := s.store[key]; exists {
		s.store[key] = value
	} else if len(s.store) < s.stats.Capacity {
		s.store[key] = value
	}
}

func (s *NonExpiringMapCache[K, V]) Get(key K) (V, bool) {
	value, hasValue := s.store[key]

	if hasValue {
		s.stats.Hits++
	} else {
		s.stats.Misses++
	}

	return value, hasValue
}

func (s *NonExpiringMapCache[K, V]) Delete(key K) {
	delete(s.store, key)
}

func (s *NonExpiringMapCache[K, V]) Len() int {
	return len(s.store)
}

func (s *NonExpiringMapCache[K, V]) Stats() Stats {
	snapshot := s.stats
	snapshot.Size = len(s.store)

	return snapshot
}
