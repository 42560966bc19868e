package cache

import (
	"container/list"
)

type entry[K comparable, V any] struct {
	key     K
	value   V
	visited bool
	element *list.Element
}

// Sieve implements the SIEVE eviction policy with a fixed capacity. New keys enter at the front of the queue and a
// hand sweeps from the back toward the front, clearing the visited flag of each entry it passes and evicting the
// first entry that was not visited since the previous sweep.
type Sieve[K comparable, V any] struct {
	store map[K]*entry[K, V]
	queue *list.List
	hand  *list.Element
	stats Stats
}

// NewSieve creates a new Sieve cache with the supplied capacity. A capacity less than one is treated as one.
func NewSieve[K comparable, V any](capacity int) Cache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}

	return &Sieve[K, V]{
		store: make(map[K]*entry[K, V], capacity),
		queue: list.New(),
		stats: Stats{
			Capacity: capacity,
		},
	}
}

func (s *Sieve[K, V]) Stats() Stats {
	snapshot := s.stats
	snapshot.Size = len(s.store)

	return snapshot
}

func (s *Sieve[K, V]) Len() int {
	return len(s.store)
}

func (s *Sieve[K, V]) Put(key K, value V) {
	if existingEntry, exists := s.store[key]; exists {
		existingEntry.value = value
		existingEntry.visited = true
		return
	}

	if s.queue.Len() >= s.stats.Capacity {
		s.evict()
	}

	s.store[key] = &entry[K, V]{
		key:     key,
		value:   value,
		element: s.queue.PushFront(key),
	}
}

func (s *Sieve[K, V]) Get(key K) (V, bool) {
	if entry, exists := s.store[key]; exists {
		s.stats.Hits++

		entry.visited = true
		return entry.value, true
	}

	s.stats.Misses++

	var emptyV V
	return emptyV, false
}

func (s *Sieve[K, V]) removeEntry(e *entry[K, V]) {
	s.queue.Remove(e.element)
	delete(s.store, e.key)
}

// Delete removes the entry identified by key. When the hand points at the removed entry it steps toward the front
// so the next sweep resumes from the neighbouring entry.
func (s *Sieve[K, V]) Delete(key K) {
	if entry, exists := s.store[key]; exists {
		if entry.element == s.hand {
			s.hand = s.hand.Prev()
		}

		s.removeEntry(entry)
	}
}

func (s *Sieve[K, V]) evict() {
	hand := s.hand

	if hand == nil {
		hand = s.queue.Back()
	}

	entry := s.store[hand.Value.(K)]

	for entry.visited {
		entry.visited = false

		if hand = hand.Prev(); hand == nil {
			hand = s.queue.Back()
		}

		entry = s.store[hand.Value.(K)]
	}

	s.hand = hand.Prev()
	s.removeEntry(entry)
	s.stats.Evictions++
}
