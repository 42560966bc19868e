// Package cache provides bounded memoization tables for single-threaded evaluators. None of the implementations
// synchronize access; a cache belongs to one evaluation at a time.
package cache

// Stats counts cache traffic. It is a snapshot when returned from Cache.Stats.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRatio returns hits over total lookups, or zero when there were no lookups.
func (s Stats) HitRatio() float64 {
	if lookups := s.Hits + s.Misses; lookups > 0 {
		return float64(s.Hits) / float64(lookups)
	}

	return 0
}

func (s Stats) Combined(other Stats) Stats {
	return Stats{
		Hits:      s.Hits + other.Hits,
		Misses:    s.Misses + other.Misses,
		Evictions: s.Evictions + other.Evictions,
		Size:      s.Size + other.Size,
		Capacity:  s.Capacity + other.Capacity,
	}
}

type Cache[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Delete(key K)
	Len() int
	Stats() Stats
}
