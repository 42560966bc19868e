package sortedset_test

import (
	"math/rand/v2"
	"testing"

	"github.com/specterops/dispatch/cardinality"
	"github.com/specterops/dispatch/sortedset"
)

const (
	benchmarkSetSize  = 10_000
	benchmarkSetLimit = 100_000
)

func benchmarkValues(seed uint64) []uint32 {
	var (
		rng    = rand.New(rand.NewPCG(seed, seed))
		values = make([]uint32, benchmarkSetSize)
	)

	for idx := range values {
		values[idx] = rng.Uint32N(benchmarkSetLimit)
	}

	return values
}

func BenchmarkInsert_SortedSet(b *testing.B) {
	values := benchmarkValues(1)

	for iteration := 0; iteration < b.N; iteration++ {
		var set []uint32

		for _, value := range values {
			set, _ = sortedset.InsertUnique(set, value)
		}
	}
}

func BenchmarkInsert_SortedSetNoBack(b *testing.B) {
	values := benchmarkValues(1)

	for iteration := 0; iteration < b.N; iteration++ {
		var set []uint32

		for _, value := range values {
			set, _ = sortedset.InsertUniqueNoBack(set, value)
		}
	}
}

func BenchmarkInsert_MapSet(b *testing.B) {
	values := benchmarkValues(1)

	for iteration := 0; iteration < b.N; iteration++ {
		set := map[uint32]struct{}{}

		for _, value := range values {
			set[value] = struct{}{}
		}
	}
}

func BenchmarkInsert_Bitmap(b *testing.B) {
	values := benchmarkValues(1)

	for iteration := 0; iteration < b.N; iteration++ {
		set := cardinality.NewBitmap32()

		for _, value := range values {
			set.CheckedAdd(value)
		}
	}
}

func BenchmarkUnion_SortedSet(b *testing.B) {
	var (
		xs = sortedset.From(benchmarkValues(2))
		ys = sortedset.From(benchmarkValues(3))
	)

	b.ResetTimer()

	for iteration := 0; iteration < b.N; iteration++ {
		sortedset.Union(xs, ys)
	}
}

func BenchmarkUnion_Bitmap(b *testing.B) {
	var (
		xs = cardinality.NewBitmap32With(benchmarkValues(2)...)
		ys = cardinality.NewBitmap32With(benchmarkValues(3)...)
	)

	b.ResetTimer()

	for iteration := 0; iteration < b.N; iteration++ {
		union := xs.Clone()
		union.Or(ys)
	}
}

func BenchmarkIntersection_SortedSet(b *testing.B) {
	var (
		xs = sortedset.From(benchmarkValues(2))
		ys = sortedset.From(benchmarkValues(3))
	)

	b.ResetTimer()

	for iteration := 0; iteration < b.N; iteration++ {
		sortedset.Intersection(xs, ys)
	}
}

func BenchmarkIntersection_MapSet(b *testing.B) {
	var (
		xs = mapSet(benchmarkValues(2))
		ys = mapSet(benchmarkValues(3))
	)

	b.ResetTimer()

	for iteration := 0; iteration < b.N; iteration++ {
		intersection := map[uint32]struct{}{}

		for value := range xs {
			if _, found := ys[value]; found {
				intersection[value] = struct{}{}
			}
		}
	}
}

func BenchmarkIntersection_Bitmap(b *testing.B) {
	var (
		xs = cardinality.NewBitmap32With(benchmarkValues(2)...)
		ys = cardinality.NewBitmap32With(benchmarkValues(3)...)
	)

	b.ResetTimer()

	for iteration := 0; iteration < b.N; iteration++ {
		intersection := xs.Clone()
		intersection.And(ys)
	}
}

func BenchmarkContains_SortedSet(b *testing.B) {
	var (
		set    = sortedset.From(benchmarkValues(4))
		probes = benchmarkValues(5)
	)

	b.ResetTimer()

	for iteration := 0; iteration < b.N; iteration++ {
		sortedset.Contains(set, probes[iteration%len(probes)])
	}
}
