package benchmarks_test

import (
	"testing"

	"github.com/go-rfc/optional"
)

func runUnwrapOrBenchmark(b *testing.B, opt optional.Optional[int]) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opt.UnwrapOr(0)
	}
}

func BenchmarkUnwrapOrSome(b *testing.B) {
	runUnwrapOrBenchmark(b, optional.Some(23))
}

func BenchmarkUnwrapOrNone(b *testing.B) {
	runUnwrapOrBenchmark(b, optional.None[int]())
}

func BenchmarkSome(b *testing.B) {
	for i := 0; i < b.N; i++ {
		optional.Some(i)
	}
}

func BenchmarkMap(b *testing.B) {
	double := func(v int) int { return v * 2 }
	opt := optional.Some(23)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		optional.Map(opt, double)
	}
}

func BenchmarkFilter(b *testing.B) {
	isEven := func(v int) bool { return v%2 == 0 }
	opt := optional.Some(23)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opt.Filter(isEven)
	}
}
