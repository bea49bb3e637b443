package kmeanspp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/kmeanspp"
	"github.com/hupe1980/kmeanspp/seed"
	"github.com/hupe1980/kmeanspp/testutil"
)

func BenchmarkFit(b *testing.B) {
	for _, tc := range []struct{ n, dim, k int }{
		{1000, 2, 4},
		{10000, 16, 8},
		{10000, 128, 16},
	} {
		b.Run(fmt.Sprintf("n=%d/dim=%d/k=%d", tc.n, tc.dim, tc.k), func(b *testing.B) {
			points := testutil.NewRNG(42).UniformVectors(tc.n, tc.dim)
			seeds, err := seed.FirstK(points, tc.k)
			if err != nil {
				b.Fatal(err)
			}

			ctx := context.Background()
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := kmeanspp.Fit(ctx, points, seeds, tc.k, 20, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
