/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package rangeindex

import (
	"fmt"
	"math/rand"
	"testing"
)

// buildIndex inserts N non-degenerate ranges and returns a query set that
// is likely to hit, so the benchmark exercises the full scan-and-compare
// path rather than early misses.
func buildIndex(b *testing.B, n int) (*Index[int], []uint32) {
	rng := rand.New(rand.NewSource(1)) // deterministic
	x := New[int]()
	probes := make([]uint32, 0, n)

	for i := 0; i < n; i++ {
		lo := uint32(1 + rng.Intn(1<<20))
		width := uint32(rng.Intn(1 << 10))
		if err := x.Insert(lo, lo+width, 100+i); err != nil {
			b.Fatalf("insert failed for [%d,%d]: %v", lo, lo+width, err)
		}
		probes = append(probes, lo+width/2)
	}
	return x, probes
}

func BenchmarkMatch(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("rules=%d", n), func(b *testing.B) {
			x, probes := buildIndex(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = x.Match(probes[i%len(probes)])
			}
		})
	}
}
