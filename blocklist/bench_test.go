package blocklist_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bmssp/blocklist"
)

// BenchmarkInsertPull measures the steady-state insert/pull cycle at a
// realistic block capacity.
func BenchmarkInsertPull(b *testing.B) {
	rng := rand.New(rand.NewSource(99))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bl, err := blocklist.New(16, 1e9)
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 256; j++ {
			bl.Insert(j, rng.Float64()*1e6)
		}
		for !bl.IsEmpty() {
			bl.Pull()
		}
	}
}

// BenchmarkBatchPrepend exercises the recursive median-partition path with
// batches far larger than the block capacity.
func BenchmarkBatchPrepend(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	batch := make([]blocklist.Element, 1024)
	for i := range batch {
		batch[i] = blocklist.Element{Node: i, Dist: rng.Float64() * 1e6}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bl, err := blocklist.New(16, 1e9)
		if err != nil {
			b.Fatal(err)
		}
		bl.BatchPrepend(batch)
	}
}
