package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForBatch(t *testing.T) {
	cfg := DefaultConfig()

	batch, channels := 4, 8
	results := make([][]bool, batch)
	for b := range results {
		results[b] = make([]bool, channels)
	}

	ForBatch(batch, channels, func(b, c int) {
		results[b][c] = true
	}, cfg)

	for b := 0; b < batch; b++ {
		for c := 0; c < channels; c++ {
			if !results[b][c] {
				t.Errorf("Missing result at [%d][%d]", b, c)
			}
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		n, lanes int
		want     [][2]int
	}{
		{8, 4, [][2]int{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{10, 4, [][2]int{{0, 3}, {3, 6}, {6, 9}, {9, 10}}},
		{3, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 3}}},
		{0, 2, [][2]int{{0, 0}, {0, 0}}},
		{5, 1, [][2]int{{0, 5}}},
	}

	for _, tt := range tests {
		for lane, want := range tt.want {
			lo, hi := Chunk(tt.n, lane, tt.lanes)
			assert.Equal(t, want, [2]int{lo, hi}, "n=%d lane=%d/%d", tt.n, lane, tt.lanes)
		}
	}
}

func TestChunk_CoversExactlyOnce(t *testing.T) {
	for n := 0; n < 50; n++ {
		for lanes := 1; lanes <= 9; lanes++ {
			hits := make([]int, n)
			for lane := 0; lane < lanes; lane++ {
				lo, hi := Chunk(n, lane, lanes)
				assert.LessOrEqual(t, hi-lo, (n+lanes-1)/lanes)
				for i := lo; i < hi; i++ {
					hits[i]++
				}
			}
			for i, h := range hits {
				if h != 1 {
					t.Fatalf("n=%d lanes=%d: index %d covered %d times", n, lanes, i, h)
				}
			}
		}
	}
}

func TestReduce(t *testing.T) {
	sum := func(i int, acc int64) int64 { return acc + int64(i) }
	join := func(a, b int64) int64 { return a + b }

	n := 10000
	want := int64(n * (n - 1) / 2)

	assert.Equal(t, want, Reduce(n, 0, sum, join, DefaultConfig()))
	assert.Equal(t, want, Reduce(n, 0, sum, join, Config{Enabled: false}))
	assert.Equal(t, int64(0), Reduce(0, 0, sum, join, DefaultConfig()))
}

func TestReduce_LogicalAnd(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	data := make([]float64, 1000)
	data[777] = 1

	allZero := Reduce(len(data), true,
		func(i int, acc bool) bool { return acc && data[i] == 0 },
		func(a, b bool) bool { return a && b }, cfg)
	assert.False(t, allZero)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}

func BenchmarkForBatch(b *testing.B) {
	cfg := DefaultConfig()
	batch, channels := 16, 64

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			ForBatch(batch, channels, func(bc, c int) {
				atomic.AddInt64(&sum, int64(bc*channels+c))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			ForBatch(batch, channels, func(bc, c int) {
				atomic.AddInt64(&sum, int64(bc*channels+c))
			}, cfgSeq)
		}
	})
}
