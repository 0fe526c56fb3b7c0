// Package parallel provides range, reduction and team dispatch for kernels
// operating on views.
package parallel

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool        // Whether parallel execution is enabled.
	NumWorkers   int         // Number of worker goroutines to use.
	MinChunkSize int         // Minimum items per goroutine to avoid overhead.
	Logger       *zap.Logger // Dispatch logger; nil disables logging.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c Config) workers() int {
	if !c.Enabled || c.NumWorkers < 1 {
		return 1
	}
	return c.NumWorkers
}

// Chunk returns the half-open range [lo, hi) of [0, n) owned by lane out of
// lanes. Chunks have size ceil(n/lanes); the last non-empty chunk absorbs
// the remainder and trailing lanes may receive an empty range.
func Chunk(n, lane, lanes int) (lo, hi int) {
	if lanes < 1 {
		lanes = 1
	}
	size := (n + lanes - 1) / lanes
	lo = min(lane*size, n)
	hi = min(lo+size, n)
	return lo, hi
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForBatch is For over a two-level league x lane index space.
func ForBatch(batch, channels int, f func(b, c int), cfg Config) {
	n := batch * channels
	For(n, func(k int) {
		f(k/channels, k%channels)
	}, cfg)
}

// Reduce folds f over [0, n) starting from identity, combining partial
// results of parallel chunks with join. join must be associative.
func Reduce[T any](n int, identity T, f func(i int, acc T) T, join func(a, b T) T, cfg Config) T {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		acc := identity
		for i := 0; i < n; i++ {
			acc = f(i, acc)
		}
		return acc
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	partials := make([]T, (n+chunkSize-1)/chunkSize)

	var wg sync.WaitGroup
	for c := range partials {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			acc := identity
			for i := c * chunkSize; i < min((c+1)*chunkSize, n); i++ {
				acc = f(i, acc)
			}
			partials[c] = acc
		}(c)
	}
	wg.Wait()

	result := identity
	for _, p := range partials {
		result = join(result, p)
	}
	return result
}
