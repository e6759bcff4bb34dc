package collections

import (
	"math/rand"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// settings holds the package-level runtime knobs. Collections themselves are
// not synchronised; only these globals are.
var settings struct {
	mu     sync.RWMutex
	logger zerolog.Logger
	rng    *rand.Rand
}

func init() {
	settings.logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("component", "collections").
		Logger()
}

// SetLogger replaces the logger used by [Collection.Dump], macro calls and
// lazy cursors. Pass zerolog.Nop() to silence the package.
func SetLogger(l zerolog.Logger) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	settings.logger = l
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.logger
}

// SetRandom makes Random, RandomN and Shuffle draw from r. A *rand.Rand is
// not safe for concurrent use, so callers sharing one across goroutines must
// serialise access themselves. Passing nil restores the global source.
func SetRandom(r *rand.Rand) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	settings.rng = r
}

func randIntn(n int) int {
	settings.mu.RLock()
	r := settings.rng
	settings.mu.RUnlock()
	if r != nil {
		return r.Intn(n)
	}
	return rand.Intn(n)
}

func randShuffle(n int, swap func(i, j int)) {
	settings.mu.RLock()
	r := settings.rng
	settings.mu.RUnlock()
	if r != nil {
		r.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}
