package kompresscache

import (
	"math/rand"
	"sync"
	"sync/atomic"
)

// Picker chooses which replica serves a read. Pick receives the replica
// count (always >= 1) and returns an index in [0, n). Implementations must
// be safe for concurrent use.
type Picker interface {
	Pick(n int) int
}

// randomPicker spreads reads uniformly using the shared rand source.
type randomPicker struct{}

func (randomPicker) Pick(n int) int { return rand.Intn(n) }

// NewRandomPicker returns a uniform random picker with its own seeded
// source. Handy in tests where replica choice must be reproducible.
func NewRandomPicker(seed int64) Picker {
	return &seededPicker{r: rand.New(rand.NewSource(seed))}
}

type seededPicker struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (p *seededPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.Intn(n)
}

// NewRoundRobinPicker cycles through replicas in order.
func NewRoundRobinPicker() Picker {
	return &roundRobinPicker{}
}

type roundRobinPicker struct {
	next atomic.Uint64
}

func (p *roundRobinPicker) Pick(n int) int {
	return int((p.next.Add(1) - 1) % uint64(n))
}
