package narrator

import (
	"math/rand"
	"sync"
)

// Random is the source of decoration in generated texts.
type Random interface {
	// Intn returns a number in [0, n).
	Intn(n int) int
}

// lockedRandom makes a *rand.Rand safe for concurrent use.
type lockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandom returns a Random driven by the source.
func NewRandom(source rand.Source) Random {
	return &lockedRandom{r: rand.New(source)}
}

func (l *lockedRandom) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Intn(n)
}

func pick(r Random, options []string) string {
	return options[r.Intn(len(options))]
}
