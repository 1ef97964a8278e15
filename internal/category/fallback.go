package category

import (
	"math/rand"
	"sync"
)

// Fallback picks a category for a description that no rule matches.
//
// Implementations can be anything from a fixed answer to a call to an
// external model.
type Fallback interface {
	Fallback(description string) string
}

// StaticFallback always returns the same category.
type StaticFallback string

func (s StaticFallback) Fallback(string) string {
	return string(s)
}

// RandomFallback picks a category uniformly at random from a set that
// excludes Other. It is a placeholder for a real model.
type RandomFallback struct {
	mu         sync.Mutex
	rand       *rand.Rand
	categories []string
}

// NewRandomFallback returns a RandomFallback drawing from source.
func NewRandomFallback(source rand.Source, categories Set) *RandomFallback {
	names := make([]string, 0, len(categories))
	for _, name := range categories.Names() {
		if name != Other {
			names = append(names, name)
		}
	}

	return &RandomFallback{
		rand:       rand.New(source),
		categories: names,
	}
}

func (f *RandomFallback) Fallback(string) string {
	if len(f.categories) == 0 {
		return Other
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.categories[f.rand.Intn(len(f.categories))]
}
