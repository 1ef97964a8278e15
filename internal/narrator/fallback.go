package narrator

import (
	"context"

	"github.com/finwise/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// FallbackCount counts how often the secondary narrator had to be used.
var FallbackCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "narrator_fallbacks_total",
		Help: "How many narrations fell back to the local templates, partitioned by kind.",
	},
	[]string{"kind"},
)

// Fallback asks the primary narrator first and the secondary narrator when
// the primary fails.
type Fallback struct {
	primary   Narrator
	secondary Narrator
}

// WithFallback composes two narrators. primary may be nil, in which case
// only secondary is used.
func WithFallback(primary, secondary Narrator) *Fallback {
	return &Fallback{
		primary:   primary,
		secondary: secondary,
	}
}

func (f *Fallback) Narrate(ctx context.Context, txns []models.Transaction, kind Kind) (string, error) {
	if f.primary != nil {
		text, err := f.primary.Narrate(ctx, txns, kind)
		if err == nil {
			return text, nil
		}

		log.Warn().Err(err).Str("kind", string(kind)).Msg("remote narration failed, using local templates")
		FallbackCount.WithLabelValues(string(kind)).Inc()
	}

	if f.secondary == nil {
		return "", ErrNarrationUnavailable
	}

	text, err := f.secondary.Narrate(ctx, txns, kind)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("local narration failed")
		return "", ErrNarrationUnavailable
	}

	return text, nil
}
