// Package narrator produces short financial commentary as newline separated
// bullet points.
package narrator

import (
	"context"
	"errors"
	"strings"

	"github.com/finwise/backend/internal/models"
)

// Kind is the kind of commentary requested.
//
// swagger:enum Kind
type Kind string

const (
	KindInsights    Kind = "insights"
	KindPredictions Kind = "predictions"
	KindTips        Kind = "tips"
)

var (
	ErrKindInvalid          = errors.New("the insight kind must be one of 'insights', 'predictions', 'tips'")
	ErrNarrationUnavailable = errors.New("insights are currently unavailable, please try again later")
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindInsights || k == KindPredictions || k == KindTips
}

// ParseKind parses a kind. The empty string selects KindInsights.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindInsights, nil
	}

	if !k.Valid() {
		return "", ErrKindInvalid
	}

	return k, nil
}

// Narrator describes a list of transactions in text.
type Narrator interface {
	Narrate(ctx context.Context, txns []models.Transaction, kind Kind) (string, error)
}

// bullets joins lines to the bullet list format.
func bullets(lines ...string) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• ")
		b.WriteString(l)
	}

	return b.String()
}
