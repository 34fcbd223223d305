package service

import (
	"context"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/model"
)

// Narrator rewrites the templated analysis into free text. Implementations
// must return an error rather than an empty string so callers can fall back
// to the template.
type Narrator interface {
	// Narrate produces the analysis for m given the user's answers. draft is
	// the templated explanation and is the expected tone and length.
	Narrate(ctx context.Context, prefs *model.Preferences, m catalog.Model, draft string) (string, error)

	// IsEnabled returns whether the narrator is configured and ready
	IsEnabled() bool
}

// Ensure GeminiNarrator implements Narrator
var _ Narrator = (*GeminiNarrator)(nil)
