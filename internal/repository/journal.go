package repository

import (
	"context"

	"dreamtrip/internal/model"
)

// Journal records every recommendation and deal adjustment served
type Journal interface {
	LogRecommendation(ctx context.Context, rec model.RecommendationRecord) error
	LogAdjustment(ctx context.Context, rec model.AdjustmentRecord) error
	Close() error
}

var (
	_ Journal = (*MemoryJournal)(nil)
	_ Journal = (*PostgresJournal)(nil)
	_ Journal = (*SQLiteJournal)(nil)
)
