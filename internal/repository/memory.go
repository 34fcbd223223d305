package repository

import (
	"context"
	"sync"

	"dreamtrip/internal/model"
)

// MemoryJournal is an in-memory implementation of Journal
type MemoryJournal struct {
	mu              sync.Mutex
	recommendations []model.RecommendationRecord
	adjustments     []model.AdjustmentRecord
}

// NewMemoryJournal creates a new in-memory journal
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

// LogRecommendation stores the record in memory
func (j *MemoryJournal) LogRecommendation(_ context.Context, rec model.RecommendationRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.recommendations = append(j.recommendations, rec)
	return nil
}

// LogAdjustment stores the record in memory
func (j *MemoryJournal) LogAdjustment(_ context.Context, rec model.AdjustmentRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.adjustments = append(j.adjustments, rec)
	return nil
}

// Recommendations returns a snapshot of the stored recommendations
func (j *MemoryJournal) Recommendations() []model.RecommendationRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]model.RecommendationRecord(nil), j.recommendations...)
}

// Adjustments returns a snapshot of the stored adjustments
func (j *MemoryJournal) Adjustments() []model.AdjustmentRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]model.AdjustmentRecord(nil), j.adjustments...)
}

// Close is a no-op
func (j *MemoryJournal) Close() error { return nil }
