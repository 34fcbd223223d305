package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"dreamtrip/internal/model"
)

func sampleRecommendation(id string) model.RecommendationRecord {
	return model.RecommendationRecord{
		ID:          id,
		Preferences: model.Preferences{Usage: "off-road", Budget: model.TextAmount("$45,000")},
		ModelID:     "rav4",
		Analysis:    "The RAV4 fits.",
		Scores:      []float32{1, 5, 3},
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func sampleAdjustment(id string) model.AdjustmentRecord {
	return model.AdjustmentRecord{
		ID:             id,
		ModelID:        "camry",
		TotalPrice:     30000,
		Budget:         40000,
		MonthlyPayment: 500,
		ShouldUpsell:   true,
		CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemoryJournal(t *testing.T) {
	ctx := context.Background()
	j := NewMemoryJournal()

	if err := j.LogRecommendation(ctx, sampleRecommendation("a")); err != nil {
		t.Fatalf("LogRecommendation() error = %v", err)
	}
	if err := j.LogAdjustment(ctx, sampleAdjustment("b")); err != nil {
		t.Fatalf("LogAdjustment() error = %v", err)
	}

	recs := j.Recommendations()
	if len(recs) != 1 || recs[0].ModelID != "rav4" {
		t.Errorf("Recommendations() = %+v", recs)
	}
	adjs := j.Adjustments()
	if len(adjs) != 1 || !adjs[0].ShouldUpsell {
		t.Errorf("Adjustments() = %+v", adjs)
	}

	// snapshots are detached from the journal
	recs[0].ModelID = "changed"
	if j.Recommendations()[0].ModelID != "rav4" {
		t.Error("Recommendations() returned shared storage")
	}

	if err := j.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSQLiteJournal(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewSQLiteJournal(path)
	if err != nil {
		t.Fatalf("NewSQLiteJournal() error = %v", err)
	}
	defer j.Close()

	if err := j.LogRecommendation(ctx, sampleRecommendation("rec-1")); err != nil {
		t.Fatalf("LogRecommendation() error = %v", err)
	}
	if err := j.LogAdjustment(ctx, sampleAdjustment("adj-1")); err != nil {
		t.Fatalf("LogAdjustment() error = %v", err)
	}

	var scores string
	if err := j.db.Get(&scores, "SELECT match_scores FROM recommendation_logs WHERE id = ?", "rec-1"); err != nil {
		t.Fatalf("select recommendation: %v", err)
	}
	if scores != "[1,5,3]" {
		t.Errorf("match_scores = %q, want [1,5,3]", scores)
	}

	var count int
	if err := j.db.Get(&count, "SELECT COUNT(*) FROM adjustment_logs WHERE should_upsell = 1"); err != nil {
		t.Fatalf("count adjustments: %v", err)
	}
	if count != 1 {
		t.Errorf("adjustment count = %d, want 1", count)
	}

	// duplicate ids are rejected by the primary key
	if err := j.LogAdjustment(ctx, sampleAdjustment("adj-1")); err == nil {
		t.Error("expected error for duplicate adjustment id")
	}
}

func TestSQLiteJournal_ReopenKeepsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewSQLiteJournal(path)
	if err != nil {
		t.Fatalf("NewSQLiteJournal() error = %v", err)
	}
	if err := j.LogAdjustment(context.Background(), sampleAdjustment("adj-1")); err != nil {
		t.Fatalf("LogAdjustment() error = %v", err)
	}
	j.Close()

	j, err = NewSQLiteJournal(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer j.Close()

	var count int
	if err := j.db.Get(&count, "SELECT COUNT(*) FROM adjustment_logs"); err != nil {
		t.Fatalf("count adjustments: %v", err)
	}
	if count != 1 {
		t.Errorf("adjustment count after reopen = %d, want 1", count)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryCache(time.Minute, 0)
	c.now = func() time.Time { return now }

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("Get() on empty cache returned a hit")
	}

	if err := c.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, ok := c.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("Get() = %q, %v; want v, true", v, ok)
	}

	now = now.Add(time.Minute)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("Get() returned an expired entry")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want expired entry evicted", c.Len())
	}
}

func TestMemoryCache_SetSweepsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryCache(time.Minute, 0)
	c.now = func() time.Time { return now }

	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, "v")
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	now = now.Add(2 * time.Minute)
	_ = c.Set(ctx, "d", "v")

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want expired entries swept on write", c.Len())
	}
}

func TestMemoryCache_EvictsOldestWhenFull(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, 2)

	_ = c.Set(ctx, "a", "1")
	_ = c.Set(ctx, "b", "2")
	_ = c.Set(ctx, "a", "1b")
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	_ = c.Set(ctx, "c", "3")

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want cap of 2", c.Len())
	}
	// rewriting a refreshed it, so b is the oldest
	if _, ok := c.Get(ctx, "b"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if v, ok := c.Get(ctx, "a"); !ok || v != "1b" {
		t.Errorf("Get(a) = %q, %v; want 1b, true", v, ok)
	}
	if v, ok := c.Get(ctx, "c"); !ok || v != "3" {
		t.Errorf("Get(c) = %q, %v; want 3, true", v, ok)
	}
}

func TestMemoryCache_NoTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, 0)
	_ = c.Set(ctx, "k", "v")

	c.now = func() time.Time { return time.Now().Add(24 * 365 * time.Hour) }
	if v, ok := c.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("Get() = %q, %v; want entry kept without TTL", v, ok)
	}
}
