package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"dreamtrip/internal/model"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS recommendation_logs (
	id           TEXT PRIMARY KEY,
	preferences  TEXT NOT NULL,
	model_id     TEXT NOT NULL,
	analysis     TEXT NOT NULL,
	match_scores TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS adjustment_logs (
	id              TEXT PRIMARY KEY,
	model_id        TEXT NOT NULL,
	total_price     REAL NOT NULL,
	budget          REAL NOT NULL,
	monthly_payment REAL NOT NULL,
	should_upsell   INTEGER NOT NULL,
	should_downsell INTEGER NOT NULL,
	created_at      TEXT NOT NULL
);
`

const sqliteTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// SQLiteJournal journals to a local SQLite file. Match scores are stored as
// a JSON array.
type SQLiteJournal struct {
	db *sqlx.DB
}

// NewSQLiteJournal opens (creating if needed) the database at path
func NewSQLiteJournal(path string) (*SQLiteJournal, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

// Close closes the database
func (r *SQLiteJournal) Close() error {
	return r.db.Close()
}

// LogRecommendation inserts a recommendation record
func (r *SQLiteJournal) LogRecommendation(ctx context.Context, rec model.RecommendationRecord) error {
	prefs, err := json.Marshal(rec.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}

	query := `
		INSERT INTO recommendation_logs (id, preferences, model_id, analysis, match_scores, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, string(prefs), rec.ModelID, rec.Analysis, string(scores), rec.CreatedAt.UTC().Format(sqliteTimeLayout))
	if err != nil {
		return fmt.Errorf("failed to log recommendation: %w", err)
	}
	return nil
}

// LogAdjustment inserts a deal adjustment record
func (r *SQLiteJournal) LogAdjustment(ctx context.Context, rec model.AdjustmentRecord) error {
	query := `
		INSERT INTO adjustment_logs
			(id, model_id, total_price, budget, monthly_payment, should_upsell, should_downsell, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.ModelID, rec.TotalPrice, rec.Budget, rec.MonthlyPayment,
		rec.ShouldUpsell, rec.ShouldDownsell, rec.CreatedAt.UTC().Format(sqliteTimeLayout))
	if err != nil {
		return fmt.Errorf("failed to log adjustment: %w", err)
	}
	return nil
}
