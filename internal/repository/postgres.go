package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dreamtrip/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const postgresSchema = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS recommendation_logs (
	id           UUID PRIMARY KEY,
	preferences  JSONB NOT NULL,
	model_id     TEXT NOT NULL,
	analysis     TEXT NOT NULL,
	match_scores vector NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS adjustment_logs (
	id              UUID PRIMARY KEY,
	model_id        TEXT NOT NULL,
	total_price     DOUBLE PRECISION NOT NULL,
	budget          DOUBLE PRECISION NOT NULL,
	monthly_payment DOUBLE PRECISION NOT NULL,
	should_upsell   BOOLEAN NOT NULL,
	should_downsell BOOLEAN NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresJournal journals to PostgreSQL. Match scores are stored as a
// pgvector column in catalog order.
type PostgresJournal struct {
	db *sqlx.DB
}

// NewPostgresJournal connects, configures the pool and ensures the schema
func NewPostgresJournal(dsn string, maxConn, maxIdleConn int) (*PostgresJournal, error) {
	// lib/pq sends unknown URL parameters to the server, so the DSN is used as given
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return &PostgresJournal{db: db}, nil
}

// Close closes the database connection
func (r *PostgresJournal) Close() error {
	return r.db.Close()
}

// LogRecommendation inserts a recommendation record
func (r *PostgresJournal) LogRecommendation(ctx context.Context, rec model.RecommendationRecord) error {
	prefs, err := json.Marshal(rec.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	query := `
		INSERT INTO recommendation_logs (id, preferences, model_id, analysis, match_scores, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, prefs, rec.ModelID, rec.Analysis, pgvector.NewVector(rec.Scores), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to log recommendation: %w", err)
	}
	return nil
}

// LogAdjustment inserts a deal adjustment record
func (r *PostgresJournal) LogAdjustment(ctx context.Context, rec model.AdjustmentRecord) error {
	query := `
		INSERT INTO adjustment_logs
			(id, model_id, total_price, budget, monthly_payment, should_upsell, should_downsell, created_at)
		VALUES
			(:id, :model_id, :total_price, :budget, :monthly_payment, :should_upsell, :should_downsell, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("failed to log adjustment: %w", err)
	}
	return nil
}
