package repository

import (
	"context"
	"fmt"
	"time"

	"voiceorder/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LoadFAQEntries returns the FAQ corpus in insertion order
func (r *PostgresRepository) LoadFAQEntries(ctx context.Context) ([]model.FAQEntry, error) {
	var entries []model.FAQEntry
	query := `SELECT question, answer FROM faq_entries ORDER BY id`
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to load faq entries: %w", err)
	}
	return entries, nil
}

// LogInteraction implements InteractionSink
func (r *PostgresRepository) LogInteraction(ctx context.Context, rec model.InteractionRecord) error {
	query := `
		INSERT INTO interaction_logs (id, created_at, user_id, transcription, intent, sentiment, response)
		VALUES (:id, :created_at, :user_id, :transcription, :intent, :sentiment, :response)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}
	return nil
}

// LogFeedback implements InteractionSink
func (r *PostgresRepository) LogFeedback(ctx context.Context, rec model.FeedbackRecord) error {
	query := `
		INSERT INTO feedback_logs (id, created_at, user_id, feedback)
		VALUES (:id, :created_at, :user_id, :feedback)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}

// Ensure PostgresRepository implements InteractionSink
var _ InteractionSink = (*PostgresRepository)(nil)
