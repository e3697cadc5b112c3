package repository

import (
	"context"
	"time"

	"resume-tailor/internal/database"

	"github.com/google/uuid"
)

// HistoryEntry is one persisted tailoring run.
type HistoryEntry struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	Company    string    `json:"company"`
	Role       string    `json:"role"`
	MatchScore int       `json:"match_score"`
	PDFFile    string    `json:"pdf_file,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryRepository interface {
	Insert(ctx context.Context, e HistoryEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]HistoryEntry, error)
}

type PostgresHistoryRepository struct {
	db database.DB
}

func NewPostgresHistoryRepository(db database.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

// EnsureSchema creates the history table when it does not exist yet. The
// service stays useful without a database, so schema setup happens lazily at
// startup instead of through a migration pipeline.
func (r *PostgresHistoryRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tailoring_history (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT '',
			match_score INT NOT NULL DEFAULT 0,
			pdf_file TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tailoring_history_user ON tailoring_history (user_id, created_at DESC)`)
	return err
}

func (r *PostgresHistoryRepository) Insert(ctx context.Context, e HistoryEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO tailoring_history (id, user_id, company, role, match_score, pdf_file, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		e.ID,
		e.UserID,
		e.Company,
		e.Role,
		e.MatchScore,
		e.PDFFile,
		e.CreatedAt,
	)
	return err
}

func (r *PostgresHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, company, role, match_score, pdf_file, created_at
		 FROM tailoring_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HistoryEntry, 0, limit)
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Company, &e.Role, &e.MatchScore, &e.PDFFile, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
