// Package store persists report rows to Postgres as a durable complement to
// the CSV file. It is wired only when DATABASE_URL is set.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adrianodrix/huggy-get-chats-and-sentiment/internal/report"
)

type Store struct {
	pool  *pgxpool.Pool
	runID uuid.UUID
}

func New(ctx context.Context, databaseURL string, runID uuid.UUID) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool, runID: runID}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the chat_analysis table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_analysis (
			id UUID PRIMARY KEY,
			run_id UUID NOT NULL,
			chat_id TEXT NOT NULL,
			created_at TEXT,
			attended_at TEXT,
			closed_at TEXT,
			client_id TEXT,
			client_name TEXT,
			email TEXT,
			phone TEXT,
			cnpj TEXT,
			certificate_type TEXT,
			issuer TEXT,
			agent TEXT,
			keywords TEXT,
			resolved TEXT,
			sentiment TEXT,
			analysis TEXT,
			inserted_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Write inserts the complete row set in one transaction, tagged with the run
// id so successive runs stay distinguishable.
func (s *Store) Write(ctx context.Context, rows []report.Row) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, row := range rows {
		_, err := tx.Exec(ctx, `
			INSERT INTO chat_analysis (
				id, run_id, chat_id, created_at, attended_at, closed_at,
				client_id, client_name, email, phone,
				cnpj, certificate_type, issuer,
				agent, keywords, resolved, sentiment, analysis
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
			uuid.New(), s.runID, row.ChatID, row.CreatedAt, row.AttendedAt, row.ClosedAt,
			row.ClientID, row.ClientName, row.Email, row.PhoneNumber,
			row.CNPJ, row.CertificateType, row.Issuer,
			row.Agent, row.Keywords, row.Resolved, row.Sentiment, row.Analysis,
		)
		if err != nil {
			return fmt.Errorf("insert row for chat %s: %w", row.ChatID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
