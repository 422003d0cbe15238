package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/punchamoorthee/receiptpoints/internal/models"
)

// PostgresStore is a pgx-backed ScoreStore for shared deployments.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &PostgresStore{db: pool}, nil
}

// EnsureSchema creates the score_records table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS score_records (
			id         TEXT PRIMARY KEY,
			points     BIGINT NOT NULL,
			receipt    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

// Put inserts the record. Records are immutable and the id is a pure
// function of the receipt content, so a conflicting row is identical and
// the insert becomes a no-op.
func (s *PostgresStore) Put(ctx context.Context, rec models.ScoreRecord) error {
	_, err := s.db.Exec(ctx,
		"INSERT INTO score_records (id, points, receipt) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		rec.ID, rec.Points, rec.Receipt,
	)
	if err != nil {
		return fmt.Errorf("inserting score record: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetPoints(ctx context.Context, id string) (int64, error) {
	var points int64
	err := s.db.QueryRow(ctx, "SELECT points FROM score_records WHERE id = $1", id).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("querying score record: %w", err)
	}
	return points, nil
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}
