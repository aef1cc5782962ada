package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	collectionsTable = "collections"
	upsertSuffix     = "ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at"
)

func loadQuery(b sq.StatementBuilderType, key string) (string, []interface{}, error) {
	return b.Select("payload").From(collectionsTable).Where(sq.Eq{"key": key}).ToSql()
}

func saveQuery(b sq.StatementBuilderType, key string, payload interface{}) (string, []interface{}, error) {
	return b.Insert(collectionsTable).
		Columns("key", "payload", "updated_at").
		Values(key, payload, time.Now().UTC()).
		Suffix(upsertSuffix).
		ToSql()
}

// PostgresStore keeps each collection as one JSONB row of the collections table.
type PostgresStore struct {
	pool *pgxpool.Pool
	psql sq.StatementBuilderType
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool, psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

func (s *PostgresStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	query, args, err := loadQuery(s.psql, key)
	if err != nil {
		return false, fmt.Errorf("build load query: %w", err)
	}
	var payload []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	return true, decode(key, payload, dst)
}

func (s *PostgresStore) Save(ctx context.Context, key string, value any) error {
	payload, err := encode(key, value)
	if err != nil {
		return err
	}
	query, args, err := saveQuery(s.psql, key, string(payload))
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// SQLiteStore is the single-file local driver.
type SQLiteStore struct {
	db   *sql.DB
	psql sq.StatementBuilderType
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, psql: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

func (s *SQLiteStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	query, args, err := loadQuery(s.psql, key)
	if err != nil {
		return false, fmt.Errorf("build load query: %w", err)
	}
	var payload string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	return true, decode(key, []byte(payload), dst)
}

func (s *SQLiteStore) Save(ctx context.Context, key string, value any) error {
	payload, err := encode(key, value)
	if err != nil {
		return err
	}
	query, args, err := saveQuery(s.psql, key, string(payload))
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
