package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// Postgres implements Store on a single JSONB-backed documents table.
// Equality filters compile to JSONB containment so the database resolves
// them against the GIN index.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed document store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (s *Postgres) Insert(ctx context.Context, collection, id string, createdAt time.Time, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, created_at, data) VALUES ($1, $2, $3, $4)`,
		collection, id, createdAt, data)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *Postgres) FindOne(ctx context.Context, collection string, filter Filter) ([]byte, error) {
	cond, err := marshalFilter(filter)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND data @> $2 LIMIT 1`,
		collection, cond).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoDocuments
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return data, nil
}

func (s *Postgres) Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([][]byte, error) {
	cond, err := marshalFilter(filter)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 || limit > MaxListResults {
		limit = MaxListResults
	}

	query := `SELECT data FROM documents WHERE collection = $1 AND data @> $2`
	if opts.SortByCreatedAtDesc {
		query += ` ORDER BY created_at DESC`
	}
	query += ` LIMIT $3`

	rows, err := s.pool.Query(ctx, query, collection, cond, limit)
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}
	defer rows.Close()

	var docs [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, data)
	}
	return docs, rows.Err()
}

func (s *Postgres) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET data = data || $3 WHERE collection = $1 AND id = $2`,
		collection, id, patch)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoDocuments
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoDocuments
	}
	return nil
}

func (s *Postgres) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	cond, err := marshalFilter(filter)
	if err != nil {
		return 0, err
	}

	var n int64
	err = s.pool.QueryRow(ctx,
		`SELECT count(*) FROM documents WHERE collection = $1 AND data @> $2`,
		collection, cond).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

// marshalFilter serializes a filter for JSONB containment. A nil filter
// becomes the empty object, which matches every document.
func marshalFilter(filter Filter) ([]byte, error) {
	if len(filter) == 0 {
		return []byte(`{}`), nil
	}
	cond, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("marshal filter: %w", err)
	}
	return cond, nil
}
