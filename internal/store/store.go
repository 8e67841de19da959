package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"court-reservation-api/internal/model"
)

// SQLSTATE codes we translate
const (
	codeExclusion  = "23P01"
	codeForeignKey = "23503"
	codeUnique     = "23505"
	codeCheck      = "23514"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func pgCode(err error) (string, *pgconn.PgError) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr
	}
	return "", nil
}

// fail maps a driver error onto the taxonomy. Callers handle the
// constraint codes that carry entity-specific meaning first.
func fail(op, entity string, id any, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return &model.NotFoundError{Entity: entity, ID: id}
	}
	switch code, pgErr := pgCode(err); code {
	case codeExclusion:
		return model.ErrConflict
	case codeUnique, codeCheck:
		return &model.ValidationError{Field: entity, Reason: pgErr.Message}
	}
	return &model.PersistenceError{Op: op, Err: err}
}
