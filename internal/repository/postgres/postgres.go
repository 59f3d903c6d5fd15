package postgres

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"

	"github.com/lib/pq"
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories use.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.Registry
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		Registry: NewRegistry(db),
	}
}

func NewRegistry(db DBTX) repository.Registry {
	return repository.Registry{
		Books: NewBookRepository(db),
		Users: NewUserRepository(db),
		Loans: NewLoanRepository(db),
		Fines: NewFineRepository(db),
	}
}

// ExecTx runs fn inside a single read-committed transaction. Any error from
// fn rolls every statement back, so partial writes are never visible.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Registry) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return domain.NewStoreError("failed to begin transaction", err)
	}
	if err := fn(NewRegistry(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.NewStoreError("failed to commit transaction", err)
	}
	return nil
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// writeError translates driver failures on writes into the error taxonomy.
func writeError(msg string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return domain.NewConstraintViolation("duplicate value violates a unique constraint", err)
		case pqForeignKeyViolation:
			return domain.NewConstraintViolation("referenced row does not exist", err)
		}
	}
	return domain.NewStoreError(msg, err)
}
