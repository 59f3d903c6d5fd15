package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type loanRepository struct {
	db DBTX
}

func NewLoanRepository(db DBTX) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO transactions (book_id, user_id, borrow_date, due_date)
	          VALUES ($1, $2, $3, $4) RETURNING transaction_id`
	err := r.db.QueryRowContext(ctx, query, l.BookID, l.UserID, l.BorrowDate, l.DueDate).Scan(&l.ID)
	if err != nil {
		return writeError("failed to insert loan transaction", err)
	}
	return nil
}

func (r *loanRepository) GetOpenLoan(ctx context.Context, bookID, userID int32) (*domain.Loan, error) {
	l := &domain.Loan{}
	var returnDate sql.NullTime
	query := `SELECT transaction_id, book_id, user_id, borrow_date, due_date, return_date
	          FROM transactions
	          WHERE book_id = $1 AND user_id = $2 AND return_date IS NULL
	          ORDER BY borrow_date DESC
	          LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, bookID, userID).Scan(&l.ID, &l.BookID, &l.UserID, &l.BorrowDate, &l.DueDate, &returnDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("no active loan found for this book and user")
	}
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve loan transaction", err)
	}
	if returnDate.Valid {
		l.ReturnDate = &returnDate.Time
	}
	return l, nil
}

func (r *loanRepository) Close(ctx context.Context, loanID int32, returnedAt time.Time) error {
	// return_date IS NULL makes the close idempotent-safe: a loan transitions
	// to closed exactly once.
	query := `UPDATE transactions SET return_date = $1 WHERE transaction_id = $2 AND return_date IS NULL`
	res, err := r.db.ExecContext(ctx, query, returnedAt, loanID)
	if err != nil {
		return writeError("failed to close loan transaction", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.NewStoreError("failed to read affected rows", err)
	}
	if affected == 0 {
		return domain.NewConflict("loan transaction is already closed")
	}
	return nil
}
