package repository

import (
	"context"
	"time"

	"library-backend/internal/domain"
)

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	GetDetail(ctx context.Context, id int32) (*domain.BookDetail, error)
	List(ctx context.Context) ([]domain.Book, error)
	// DecrementCopies takes one copy off the shelf count. It reports a
	// conflict when no copy is left, so the count can never go negative.
	DecrementCopies(ctx context.Context, id int32) error
	IncrementCopies(ctx context.Context, id int32) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	// GetOpenLoan returns the most recent unreturned loan for the
	// (book, user) pair, latest borrow date first.
	GetOpenLoan(ctx context.Context, bookID, userID int32) (*domain.Loan, error)
	Close(ctx context.Context, loanID int32, returnedAt time.Time) error
}

type FineRepository interface {
	Create(ctx context.Context, fine *domain.Fine) error
	TotalByUser(ctx context.Context, userID int32) (*domain.FineSummary, error)
}

// Registry bundles the repositories bound to one database handle, either the
// pool or a single transaction.
type Registry struct {
	Books BookRepository
	Users UserRepository
	Loans LoanRepository
	Fines FineRepository
}

// TxRunner executes fn against a transaction-bound Registry. fn returning an
// error rolls the whole unit back.
type TxRunner interface {
	ExecTx(ctx context.Context, fn func(Registry) error) error
}
