package service

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

// LoanPolicy carries the lending rules. Defaults come from configuration:
// a 14 day loan period and 1.00 per overdue day.
type LoanPolicy struct {
	PeriodDays    int32
	DailyFineRate float64
}

type loanService struct {
	store  repository.TxRunner
	policy LoanPolicy
	now    func() time.Time
}

func NewLoanService(store repository.TxRunner, policy LoanPolicy) LoanService {
	return &loanService{
		store:  store,
		policy: policy,
		now:    time.Now,
	}
}

// IssueBook opens a loan and takes one copy off the shelf. Both writes run in
// one transaction so a failure leaves the ledger and the counter untouched.
func (s *loanService) IssueBook(ctx context.Context, bookID, userID int32) (*domain.IssueReceipt, error) {
	if bookID <= 0 || userID <= 0 {
		return nil, domain.NewValidationError("book_id and user_id are required")
	}

	var receipt *domain.IssueReceipt
	err := s.store.ExecTx(ctx, func(r repository.Registry) error {
		book, err := r.Books.GetByID(ctx, bookID)
		if err != nil {
			return err
		}
		if book.CopiesAvailable <= 0 {
			return domain.NewConflict(fmt.Sprintf("book %q is not available", book.Title))
		}

		borrowedAt := s.now()
		dueAt := borrowedAt.Add(time.Duration(s.policy.PeriodDays) * 24 * time.Hour)
		loan := &domain.Loan{
			BookID:     bookID,
			UserID:     userID,
			BorrowDate: borrowedAt,
			DueDate:    dueAt,
		}
		if err := r.Loans.Create(ctx, loan); err != nil {
			return err
		}
		if err := r.Books.DecrementCopies(ctx, bookID); err != nil {
			return err
		}

		receipt = &domain.IssueReceipt{
			Title:           book.Title,
			DueDate:         dueAt,
			CopiesRemaining: book.CopiesAvailable - 1,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("book issued", "book_id", bookID, "user_id", userID, "due_date", receipt.DueDate)
	return receipt, nil
}

// ReturnBook closes the most recent open loan for the (book, user) pair,
// puts the copy back and records a fine when the return is overdue. The
// read-decide-write chain runs in one transaction.
func (s *loanService) ReturnBook(ctx context.Context, bookID, userID int32, returnedAt *time.Time) (*domain.ReturnReceipt, error) {
	if bookID <= 0 || userID <= 0 {
		return nil, domain.NewValidationError("book_id and user_id are required")
	}

	var receipt *domain.ReturnReceipt
	err := s.store.ExecTx(ctx, func(r repository.Registry) error {
		loan, err := r.Loans.GetOpenLoan(ctx, bookID, userID)
		if err != nil {
			return err
		}
		user, err := r.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		book, err := r.Books.GetByID(ctx, bookID)
		if err != nil {
			return err
		}

		returnDate := s.now()
		if returnedAt != nil {
			returnDate = *returnedAt
		}
		overdue := overdueDays(loan.DueDate, returnDate)
		fineAmount := float64(overdue) * s.policy.DailyFineRate

		if err := r.Books.IncrementCopies(ctx, bookID); err != nil {
			return err
		}
		if err := r.Loans.Close(ctx, loan.ID, returnDate); err != nil {
			return err
		}
		if overdue > 0 {
			fine := &domain.Fine{
				UserID:        userID,
				TransactionID: loan.ID,
				Amount:        fineAmount,
				FineDate:      returnDate,
			}
			if err := r.Fines.Create(ctx, fine); err != nil {
				return err
			}
		}

		receipt = &domain.ReturnReceipt{
			Title:       book.Title,
			UserName:    user.FullName(),
			DueDate:     loan.DueDate,
			ReturnDate:  returnDate,
			OverdueDays: overdue,
			FineAmount:  fineAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("book returned", "book_id", bookID, "user_id", userID, "overdue_days", receipt.OverdueDays, "fine_amount", receipt.FineAmount)
	return receipt, nil
}

// overdueDays truncates to whole 24h periods past the due timestamp, never
// negative. A return 23h59m late is still day zero.
func overdueDays(due, returned time.Time) int32 {
	if !returned.After(due) {
		return 0
	}
	return int32(returned.Sub(due) / (24 * time.Hour))
}
