package service

import (
	"context"
	"time"

	"library-backend/internal/domain"
)

type CatalogService interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int32) (*domain.BookDetail, error)
	AddBook(ctx context.Context, book *domain.Book) (int32, error)
}

type LoanService interface {
	IssueBook(ctx context.Context, bookID, userID int32) (*domain.IssueReceipt, error)
	ReturnBook(ctx context.Context, bookID, userID int32, returnedAt *time.Time) (*domain.ReturnReceipt, error)
}

type FineService interface {
	GetTotalFines(ctx context.Context, userID int32) (*domain.FineSummary, error)
}
