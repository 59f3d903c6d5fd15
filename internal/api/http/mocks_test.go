package http_test

import (
	"context"
	"time"

	"library-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockCatalogService) GetBook(ctx context.Context, id int32) (*domain.BookDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookDetail), args.Error(1)
}
func (m *MockCatalogService) AddBook(ctx context.Context, book *domain.Book) (int32, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(int32), args.Error(1)
}

// MockLoanService
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) IssueBook(ctx context.Context, bookID, userID int32) (*domain.IssueReceipt, error) {
	args := m.Called(ctx, bookID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssueReceipt), args.Error(1)
}
func (m *MockLoanService) ReturnBook(ctx context.Context, bookID, userID int32, returnedAt *time.Time) (*domain.ReturnReceipt, error) {
	args := m.Called(ctx, bookID, userID, returnedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnReceipt), args.Error(1)
}

// MockFineService
type MockFineService struct {
	mock.Mock
}

func (m *MockFineService) GetTotalFines(ctx context.Context, userID int32) (*domain.FineSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FineSummary), args.Error(1)
}
