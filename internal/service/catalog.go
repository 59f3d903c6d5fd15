package service

import (
	"context"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type catalogService struct {
	bookRepo repository.BookRepository
}

func NewCatalogService(bookRepo repository.BookRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo}
}

func (s *catalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.bookRepo.List(ctx)
}

func (s *catalogService) GetBook(ctx context.Context, id int32) (*domain.BookDetail, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("a valid book ID is required")
	}
	return s.bookRepo.GetDetail(ctx, id)
}

func (s *catalogService) AddBook(ctx context.Context, book *domain.Book) (int32, error) {
	if book.Title == "" {
		return 0, domain.NewValidationError("title is required")
	}
	if book.AuthorID <= 0 || book.PublisherID <= 0 || book.CategoryID <= 0 {
		return 0, domain.NewValidationError("author_id, publisher_id and category_id are required")
	}
	if book.CopiesAvailable < 0 {
		return 0, domain.NewValidationError("copies_available cannot be negative")
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return 0, err
	}
	return book.ID, nil
}
