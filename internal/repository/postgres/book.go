package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type bookRepository struct {
	db DBTX
}

func NewBookRepository(db DBTX) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author_id, publisher_id, category_id, isbn, publication_year, copies_available)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING book_id`
	err := r.db.QueryRowContext(ctx, query, b.Title, b.AuthorID, b.PublisherID, b.CategoryID, b.ISBN, b.PublicationYear, b.CopiesAvailable).Scan(&b.ID)
	if err != nil {
		return writeError("failed to insert book", err)
	}
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	var isbn sql.NullString
	query := `SELECT book_id, title, author_id, publisher_id, category_id, isbn, publication_year, copies_available FROM books WHERE book_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.AuthorID, &b.PublisherID, &b.CategoryID, &isbn, &b.PublicationYear, &b.CopiesAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound(fmt.Sprintf("no book found with ID %d", id))
	}
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve book", err)
	}
	if isbn.Valid {
		b.ISBN = &isbn.String
	}
	return b, nil
}

func (r *bookRepository) GetDetail(ctx context.Context, id int32) (*domain.BookDetail, error) {
	d := &domain.BookDetail{}
	var isbn sql.NullString
	query := `SELECT b.title, b.isbn, b.publication_year, b.copies_available,
	                 a.first_name, a.last_name, p.name, c.category_name
	          FROM books b
	          JOIN authors a ON b.author_id = a.author_id
	          JOIN publishers p ON b.publisher_id = p.publisher_id
	          JOIN categories c ON b.category_id = c.category_id
	          WHERE b.book_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.Title, &isbn, &d.PublicationYear, &d.CopiesAvailable, &d.AuthorFirstName, &d.AuthorLastName, &d.PublisherName, &d.CategoryName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound(fmt.Sprintf("no book found with ID %d", id))
	}
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve book details", err)
	}
	if isbn.Valid {
		d.ISBN = &isbn.String
	}
	return d, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	query := `SELECT book_id, title, author_id, publisher_id, category_id, isbn, publication_year, copies_available FROM books`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve books", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		var isbn sql.NullString
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.PublisherID, &b.CategoryID, &isbn, &b.PublicationYear, &b.CopiesAvailable); err != nil {
			return nil, domain.NewStoreError("failed to scan book row", err)
		}
		if isbn.Valid {
			b.ISBN = &isbn.String
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("failed to iterate book rows", err)
	}
	return books, nil
}

func (r *bookRepository) DecrementCopies(ctx context.Context, id int32) error {
	// The copies_available > 0 guard keeps two concurrent issues of the last
	// copy from both succeeding.
	query := `UPDATE books SET copies_available = copies_available - 1 WHERE book_id = $1 AND copies_available > 0`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return writeError("failed to decrement available copies", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.NewStoreError("failed to read affected rows", err)
	}
	if affected == 0 {
		return domain.NewConflict("book is not available")
	}
	return nil
}

func (r *bookRepository) IncrementCopies(ctx context.Context, id int32) error {
	query := `UPDATE books SET copies_available = copies_available + 1 WHERE book_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return writeError("failed to increment available copies", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.NewStoreError("failed to read affected rows", err)
	}
	if affected == 0 {
		return domain.NewNotFound(fmt.Sprintf("no book found with ID %d", id))
	}
	return nil
}
