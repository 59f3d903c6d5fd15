package postgres_test

import (
	"context"
	"testing"

	"library-backend/internal/domain"
	"library-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBookRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		isbn := "978-0-452-28423-4"
		book := &domain.Book{
			Title:           "1984",
			AuthorID:        2,
			PublisherID:     2,
			CategoryID:      3,
			ISBN:            &isbn,
			PublicationYear: 1949,
			CopiesAvailable: 3,
		}

		mock.ExpectQuery("INSERT INTO books").
			WithArgs(book.Title, book.AuthorID, book.PublisherID, book.CategoryID, isbn, book.PublicationYear, book.CopiesAvailable).
			WillReturnRows(sqlmock.NewRows([]string{"book_id"}).AddRow(11))

		err := repo.Create(ctx, book)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), book.ID)
	})

	t.Run("Duplicate ISBN", func(t *testing.T) {
		isbn := "978-0-452-28423-4"
		book := &domain.Book{Title: "1984", AuthorID: 2, PublisherID: 2, CategoryID: 3, ISBN: &isbn}

		mock.ExpectQuery("INSERT INTO books").
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.Create(ctx, book)
		assert.Error(t, err)
		assert.Equal(t, domain.CodeConstraint, domain.CodeOf(err))
	})

	t.Run("Dangling Author Reference", func(t *testing.T) {
		book := &domain.Book{Title: "1984", AuthorID: 999, PublisherID: 2, CategoryID: 3}

		mock.ExpectQuery("INSERT INTO books").
			WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

		err := repo.Create(ctx, book)
		assert.Error(t, err)
		assert.Equal(t, domain.CodeConstraint, domain.CodeOf(err))
	})
}

func TestBookRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"book_id", "title", "author_id", "publisher_id", "category_id", "isbn", "publication_year", "copies_available"}).
			AddRow(1, "The Great Gatsby", 1, 1, 10, "978-0-7432-7356-5", 1925, 5)

		mock.ExpectQuery("SELECT (.+) FROM books WHERE book_id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		book, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, book)
		assert.Equal(t, "The Great Gatsby", book.Title)
		assert.Equal(t, int32(5), book.CopiesAvailable)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM books WHERE book_id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"book_id", "title", "author_id", "publisher_id", "category_id", "isbn", "publication_year", "copies_available"}))

		book, err := repo.GetByID(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, book)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
	})

	t.Run("Null ISBN", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"book_id", "title", "author_id", "publisher_id", "category_id", "isbn", "publication_year", "copies_available"}).
			AddRow(2, "Untitled Proof", 1, 1, 1, nil, 2024, 1)

		mock.ExpectQuery("SELECT (.+) FROM books WHERE book_id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		book, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.Nil(t, book.ISBN)
	})
}

func TestBookRepository_GetDetail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"title", "isbn", "publication_year", "copies_available", "first_name", "last_name", "name", "category_name"}).
			AddRow("1984", "978-0-452-28423-4", 1949, 3, "George", "Orwell", "HarperCollins", "Science Fiction")

		mock.ExpectQuery("SELECT (.+) FROM books b").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		detail, err := repo.GetDetail(ctx, 2)
		assert.NoError(t, err)
		assert.NotNil(t, detail)
		assert.Equal(t, "Orwell", detail.AuthorLastName)
		assert.Equal(t, "HarperCollins", detail.PublisherName)
		assert.Equal(t, "Science Fiction", detail.CategoryName)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM books b").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"title", "isbn", "publication_year", "copies_available", "first_name", "last_name", "name", "category_name"}))

		detail, err := repo.GetDetail(ctx, 404)
		assert.Error(t, err)
		assert.Nil(t, detail)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
	})
}

func TestBookRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"book_id", "title", "author_id", "publisher_id", "category_id", "isbn", "publication_year", "copies_available"}).
		AddRow(1, "The Great Gatsby", 1, 1, 10, "978-0-7432-7356-5", 1925, 5).
		AddRow(2, "1984", 2, 2, 3, "978-0-452-28423-4", 1949, 3)

	mock.ExpectQuery("SELECT (.+) FROM books").WillReturnRows(rows)

	books, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, "1984", books[1].Title)
}

func TestBookRepository_DecrementCopies(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE books SET copies_available = copies_available - 1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DecrementCopies(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("No Copies Left", func(t *testing.T) {
		mock.ExpectExec("UPDATE books SET copies_available = copies_available - 1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DecrementCopies(ctx, 1)
		assert.Error(t, err)
		assert.Equal(t, domain.CodeConflict, domain.CodeOf(err))
	})
}

func TestBookRepository_IncrementCopies(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE books SET copies_available = copies_available \\+ 1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.IncrementCopies(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("Unknown Book", func(t *testing.T) {
		mock.ExpectExec("UPDATE books SET copies_available = copies_available \\+ 1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.IncrementCopies(ctx, 99)
		assert.Error(t, err)
		assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
	})
}
