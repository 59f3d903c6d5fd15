package postgres

import (
	"context"
	"database/sql"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT,
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		author_id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		birth_year INTEGER,
		nationality TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS publishers (
		publisher_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		country TEXT,
		established_year INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		category_id SERIAL PRIMARY KEY,
		category_name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		book_id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		author_id INTEGER NOT NULL REFERENCES authors (author_id),
		publisher_id INTEGER NOT NULL REFERENCES publishers (publisher_id),
		category_id INTEGER NOT NULL REFERENCES categories (category_id),
		isbn TEXT UNIQUE,
		publication_year INTEGER,
		copies_available INTEGER NOT NULL DEFAULT 1 CHECK (copies_available >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id SERIAL PRIMARY KEY,
		book_id INTEGER NOT NULL REFERENCES books (book_id),
		user_id INTEGER NOT NULL REFERENCES users (user_id),
		borrow_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		due_date TIMESTAMPTZ NOT NULL,
		return_date TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS fines (
		fine_id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users (user_id),
		transaction_id INTEGER NOT NULL REFERENCES transactions (transaction_id),
		fine_amount NUMERIC(10,2) NOT NULL,
		fine_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_paid BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

var seedStatements = []string{
	`INSERT INTO users (first_name, last_name, email, phone, address) VALUES
		('John', 'Doe', 'john.doe@email.com', '555-0101', '123 Main St'),
		('Jane', 'Smith', 'jane.smith@email.com', '555-0102', '456 Oak Ave'),
		('Mike', 'Johnson', 'mike.johnson@email.com', '555-0103', '789 Pine Rd'),
		('Sarah', 'Wilson', 'sarah.wilson@email.com', '555-0104', '321 Elm St'),
		('David', 'Brown', 'david.brown@email.com', '555-0105', '654 Maple Dr')`,
	`INSERT INTO authors (first_name, last_name, birth_year, nationality) VALUES
		('F. Scott', 'Fitzgerald', 1896, 'American'),
		('George', 'Orwell', 1903, 'British'),
		('Harper', 'Lee', 1926, 'American'),
		('J.K.', 'Rowling', 1965, 'British'),
		('Stephen', 'King', 1947, 'American'),
		('Agatha', 'Christie', 1890, 'British'),
		('Mark', 'Twain', 1835, 'American'),
		('Jane', 'Austen', 1775, 'British')`,
	`INSERT INTO publishers (name, country, established_year) VALUES
		('Penguin Random House', 'USA', 1927),
		('HarperCollins', 'USA', 1989),
		('Simon & Schuster', 'USA', 1924),
		('Macmillan Publishers', 'UK', 1843),
		('Hachette Book Group', 'France', 1826),
		('Scholastic', 'USA', 1920)`,
	`INSERT INTO categories (category_name) VALUES
		('Fiction'),
		('Mystery'),
		('Science Fiction'),
		('Fantasy'),
		('Romance'),
		('Thriller'),
		('Biography'),
		('History'),
		('Science'),
		('Classic Literature')`,
	`INSERT INTO books (title, author_id, publisher_id, category_id, isbn, publication_year, copies_available) VALUES
		('The Great Gatsby', 1, 1, 10, '978-0-7432-7356-5', 1925, 5),
		('1984', 2, 2, 3, '978-0-452-28423-4', 1949, 3),
		('To Kill a Mockingbird', 3, 3, 1, '978-0-06-112008-4', 1960, 4),
		('Harry Potter and the Philosopher''s Stone', 4, 4, 4, '978-0-7475-3269-9', 1997, 6),
		('The Shining', 5, 5, 6, '978-0-385-12167-5', 1977, 2),
		('Murder on the Orient Express', 6, 1, 2, '978-0-00-816484-9', 1934, 3),
		('The Adventures of Tom Sawyer', 7, 2, 10, '978-0-14-035076-9', 1876, 4),
		('Pride and Prejudice', 8, 3, 5, '978-0-14-143951-8', 1813, 5),
		('Animal Farm', 2, 4, 1, '978-0-452-28424-1', 1945, 3),
		('It', 5, 5, 6, '978-0-670-81302-4', 1986, 2)`,
}

// EnsureSchema creates the table set before the service accepts traffic.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return domain.NewStoreError("failed to create schema", err)
		}
	}
	logger.Info("database schema ensured", "tables", len(schemaStatements))
	return nil
}

// SeedReferenceData loads the sample patrons, reference entities and books.
// It is a no-op when categories are already populated.
func SeedReferenceData(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM categories`).Scan(&count); err != nil {
		return domain.NewStoreError("failed to check existing reference data", err)
	}
	if count > 0 {
		logger.Debug("reference data already present, skipping seed")
		return nil
	}
	for _, stmt := range seedStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return domain.NewStoreError("failed to seed reference data", err)
		}
	}
	logger.Info("reference data seeded")
	return nil
}
