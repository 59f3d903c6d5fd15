package domain

import "time"

// Loan is a row of the transactions ledger. A loan is open while ReturnDate
// is nil and closes exactly once, when the book comes back.
type Loan struct {
	ID         int32      `json:"transaction_id"`
	BookID     int32      `json:"book_id"`
	UserID     int32      `json:"user_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// IssueReceipt reports the outcome of issuing a book. CopiesRemaining is the
// pre-decrement count minus one, not a re-read.
type IssueReceipt struct {
	Title           string    `json:"title"`
	DueDate         time.Time `json:"due_date"`
	CopiesRemaining int32     `json:"copies_remaining"`
}

type ReturnReceipt struct {
	Title       string    `json:"title"`
	UserName    string    `json:"user_name"`
	DueDate     time.Time `json:"due_date"`
	ReturnDate  time.Time `json:"return_date"`
	OverdueDays int32     `json:"overdue_days"`
	FineAmount  float64   `json:"fine_amount"`
}
