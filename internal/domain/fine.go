package domain

import "time"

type Fine struct {
	ID            int32     `json:"fine_id"`
	UserID        int32     `json:"user_id"`
	TransactionID int32     `json:"transaction_id"`
	Amount        float64   `json:"fine_amount"`
	FineDate      time.Time `json:"fine_date"`
	IsPaid        bool      `json:"is_paid"`
}

// FineSummary aggregates a user's fines on read; there is no stored balance.
type FineSummary struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	TotalFines float64 `json:"total_fines"`
}
