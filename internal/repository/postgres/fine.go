package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type fineRepository struct {
	db DBTX
}

func NewFineRepository(db DBTX) repository.FineRepository {
	return &fineRepository{db: db}
}

func (r *fineRepository) Create(ctx context.Context, f *domain.Fine) error {
	query := `INSERT INTO fines (user_id, transaction_id, fine_amount, fine_date, is_paid)
	          VALUES ($1, $2, $3, $4, $5) RETURNING fine_id`
	err := r.db.QueryRowContext(ctx, query, f.UserID, f.TransactionID, f.Amount, f.FineDate, f.IsPaid).Scan(&f.ID)
	if err != nil {
		return writeError("failed to insert fine", err)
	}
	return nil
}

func (r *fineRepository) TotalByUser(ctx context.Context, userID int32) (*domain.FineSummary, error) {
	s := &domain.FineSummary{}
	// LEFT JOIN keeps "unknown user" and "no fines yet" distinct: the former
	// yields no row, the latter a zero total.
	query := `SELECT u.first_name, u.last_name, COALESCE(SUM(f.fine_amount), 0)
	          FROM users u
	          LEFT JOIN fines f ON f.user_id = u.user_id
	          WHERE u.user_id = $1
	          GROUP BY u.user_id, u.first_name, u.last_name`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.FirstName, &s.LastName, &s.TotalFines)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound(fmt.Sprintf("no user found with ID %d", userID))
	}
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve total fines", err)
	}
	return s, nil
}
