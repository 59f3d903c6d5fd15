package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	var createdAt time.Time
	query := `SELECT user_id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, ''), created_at FROM users WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Address, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound(fmt.Sprintf("no user found with ID %d", id))
	}
	if err != nil {
		return nil, domain.NewStoreError("failed to retrieve user", err)
	}
	u.CreatedAt = createdAt.Format("2006-01-02")
	return u, nil
}
