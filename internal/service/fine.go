package service

import (
	"context"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type fineService struct {
	fineRepo repository.FineRepository
}

func NewFineService(fineRepo repository.FineRepository) FineService {
	return &fineService{fineRepo: fineRepo}
}

// GetTotalFines reports the user's accumulated fines. A user with no fine
// rows gets a zero total; only an unknown user is a not-found outcome.
func (s *fineService) GetTotalFines(ctx context.Context, userID int32) (*domain.FineSummary, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("a valid user ID is required")
	}
	return s.fineRepo.TotalByUser(ctx, userID)
}
