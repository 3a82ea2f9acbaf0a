package postgres

import (
	"context"

	"posservice/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewStore implements the review service's persistence surface.
type ReviewStore struct {
	db *gorm.DB
}

// NewReviewStore creates a review store.
func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) CreateReview(ctx context.Context, review *domain.Review) error {
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return domain.PersistenceError("insert review", err)
	}
	return nil
}

func (s *ReviewStore) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "review")
	}
	return &review, nil
}

func (s *ReviewStore) DeleteReview(ctx context.Context, id uuid.UUID) error {
	tx := s.db.WithContext(ctx).Delete(&domain.Review{}, "id = ?", id)
	if tx.Error != nil {
		return domain.PersistenceError("delete review", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError("review not found")
	}
	return nil
}
