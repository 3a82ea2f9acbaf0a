package postgres

import (
	"context"

	"posservice/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerStore implements the loyalty service's persistence surface.
type CustomerStore struct {
	db *gorm.DB
}

// NewCustomerStore creates a customer store.
func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	if err := s.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "customer")
	}
	return &customer, nil
}

func (s *CustomerStore) UpdatePoints(ctx context.Context, id uuid.UUID, points int64) error {
	tx := s.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", id).
		Update("points", points)
	if tx.Error != nil {
		return domain.PersistenceError("update customer points", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError("customer not found")
	}
	return nil
}
