package postgres

import (
	"context"

	"posservice/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStore persists order headers and line items. Each method is its
// own commit; the workflow's phase semantics depend on that.
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore creates an order store.
func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return domain.PersistenceError("insert order", err)
	}
	return nil
}

func (s *OrderStore) CreateLineItems(ctx context.Context, items []domain.OrderLineItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&items).Error; err != nil {
		return domain.PersistenceError("insert line items", err)
	}
	return nil
}

func (s *OrderStore) SetCompleted(ctx context.Context, id uuid.UUID) error {
	tx := s.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("completed", true)
	if tx.Error != nil {
		return domain.PersistenceError("update order", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError("order not found")
	}
	return nil
}

func (s *OrderStore) ListOpen(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := s.db.WithContext(ctx).
		Preload("LineItems.Product.ProductIngredients.Ingredient").
		Where("completed = ?", false).
		Order("order_date ASC").
		Find(&orders).Error
	if err != nil {
		return nil, domain.PersistenceError("list open orders", err)
	}
	return orders, nil
}
