package postgres

import (
	"context"

	"posservice/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockStore implements the stock ledger's persistence surface.
type StockStore struct {
	db *gorm.DB
}

// NewStockStore creates a stock store.
func NewStockStore(db *gorm.DB) *StockStore {
	return &StockStore{db: db}
}

// DecrementIfPositive runs the check and the decrement as one conditional
// UPDATE, so two concurrent submissions can never both take the last
// unit.
func (s *StockStore) DecrementIfPositive(ctx context.Context, id uuid.UUID, amount int64) error {
	tx := s.db.WithContext(ctx).
		Model(&domain.Ingredient{}).
		Where("id = ? AND quantity > 0", id).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if tx.Error != nil {
		return domain.PersistenceError("decrement ingredient", tx.Error)
	}
	if tx.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).
			Model(&domain.Ingredient{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domain.PersistenceError("query ingredient", err)
		}
		if count == 0 {
			return domain.NotFoundError("ingredient not found")
		}
		return domain.InsufficientStockError("ingredient out of stock")
	}
	return nil
}

func (s *StockStore) SetQuantity(ctx context.Context, id uuid.UUID, quantity int64) error {
	tx := s.db.WithContext(ctx).
		Model(&domain.Ingredient{}).
		Where("id = ?", id).
		UpdateColumn("quantity", quantity)
	if tx.Error != nil {
		return domain.PersistenceError("update ingredient", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError("ingredient not found")
	}
	return nil
}

func (s *StockStore) GetIngredient(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "ingredient")
	}
	return &ingredient, nil
}
