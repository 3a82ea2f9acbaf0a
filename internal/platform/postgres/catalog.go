package postgres

import (
	"context"

	"posservice/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogStore serves product and ingredient reads.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a catalog store.
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.WithContext(ctx).
		Preload("ProductIngredients").
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, domain.PersistenceError("list products", err)
	}
	return products, nil
}

func (s *CatalogStore) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	err := s.db.WithContext(ctx).
		Order("name ASC").
		Find(&ingredients).Error
	if err != nil {
		return nil, domain.PersistenceError("list ingredients", err)
	}
	return ingredients, nil
}

func (s *CatalogStore) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "product")
	}
	return &product, nil
}
