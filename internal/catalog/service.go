// Package catalog serves the read-mostly menu data: products, their
// recipes and the ingredient list.
package catalog

import (
	"context"

	"posservice/internal/domain"
	"posservice/internal/platform/observability"
)

// Store is the persistence surface of the catalog.
type Store interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
}

// Service exposes catalog reads.
type Service struct {
	store  Store
	logger observability.Logger
	tracer observability.Tracer
}

// NewService creates a catalog service with explicit dependencies.
func NewService(store Store, logger observability.Logger, tracer observability.Tracer) *Service {
	return &Service{
		store:  store,
		logger: logger,
		tracer: tracer,
	}
}

// ListProducts returns every menu item with its recipe associations.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "catalog_list_products")
	defer span.End()
	return s.store.ListProducts(ctx)
}

// ListIngredients returns every stock-tracked ingredient.
func (s *Service) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "catalog_list_ingredients")
	defer span.End()
	return s.store.ListIngredients(ctx)
}
