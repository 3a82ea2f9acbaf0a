// Package review handles customer product reviews. Reviews are
// independent of the order workflow.
package review

import (
	"context"
	"strings"
	"time"

	"posservice/internal/domain"
	"posservice/internal/platform/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the persistence surface for reviews.
type Store interface {
	CreateReview(ctx context.Context, review *domain.Review) error
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

// ProductFinder checks product existence.
type ProductFinder interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

// CustomerFinder checks customer existence.
type CustomerFinder interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

// Service implements review submission and removal.
type Service struct {
	reviews   Store
	products  ProductFinder
	customers CustomerFinder
	logger    observability.Logger
	tracer    observability.Tracer

	now func() time.Time
}

// NewService creates a review service with explicit dependencies.
func NewService(reviews Store, products ProductFinder, customers CustomerFinder, logger observability.Logger, tracer observability.Tracer) *Service {
	return &Service{
		reviews:   reviews,
		products:  products,
		customers: customers,
		logger:    logger,
		tracer:    tracer,
		now:       time.Now,
	}
}

// Add creates a review after verifying the product and customer exist.
func (s *Service) Add(ctx context.Context, productID, customerID uuid.UUID, text string) (*domain.Review, error) {
	ctx, span := s.tracer.Start(ctx, "review_add")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return nil, domain.ValidationError("review text is required")
	}
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:         uuid.New(),
		ProductID:  productID,
		CustomerID: customerID,
		ReviewText: text,
		CreatedAt:  s.now(),
	}
	if err := s.reviews.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	s.logger.Info("Review added",
		zap.String("review_id", review.ID.String()),
		zap.String("product_id", productID.String()),
	)
	return review, nil
}

// Remove deletes a review. Only the authoring customer may remove it.
func (s *Service) Remove(ctx context.Context, reviewID, customerID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "review_remove")
	defer span.End()

	review, err := s.reviews.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.CustomerID != customerID {
		return domain.ForbiddenError("review belongs to another customer")
	}
	if err := s.reviews.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	s.logger.Info("Review removed", zap.String("review_id", reviewID.String()))
	return nil
}
