// Package loyalty applies order effects to customer point balances.
package loyalty

import (
	"context"

	"posservice/internal/domain"
	"posservice/internal/platform/observability"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var ten = decimal.NewFromInt(10)

// CustomerStore is the persistence surface the loyalty service needs.
type CustomerStore interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	UpdatePoints(ctx context.Context, id uuid.UUID, points int64) error
}

// Service adjusts loyalty balances. ApplyOrderEffect is invoked exactly
// once per order by the order workflow, never per line item.
type Service struct {
	customers CustomerStore
	logger    observability.Logger
	tracer    observability.Tracer
}

// NewService creates a loyalty service with explicit dependencies.
func NewService(customers CustomerStore, logger observability.Logger, tracer observability.Tracer) *Service {
	return &Service{
		customers: customers,
		logger:    logger,
		tracer:    tracer,
	}
}

// NextBalance computes the balance after an order. The rule:
//   - discount > 0 and points/10 covers no more than the total: the whole
//     balance was spent, so it resets to zero;
//   - discount > 0 otherwise: floor(discount) * 10 points are redeemed,
//     never below zero;
//   - no discount: ceil(total) points accrue.
func NextBalance(points int64, total, discount decimal.Decimal) int64 {
	if discount.IsPositive() {
		redeemable := decimal.NewFromInt(points).Div(ten)
		if redeemable.Cmp(total) <= 0 {
			return 0
		}
		next := points - discount.Floor().IntPart()*10
		if next < 0 {
			return 0
		}
		return next
	}
	return points + total.Ceil().IntPart()
}

// ApplyOrderEffect loads the customer, applies NextBalance and persists
// the result. Returns the new balance.
func (s *Service) ApplyOrderEffect(ctx context.Context, customerID uuid.UUID, total, discount decimal.Decimal) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "loyalty_apply_order_effect")
	defer span.End()

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}

	next := NextBalance(customer.Points, total, discount)
	if err := s.customers.UpdatePoints(ctx, customerID, next); err != nil {
		return 0, err
	}

	span.SetAttributes(
		attribute.String("customer.id", customerID.String()),
		attribute.Int64("loyalty.balance", next),
	)
	s.logger.Info("Loyalty balance updated",
		zap.String("customer_id", customerID.String()),
		zap.Int64("previous_points", customer.Points),
		zap.Int64("points", next),
	)

	return next, nil
}
