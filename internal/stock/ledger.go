// Package stock tracks per-ingredient quantity-on-hand.
package stock

import (
	"context"

	"posservice/internal/domain"
	"posservice/internal/platform/observability"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Store is the persistence surface of the ledger. DecrementIfPositive must
// execute the check and the decrement as one atomic statement (a
// conditional UPDATE) so concurrent submissions cannot race past zero. It
// returns ErrNotFound for unknown ingredients and ErrInsufficientStock
// when the quantity is already zero or below.
type Store interface {
	DecrementIfPositive(ctx context.Context, id uuid.UUID, amount int64) error
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int64) error
	GetIngredient(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error)
}

// Ledger exposes stock operations to the order workflow and the
// administrative endpoints.
type Ledger struct {
	store  Store
	logger observability.Logger
	tracer observability.Tracer
}

// NewLedger creates a stock ledger with explicit dependencies.
func NewLedger(store Store, logger observability.Logger, tracer observability.Tracer) *Ledger {
	return &Ledger{
		store:  store,
		logger: logger,
		tracer: tracer,
	}
}

// Decrement removes one unit of the ingredient. The precondition is
// "quantity > 0 before the decrement", not "quantity >= amount": a batch
// of single-unit decrements can drive stock to exactly zero, and the next
// unit fails.
func (l *Ledger) Decrement(ctx context.Context, id uuid.UUID) error {
	ctx, span := l.tracer.Start(ctx, "stock_decrement")
	defer span.End()
	span.SetAttributes(attribute.String("ingredient.id", id.String()))

	if err := l.store.DecrementIfPositive(ctx, id, 1); err != nil {
		if domain.IsInsufficientStock(err) {
			l.logger.Warn("Ingredient exhausted", zap.String("ingredient_id", id.String()))
		}
		return err
	}
	return nil
}

// Override sets an ingredient's quantity directly, bypassing the
// decrement-if-positive rule. Administrative use only.
func (l *Ledger) Override(ctx context.Context, id uuid.UUID, quantity int64) error {
	ctx, span := l.tracer.Start(ctx, "stock_override")
	defer span.End()

	if quantity < 0 {
		return domain.ValidationError("stock quantity cannot be negative")
	}
	if err := l.store.SetQuantity(ctx, id, quantity); err != nil {
		return err
	}

	l.logger.Info("Stock quantity overridden",
		zap.String("ingredient_id", id.String()),
		zap.Int64("quantity", quantity),
	)
	return nil
}
