// Package order implements the order-submission workflow, the only
// component with multi-phase commit semantics in the backend.
package order

import (
	"context"
	"time"

	"posservice/internal/domain"
	"posservice/internal/platform/observability"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Phase identifies which commit phase of a submission failed.
type Phase string

const (
	PhaseValidate    Phase = "validate"
	PhaseOrderHeader Phase = "persist_order_header"
	PhaseLineItems   Phase = "persist_line_items"
	PhaseStockAdjust Phase = "adjust_stock"
)

// PhaseError wraps a failure with the phase it occurred in. Phases before
// the failing one remain committed; callers must tolerate the partial
// state (an order row without line items, line items without stock
// decrements) and resubmit in full if desired.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return string(e.Phase) + ": " + e.Err.Error()
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// OrderStore persists order headers and line items. Each call is its own
// commit; the workflow never spans a transaction across calls.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	CreateLineItems(ctx context.Context, items []domain.OrderLineItem) error
	SetCompleted(ctx context.Context, id uuid.UUID) error
	ListOpen(ctx context.Context) ([]domain.Order, error)
}

// StockLedger is the decrement surface consumed in the stock phase.
type StockLedger interface {
	Decrement(ctx context.Context, id uuid.UUID) error
}

// LoyaltyAccounts applies the once-per-order point effect.
type LoyaltyAccounts interface {
	ApplyOrderEffect(ctx context.Context, customerID uuid.UUID, total, discount decimal.Decimal) (int64, error)
}

// SubmitRequest is a validated order submission. Ingredient ids are the
// flattened list supplied by the client, not resolved from recipes.
type SubmitRequest struct {
	EmployeeID    uuid.UUID
	CustomerID    uuid.UUID
	ProductIDs    []uuid.UUID
	IngredientIDs []uuid.UUID
	Total         decimal.Decimal
	Discount      decimal.Decimal
}

// Receipt is the persisted order summary returned to the caller.
type Receipt struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	Total      decimal.Decimal
	OrderDate  time.Time
}

// IngredientRef names an ingredient on a kitchen-display item.
type IngredientRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// OpenOrderItem is one line item expanded with product detail.
type OpenOrderItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Ingredients []IngredientRef `json:"ingredients"`
}

// OpenOrder is an incomplete order shaped for the kitchen display.
type OpenOrder struct {
	ID         uuid.UUID       `json:"id"`
	EmployeeID uuid.UUID       `json:"employee_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	OrderDate  time.Time       `json:"order_date"`
	Items      []OpenOrderItem `json:"items"`
}

// Workflow coordinates the three commit phases of a submission.
type Workflow struct {
	orders  OrderStore
	stock   StockLedger
	loyalty LoyaltyAccounts
	logger  observability.Logger
	tracer  observability.Tracer

	now   func() time.Time
	newID func() uuid.UUID
}

// NewWorkflow creates an order workflow with explicit dependencies.
func NewWorkflow(orders OrderStore, stock StockLedger, loyalty LoyaltyAccounts, logger observability.Logger, tracer observability.Tracer) *Workflow {
	return &Workflow{
		orders:  orders,
		stock:   stock,
		loyalty: loyalty,
		logger:  logger,
		tracer:  tracer,
		now:     time.Now,
		newID:   uuid.New,
	}
}

// Submit runs the submission phases in order: validate, persist the order
// header, persist line items and apply the loyalty effect, decrement
// stock. A failure in phase N stops the run and leaves phases before N
// committed.
func (w *Workflow) Submit(ctx context.Context, req SubmitRequest) (*Receipt, error) {
	ctx, span := w.tracer.Start(ctx, "order_submit")
	defer span.End()

	fail := func(phase Phase, err error) (*Receipt, error) {
		span.SetAttributes(attribute.String("order.failed_phase", string(phase)))
		span.SetStatus(codes.Error, err.Error())
		w.logger.Error("Order submission failed",
			zap.String("phase", string(phase)),
			zap.Error(err),
		)
		return nil, &PhaseError{Phase: phase, Err: err}
	}

	if err := validate(req); err != nil {
		return fail(PhaseValidate, err)
	}

	order := &domain.Order{
		ID:         w.newID(),
		EmployeeID: req.EmployeeID,
		CustomerID: req.CustomerID,
		Total:      req.Total,
		OrderDate:  w.now(),
	}
	span.SetAttributes(
		attribute.String("order.id", order.ID.String()),
		attribute.Int("order.product_count", len(req.ProductIDs)),
	)

	if err := w.persistHeader(ctx, order); err != nil {
		return fail(PhaseOrderHeader, err)
	}
	if err := w.persistLineItems(ctx, order.ID, req); err != nil {
		return fail(PhaseLineItems, err)
	}
	if err := w.adjustStock(ctx, req.IngredientIDs); err != nil {
		return fail(PhaseStockAdjust, err)
	}

	span.SetStatus(codes.Ok, "order submitted")
	w.logger.Info("Order submitted",
		zap.String("order_id", order.ID.String()),
		zap.String("employee_id", order.EmployeeID.String()),
		zap.String("total", order.Total.String()),
	)

	return &Receipt{
		ID:         order.ID,
		EmployeeID: order.EmployeeID,
		Total:      order.Total,
		OrderDate:  order.OrderDate,
	}, nil
}

func validate(req SubmitRequest) error {
	if req.EmployeeID == uuid.Nil {
		return domain.ValidationError("employee_id is required")
	}
	if req.CustomerID == uuid.Nil {
		return domain.ValidationError("customer is required")
	}
	if len(req.ProductIDs) == 0 {
		return domain.ValidationError("at least one product is required")
	}
	if req.Total.IsNegative() {
		return domain.ValidationError("total cannot be negative")
	}
	if req.Discount.IsNegative() {
		return domain.ValidationError("discount cannot be negative")
	}
	return nil
}

func (w *Workflow) persistHeader(ctx context.Context, order *domain.Order) error {
	ctx, span := w.tracer.Start(ctx, "order_persist_header")
	defer span.End()
	return w.orders.CreateOrder(ctx, order)
}

// persistLineItems inserts one quantity-1 row per submitted product id.
// Duplicate ids produce duplicate rows, not merged quantities. The loyalty
// effect is applied once for the whole order after the rows commit.
func (w *Workflow) persistLineItems(ctx context.Context, orderID uuid.UUID, req SubmitRequest) error {
	ctx, span := w.tracer.Start(ctx, "order_persist_line_items")
	defer span.End()

	items := make([]domain.OrderLineItem, 0, len(req.ProductIDs))
	for _, productID := range req.ProductIDs {
		items = append(items, domain.OrderLineItem{
			ID:        w.newID(),
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  1,
		})
	}
	if err := w.orders.CreateLineItems(ctx, items); err != nil {
		return err
	}

	if _, err := w.loyalty.ApplyOrderEffect(ctx, req.CustomerID, req.Total, req.Discount); err != nil {
		return err
	}
	return nil
}

// adjustStock decrements each client-supplied ingredient id by one. The
// first exhausted ingredient aborts the remainder; earlier decrements in
// this phase stay applied.
func (w *Workflow) adjustStock(ctx context.Context, ingredientIDs []uuid.UUID) error {
	ctx, span := w.tracer.Start(ctx, "order_adjust_stock")
	defer span.End()

	for _, id := range ingredientIDs {
		if err := w.stock.Decrement(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// MarkComplete sets the completion flag. Setting it twice is harmless.
func (w *Workflow) MarkComplete(ctx context.Context, orderID uuid.UUID) error {
	ctx, span := w.tracer.Start(ctx, "order_mark_complete")
	defer span.End()

	if err := w.orders.SetCompleted(ctx, orderID); err != nil {
		return err
	}
	w.logger.Info("Order marked complete", zap.String("order_id", orderID.String()))
	return nil
}

// ListOpen returns incomplete orders, oldest first, expanded with product
// detail and ingredient names for the kitchen display.
func (w *Workflow) ListOpen(ctx context.Context) ([]OpenOrder, error) {
	ctx, span := w.tracer.Start(ctx, "order_list_open")
	defer span.End()

	orders, err := w.orders.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	open := make([]OpenOrder, 0, len(orders))
	for _, o := range orders {
		view := OpenOrder{
			ID:         o.ID,
			EmployeeID: o.EmployeeID,
			CustomerID: o.CustomerID,
			Total:      o.Total,
			OrderDate:  o.OrderDate,
			Items:      make([]OpenOrderItem, 0, len(o.LineItems)),
		}
		for _, li := range o.LineItems {
			item := OpenOrderItem{
				ProductID: li.ProductID,
				Quantity:  li.Quantity,
			}
			if li.Product != nil {
				item.Name = li.Product.Name
				item.Price = li.Product.Price
				for _, pi := range li.Product.ProductIngredients {
					if pi.Ingredient == nil {
						continue
					}
					item.Ingredients = append(item.Ingredients, IngredientRef{
						ID:   pi.Ingredient.ID,
						Name: pi.Ingredient.Name,
					})
				}
			}
			view.Items = append(view.Items, item)
		}
		open = append(open, view)
	}
	return open, nil
}
