package postgres

import (
	"context"
	"time"

	"posservice/internal/domain"
	"posservice/internal/report"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportStore implements the reporting engine's aggregation surface.
type ReportStore struct {
	db *gorm.DB
}

// NewReportStore creates a report store.
func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

func (s *ReportStore) CountOrders(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("order_date >= ? AND order_date < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, domain.PersistenceError("count orders", err)
	}
	return count, nil
}

func (s *ReportStore) SumOrderTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var row struct {
		Subtotal decimal.Decimal
	}
	err := s.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(total), 0) AS subtotal
		     FROM orders
		     WHERE order_date >= ? AND order_date < ?`, from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, domain.PersistenceError("sum order totals", err)
	}
	return row.Subtotal, nil
}

func (s *ReportStore) ProductSales(ctx context.Context, from, to time.Time) ([]report.ProductSalesRow, error) {
	var rows []report.ProductSalesRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT p.name AS name,
		            COALESCE(SUM(oli.quantity), 0) AS quantity,
		            COALESCE(SUM(p.price * oli.quantity), 0) AS total
		     FROM products p
		     JOIN order_line_items oli ON oli.product_id = p.id
		     JOIN orders o ON o.id = oli.order_id
		     WHERE o.order_date >= ? AND o.order_date < ?
		     GROUP BY p.id, p.name
		     ORDER BY total DESC`, from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.PersistenceError("aggregate product sales", err)
	}
	return rows, nil
}

func (s *ReportStore) EmployeePerformance(ctx context.Context, from, to time.Time) ([]report.EmployeePerformanceRow, error) {
	var rows []report.EmployeePerformanceRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT e.name AS name,
		            COUNT(o.id) AS orders,
		            COALESCE(SUM(o.total), 0) AS sales
		     FROM employees e
		     JOIN orders o ON o.employee_id = e.id
		     WHERE o.order_date >= ? AND o.order_date < ?
		     GROUP BY e.id, e.name
		     ORDER BY sales DESC`, from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.PersistenceError("aggregate employee performance", err)
	}
	return rows, nil
}

func (s *ReportStore) IngredientsUsed(ctx context.Context, from, to time.Time) ([]report.UsageRow, error) {
	var rows []report.UsageRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT i.name AS name,
		            COUNT(pi.id) AS count
		     FROM ingredients i
		     JOIN product_ingredients pi ON pi.ingredient_id = i.id
		     JOIN products p ON p.id = pi.product_id
		     JOIN order_line_items oli ON oli.product_id = p.id
		     JOIN orders o ON o.id = oli.order_id
		     WHERE o.order_date >= ? AND o.order_date < ?
		     GROUP BY i.id, i.name
		     ORDER BY i.name ASC`, from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.PersistenceError("aggregate ingredient usage", err)
	}
	return rows, nil
}

func (s *ReportStore) ProductUsage(ctx context.Context, from, to time.Time) ([]report.ChartPoint, error) {
	var rows []report.ChartPoint
	err := s.db.WithContext(ctx).
		Raw(`SELECT p.name AS label,
		            COUNT(oli.product_id) AS value
		     FROM order_line_items oli
		     JOIN products p ON p.id = oli.product_id
		     JOIN orders o ON o.id = oli.order_id
		     WHERE o.order_date >= ? AND o.order_date <= ?
		     GROUP BY p.name
		     ORDER BY value DESC`, from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.PersistenceError("aggregate product usage", err)
	}
	return rows, nil
}

func (s *ReportStore) IngredientUsage(ctx context.Context, from, to time.Time) ([]report.ChartPoint, error) {
	var rows []report.ChartPoint
	err := s.db.WithContext(ctx).
		Raw(`SELECT i.name AS label,
		            COALESCE(SUM(oli.quantity * pi.quantity), 0) AS value
		     FROM order_line_items oli
		     JOIN products p ON p.id = oli.product_id
		     JOIN product_ingredients pi ON pi.product_id = p.id
		     JOIN ingredients i ON i.id = pi.ingredient_id
		     JOIN orders o ON o.id = oli.order_id
		     WHERE o.order_date >= ? AND o.order_date <= ?
		     GROUP BY i.name
		     ORDER BY i.name ASC`, from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.PersistenceError("aggregate ingredient usage", err)
	}
	return rows, nil
}
