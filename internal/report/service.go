// Package report aggregates completed order data into sales, inventory
// and employee-performance summaries. Read-only; nothing here persists a
// report artifact, and the Z-report is computed on demand, not archived.
package report

import (
	"context"
	"time"

	"posservice/internal/config"
	"posservice/internal/domain"
	"posservice/internal/platform/observability"

	"github.com/shopspring/decimal"
)

// ProductSalesRow is per-product revenue over a window.
type ProductSalesRow struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// EmployeePerformanceRow is per-employee order count and revenue.
type EmployeePerformanceRow struct {
	Name   string          `json:"name"`
	Orders int64           `json:"orders"`
	Sales  decimal.Decimal `json:"sales"`
}

// UsageRow is a per-ingredient usage count.
type UsageRow struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ChartPoint is one labeled value on a usage chart.
type ChartPoint struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// HourlySales is one non-empty hour bucket on the X-report.
type HourlySales struct {
	Hour  string          `json:"hour"`
	Total decimal.Decimal `json:"total"`
}

// Store is the aggregation surface backed by the relational store.
type Store interface {
	CountOrders(ctx context.Context, from, to time.Time) (int64, error)
	SumOrderTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	ProductSales(ctx context.Context, from, to time.Time) ([]ProductSalesRow, error)
	EmployeePerformance(ctx context.Context, from, to time.Time) ([]EmployeePerformanceRow, error)
	IngredientsUsed(ctx context.Context, from, to time.Time) ([]UsageRow, error)
	ProductUsage(ctx context.Context, from, to time.Time) ([]ChartPoint, error)
	IngredientUsage(ctx context.Context, from, to time.Time) ([]ChartPoint, error)
}

// XReport is the running same-day summary.
type XReport struct {
	TotalOrders         int64                    `json:"totalOrders"`
	Subtotal            decimal.Decimal          `json:"subtotal"`
	TotalTax            decimal.Decimal          `json:"totalTax"`
	TotalSales          decimal.Decimal          `json:"totalSales"`
	HourlySales         []HourlySales            `json:"hourlySales"`
	ProductSales        []ProductSalesRow        `json:"productSales"`
	EmployeePerformance []EmployeePerformanceRow `json:"employeePerformance"`
}

// ZReport is the period-closing snapshot. Generating it has no durable
// effect in the data model.
type ZReport struct {
	TotalOrders      int64                    `json:"totalOrders"`
	Subtotal         decimal.Decimal          `json:"subtotal"`
	TotalTax         decimal.Decimal          `json:"totalTax"`
	TotalSales       decimal.Decimal          `json:"totalSales"`
	IngredientsUsed  []UsageRow               `json:"ingredientsUsed"`
	SalesPerEmployee []EmployeePerformanceRow `json:"salesPerEmployee"`
	ReportDate       string                   `json:"reportDate"`
	GeneratedAt      time.Time                `json:"generatedAt"`
}

// Service computes reports over the order history.
type Service struct {
	store  Store
	logger observability.Logger
	tracer observability.Tracer

	now func() time.Time
}

// NewService creates a reporting service with explicit dependencies.
func NewService(store Store, logger observability.Logger, tracer observability.Tracer) *Service {
	return &Service{
		store:  store,
		logger: logger,
		tracer: tracer,
		now:    time.Now,
	}
}

// dayBounds returns midnight today and midnight tomorrow.
func (s *Service) dayBounds() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}

// RangeFor resolves a chart interval name to a window ending now.
func RangeFor(interval string, now time.Time) (time.Time, time.Time, error) {
	var start time.Time
	switch interval {
	case "day":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		// Monday of the current week.
		offset := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -offset)
		start = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "year":
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}, time.Time{}, domain.ValidationError("invalid interval: " + interval)
	}
	return start, now, nil
}

// GenerateXReport builds the running summary for the current day.
func (s *Service) GenerateXReport(ctx context.Context) (*XReport, error) {
	ctx, span := s.tracer.Start(ctx, "report_x")
	defer span.End()

	dayStart, dayEnd := s.dayBounds()

	totalOrders, err := s.store.CountOrders(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	subtotal, err := s.store.SumOrderTotals(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	tax := subtotal.Mul(config.SalesTaxRate).Round(2)

	var hourly []HourlySales
	for hour := 0; hour < 24; hour++ {
		from := dayStart.Add(time.Duration(hour) * time.Hour)
		to := from.Add(time.Hour)
		total, err := s.store.SumOrderTotals(ctx, from, to)
		if err != nil {
			return nil, err
		}
		if total.IsPositive() {
			hourly = append(hourly, HourlySales{Hour: from.Format("03:04 PM"), Total: total})
		}
	}

	productSales, err := s.store.ProductSales(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	performance, err := s.store.EmployeePerformance(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &XReport{
		TotalOrders:         totalOrders,
		Subtotal:            subtotal,
		TotalTax:            tax,
		TotalSales:          subtotal.Add(tax),
		HourlySales:         hourly,
		ProductSales:        productSales,
		EmployeePerformance: performance,
	}, nil
}

// GenerateZReport builds the closing snapshot for the current day.
func (s *Service) GenerateZReport(ctx context.Context) (*ZReport, error) {
	ctx, span := s.tracer.Start(ctx, "report_z")
	defer span.End()

	dayStart, dayEnd := s.dayBounds()

	totalOrders, err := s.store.CountOrders(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	subtotal, err := s.store.SumOrderTotals(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	tax := subtotal.Mul(config.SalesTaxRate).Round(2)

	ingredients, err := s.store.IngredientsUsed(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	performance, err := s.store.EmployeePerformance(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &ZReport{
		TotalOrders:      totalOrders,
		Subtotal:         subtotal,
		TotalTax:         tax,
		TotalSales:       subtotal.Add(tax),
		IngredientsUsed:  ingredients,
		SalesPerEmployee: performance,
		ReportDate:       dayStart.Format("2006-01-02"),
		GeneratedAt:      s.now(),
	}, nil
}

// SalesReport returns per-product revenue over [from, to], highest
// revenue first (ordering is the store's concern).
func (s *Service) SalesReport(ctx context.Context, from, to time.Time) ([]ProductSalesRow, error) {
	ctx, span := s.tracer.Start(ctx, "report_sales")
	defer span.End()

	if to.Before(from) {
		return nil, domain.ValidationError("end date precedes start date")
	}
	return s.store.ProductSales(ctx, from, to)
}

// ProductUsageChart returns product usage counts for the interval window.
// An empty window yields a single "No Data" point, matching what the
// storefront expects.
func (s *Service) ProductUsageChart(ctx context.Context, interval string) ([]ChartPoint, error) {
	ctx, span := s.tracer.Start(ctx, "report_product_usage")
	defer span.End()

	from, to, err := RangeFor(interval, s.now())
	if err != nil {
		return nil, err
	}
	points, err := s.store.ProductUsage(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return padEmpty(points), nil
}

// IngredientUsageChart returns recipe-weighted ingredient consumption for
// the interval window.
func (s *Service) IngredientUsageChart(ctx context.Context, interval string) ([]ChartPoint, error) {
	ctx, span := s.tracer.Start(ctx, "report_ingredient_usage")
	defer span.End()

	from, to, err := RangeFor(interval, s.now())
	if err != nil {
		return nil, err
	}
	points, err := s.store.IngredientUsage(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return padEmpty(points), nil
}

func padEmpty(points []ChartPoint) []ChartPoint {
	if len(points) == 0 {
		return []ChartPoint{{Label: "No Data", Value: 0}}
	}
	return points
}
