package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"posservice/internal/domain"
	"posservice/internal/loyalty"
	"posservice/internal/order"
	"posservice/internal/report"
	"posservice/internal/stock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// Totals serialize as JSON numbers, as the storefront expects.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

type fakeOrderStore struct {
	orders    map[uuid.UUID]*domain.Order
	lineItems []domain.OrderLineItem
}

func (s *fakeOrderStore) CreateOrder(_ context.Context, o *domain.Order) error {
	copy := *o
	s.orders[o.ID] = &copy
	return nil
}

func (s *fakeOrderStore) CreateLineItems(_ context.Context, items []domain.OrderLineItem) error {
	s.lineItems = append(s.lineItems, items...)
	return nil
}

func (s *fakeOrderStore) SetCompleted(_ context.Context, id uuid.UUID) error {
	o, ok := s.orders[id]
	if !ok {
		return domain.NotFoundError("order not found")
	}
	o.Completed = true
	return nil
}

func (s *fakeOrderStore) ListOpen(_ context.Context) ([]domain.Order, error) {
	var open []domain.Order
	for _, o := range s.orders {
		if !o.Completed {
			open = append(open, *o)
		}
	}
	return open, nil
}

type fakeStockStore struct {
	quantities map[uuid.UUID]int64
}

func (s *fakeStockStore) DecrementIfPositive(_ context.Context, id uuid.UUID, amount int64) error {
	q, ok := s.quantities[id]
	if !ok {
		return domain.NotFoundError("ingredient not found")
	}
	if q <= 0 {
		return domain.InsufficientStockError("ingredient out of stock")
	}
	s.quantities[id] = q - amount
	return nil
}

func (s *fakeStockStore) SetQuantity(_ context.Context, id uuid.UUID, quantity int64) error {
	if _, ok := s.quantities[id]; !ok {
		return domain.NotFoundError("ingredient not found")
	}
	s.quantities[id] = quantity
	return nil
}

func (s *fakeStockStore) GetIngredient(_ context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	q, ok := s.quantities[id]
	if !ok {
		return nil, domain.NotFoundError("ingredient not found")
	}
	return &domain.Ingredient{ID: id, Quantity: q}, nil
}

type fakeCustomerStore struct {
	customers map[uuid.UUID]*domain.Customer
}

func (s *fakeCustomerStore) GetCustomer(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, domain.NotFoundError("customer not found")
	}
	copy := *c
	return &copy, nil
}

func (s *fakeCustomerStore) UpdatePoints(_ context.Context, id uuid.UUID, points int64) error {
	c, ok := s.customers[id]
	if !ok {
		return domain.NotFoundError("customer not found")
	}
	c.Points = points
	return nil
}

type fakeReportStore struct{}

func (fakeReportStore) CountOrders(_ context.Context, _, _ time.Time) (int64, error) {
	return 2, nil
}

func (fakeReportStore) SumOrderTotals(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (fakeReportStore) ProductSales(_ context.Context, _, _ time.Time) ([]report.ProductSalesRow, error) {
	return nil, nil
}

func (fakeReportStore) EmployeePerformance(_ context.Context, _, _ time.Time) ([]report.EmployeePerformanceRow, error) {
	return nil, nil
}

func (fakeReportStore) IngredientsUsed(_ context.Context, _, _ time.Time) ([]report.UsageRow, error) {
	return nil, nil
}

func (fakeReportStore) ProductUsage(_ context.Context, _, _ time.Time) ([]report.ChartPoint, error) {
	return nil, nil
}

func (fakeReportStore) IngredientUsage(_ context.Context, _, _ time.Time) ([]report.ChartPoint, error) {
	return nil, nil
}

type apiFixture struct {
	router     *gin.Engine
	orderStore *fakeOrderStore
	stockStore *fakeStockStore
	customers  *fakeCustomerStore
	employeeID uuid.UUID
	customerID uuid.UUID
}

func newAPIFixture() *apiFixture {
	logger := zap.NewNop()
	var tracer trace.Tracer = noop.NewTracerProvider().Tracer("test")

	f := &apiFixture{
		orderStore: &fakeOrderStore{orders: make(map[uuid.UUID]*domain.Order)},
		stockStore: &fakeStockStore{quantities: make(map[uuid.UUID]int64)},
		customers:  &fakeCustomerStore{customers: make(map[uuid.UUID]*domain.Customer)},
		employeeID: uuid.New(),
		customerID: uuid.New(),
	}
	f.customers.customers[f.customerID] = &domain.Customer{ID: f.customerID}

	ledger := stock.NewLedger(f.stockStore, logger, tracer)
	loyaltySvc := loyalty.NewService(f.customers, logger, tracer)
	workflow := order.NewWorkflow(f.orderStore, ledger, loyaltySvc, logger, tracer)
	reportSvc := report.NewService(fakeReportStore{}, logger, tracer)

	handlers := NewHandlers(workflow, ledger, nil, nil, nil, reportSvc, logger)
	f.router = NewRouter(handlers)
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSubmitOrder_Success(t *testing.T) {
	f := newAPIFixture()
	ing := uuid.New()
	f.stockStore.quantities[ing] = 2
	p1 := uuid.New()

	rec := f.do(t, http.MethodPost, "/submitorder", map[string]any{
		"products":    []string{p1.String(), p1.String()},
		"ingredients": []string{ing.String()},
		"employee_id": f.employeeID.String(),
		"customer":    f.customerID.String(),
		"total":       9.00,
		"discount":    0,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, f.employeeID.String(), data["employee_id"])
	assert.InDelta(t, 9.0, data["total"], 0.001)

	assert.Len(t, f.orderStore.lineItems, 2)
	assert.Equal(t, int64(1), f.stockStore.quantities[ing])
	assert.Equal(t, int64(9), f.customers.customers[f.customerID].Points)
}

func TestSubmitOrder_InsufficientStockConflict(t *testing.T) {
	f := newAPIFixture()
	ing := uuid.New()
	f.stockStore.quantities[ing] = 0

	rec := f.do(t, http.MethodPost, "/submitorder", map[string]any{
		"products":    []string{uuid.New().String()},
		"ingredients": []string{ing.String()},
		"employee_id": f.employeeID.String(),
		"customer":    f.customerID.String(),
		"total":       4.50,
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["error"])
	// Partial state: header and line item committed before the failure.
	assert.Len(t, f.orderStore.orders, 1)
	assert.Len(t, f.orderStore.lineItems, 1)
}

func TestSubmitOrder_MissingEmployee(t *testing.T) {
	f := newAPIFixture()

	rec := f.do(t, http.MethodPost, "/submitorder", map[string]any{
		"products": []string{uuid.New().String()},
		"customer": f.customerID.String(),
		"total":    4.50,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.orderStore.orders)
}

func TestSubmitOrder_MalformedProductID(t *testing.T) {
	f := newAPIFixture()

	rec := f.do(t, http.MethodPost, "/submitorder", map[string]any{
		"products":    []string{"not-a-uuid"},
		"employee_id": f.employeeID.String(),
		"customer":    f.customerID.String(),
		"total":       4.50,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteOrder_Lifecycle(t *testing.T) {
	f := newAPIFixture()

	rec := f.do(t, http.MethodPost, "/submitorder", map[string]any{
		"products":    []string{uuid.New().String()},
		"employee_id": f.employeeID.String(),
		"customer":    f.customerID.String(),
		"total":       5.00,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	orderID := decodeBody(t, rec)["data"].(map[string]any)["id"].(string)

	rec = f.do(t, http.MethodGet, "/getorders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	open := decodeBody(t, rec)["data"].([]any)
	require.Len(t, open, 1)

	rec = f.do(t, http.MethodPost, "/completeorder", map[string]any{"orderId": orderID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Order marked as complete", decodeBody(t, rec)["message"])

	rec = f.do(t, http.MethodGet, "/getorders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Empty(t, listing.Data)
}

func TestCompleteOrder_MissingID(t *testing.T) {
	f := newAPIFixture()

	rec := f.do(t, http.MethodPost, "/completeorder", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteOrder_UnknownOrder(t *testing.T) {
	f := newAPIFixture()

	rec := f.do(t, http.MethodPost, "/completeorder", map[string]any{"orderId": uuid.New().String()})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateIngredientStock(t *testing.T) {
	f := newAPIFixture()
	ing := uuid.New()
	f.stockStore.quantities[ing] = 0

	rec := f.do(t, http.MethodPost, "/updateingredientstock", map[string]any{
		"ingredient_id": ing.String(),
		"quantity":      25,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(25), f.stockStore.quantities[ing])
}

func TestUpdateIngredientStock_UnknownIngredient(t *testing.T) {
	f := newAPIFixture()

	rec := f.do(t, http.MethodPost, "/updateingredientstock", map[string]any{
		"ingredient_id": uuid.New().String(),
		"quantity":      25,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateIngredientStock_NegativeQuantity(t *testing.T) {
	f := newAPIFixture()
	ing := uuid.New()
	f.stockStore.quantities[ing] = 8

	rec := f.do(t, http.MethodPost, "/updateingredientstock", map[string]any{
		"ingredient_id": ing.String(),
		"quantity":      -3,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int64(8), f.stockStore.quantities[ing])
}

func TestGetXReport(t *testing.T) {
	f := newAPIFixture()

	rec := f.do(t, http.MethodGet, "/getxreport", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["totalOrders"])
}

func TestUsageChart_InvalidInterval(t *testing.T) {
	f := newAPIFixture()

	rec := f.do(t, http.MethodGet, "/getproductsusedchart?interval=fortnight", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fmt.Sprint(decodeBody(t, rec)["error"]), "invalid interval")
}
