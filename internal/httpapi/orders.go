package httpapi

import (
	"net/http"

	"posservice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"posservice/internal/order"
)

type submitOrderRequest struct {
	Products    []string `json:"products"`
	Ingredients []string `json:"ingredients"`
	EmployeeID  string   `json:"employee_id"`
	Customer    string   `json:"customer"`
	Total       float64  `json:"total"`
	Discount    float64  `json:"discount"`
}

type orderReceiptResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Total      float64   `json:"total"`
	OrderDate  string    `json:"order_date"`
}

// SubmitOrder handles POST /submitorder.
func (h *Handlers) SubmitOrder(c *gin.Context) {
	var body submitOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, domain.ValidationError("invalid request body"))
		return
	}

	req := order.SubmitRequest{
		Total:    decimal.NewFromFloat(body.Total),
		Discount: decimal.NewFromFloat(body.Discount),
	}

	var parseErr error
	req.EmployeeID, parseErr = parseOptionalID(body.EmployeeID)
	if parseErr != nil {
		respondError(c, parseErr)
		return
	}
	req.CustomerID, parseErr = parseOptionalID(body.Customer)
	if parseErr != nil {
		respondError(c, parseErr)
		return
	}
	req.ProductIDs, parseErr = parseIDList(body.Products)
	if parseErr != nil {
		respondError(c, parseErr)
		return
	}
	req.IngredientIDs, parseErr = parseIDList(body.Ingredients)
	if parseErr != nil {
		respondError(c, parseErr)
		return
	}

	receipt, err := h.orders.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, orderReceiptResponse{
		ID:         receipt.ID,
		EmployeeID: receipt.EmployeeID,
		Total:      receipt.Total.InexactFloat64(),
		OrderDate:  receipt.OrderDate.Format("2006-01-02T15:04:05"),
	})
}

// GetOrders handles GET /getorders: the kitchen display's open-order
// list.
func (h *Handlers) GetOrders(c *gin.Context) {
	open, err := h.orders.ListOpen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, open)
}

type completeOrderRequest struct {
	OrderID string `json:"orderId"`
}

// CompleteOrder handles POST /completeorder.
func (h *Handlers) CompleteOrder(c *gin.Context) {
	var body completeOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.OrderID == "" {
		respondError(c, domain.ValidationError("order id is required"))
		return
	}

	orderID, err := uuid.Parse(body.OrderID)
	if err != nil {
		respondError(c, domain.ValidationError("invalid order id"))
		return
	}

	if err := h.orders.MarkComplete(c.Request.Context(), orderID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order marked as complete"})
}

type updateStockRequest struct {
	IngredientID string `json:"ingredient_id"`
	Quantity     *int64 `json:"quantity"`
}

// UpdateIngredientStock handles POST /updateingredientstock, the
// administrative override that bypasses the decrement-if-positive rule.
func (h *Handlers) UpdateIngredientStock(c *gin.Context) {
	var body updateStockRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, domain.ValidationError("invalid request body"))
		return
	}
	if body.IngredientID == "" || body.Quantity == nil {
		respondError(c, domain.ValidationError("ingredient_id and quantity are required"))
		return
	}

	ingredientID, err := uuid.Parse(body.IngredientID)
	if err != nil {
		respondError(c, domain.ValidationError("invalid ingredient id"))
		return
	}

	if err := h.ledger.Override(c.Request.Context(), ingredientID, *body.Quantity); err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("Stock corrected via admin endpoint",
		zap.String("ingredient_id", ingredientID.String()),
		zap.Int64("quantity", *body.Quantity),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient stock updated"})
}

func parseOptionalID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ValidationError("invalid id: " + raw)
	}
	return id, nil
}

func parseIDList(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, domain.ValidationError("invalid id: " + r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
