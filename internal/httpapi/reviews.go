package httpapi

import (
	"net/http"

	"posservice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type addReviewRequest struct {
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	ReviewText string `json:"review_text"`
}

// AddReview handles POST /addreview.
func (h *Handlers) AddReview(c *gin.Context) {
	var body addReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, domain.ValidationError("invalid request body"))
		return
	}
	if body.ProductID == "" || body.CustomerID == "" || body.ReviewText == "" {
		respondError(c, domain.ValidationError("missing required fields"))
		return
	}

	productID, err := uuid.Parse(body.ProductID)
	if err != nil {
		respondError(c, domain.ValidationError("invalid product id"))
		return
	}
	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		respondError(c, domain.ValidationError("invalid customer id"))
		return
	}

	review, rerr := h.reviews.Add(c.Request.Context(), productID, customerID, body.ReviewText)
	if rerr != nil {
		respondError(c, rerr)
		return
	}
	respondData(c, review)
}

type deleteReviewRequest struct {
	ReviewID   string `json:"review_id"`
	CustomerID string `json:"customer_id"`
}

// DeleteReview handles POST /deletereview. Only the authoring customer
// may delete.
func (h *Handlers) DeleteReview(c *gin.Context) {
	var body deleteReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, domain.ValidationError("invalid request body"))
		return
	}
	if body.ReviewID == "" || body.CustomerID == "" {
		respondError(c, domain.ValidationError("missing required fields"))
		return
	}

	reviewID, err := uuid.Parse(body.ReviewID)
	if err != nil {
		respondError(c, domain.ValidationError("invalid review id"))
		return
	}
	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		respondError(c, domain.ValidationError("invalid customer id"))
		return
	}

	if err := h.reviews.Remove(c.Request.Context(), reviewID, customerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
