package httpapi

import (
	"net/http"

	"posservice/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondData writes the success envelope the storefront expects.
func respondData(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// respondError maps the domain error taxonomy onto status codes. Storage
// failures keep the storefront's generic message; their detail stays in
// the logs.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case domain.IsInsufficientStock(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}
}
