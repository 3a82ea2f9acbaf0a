package httpapi

import (
	"github.com/gin-gonic/gin"
)

// GetProducts handles GET /getproducts.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, products)
}

// GetIngredients handles GET /getingredients.
func (h *Handlers) GetIngredients(c *gin.Context) {
	ingredients, err := h.catalog.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, ingredients)
}
