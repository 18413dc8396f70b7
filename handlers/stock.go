package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SickWater/clothing-store/models"
	"github.com/SickWater/clothing-store/services"
)

// StockHandler serves manual stock adjustment for fulfillment and
// restocking.
type StockHandler struct {
	stock *services.StockService
}

// NewStockHandler creates a stock handler over the stock service.
func NewStockHandler(stock *services.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

// AdjustStock mutates one size's stock count (admin only). Direction
// defaults to decrease; quantity defaults to 1.
func (h *StockHandler) AdjustStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	var input struct {
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
		Direction string `json:"direction"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product *models.Product
	switch input.Direction {
	case "", "decrease":
		product, err = h.stock.Decrease(c.Request.Context(), uint(id), input.Size, input.Quantity)
	case "increase":
		product, err = h.stock.Increase(c.Request.Context(), uint(id), input.Size, input.Quantity)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be increase or decrease"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "stock updated successfully",
		"product": product,
	})
}
