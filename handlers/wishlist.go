package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SickWater/clothing-store/middleware"
	"github.com/SickWater/clothing-store/models"
	"github.com/SickWater/clothing-store/services"
)

// WishlistHandler serves the authenticated user's saved products.
type WishlistHandler struct {
	wishlist services.WishlistStore
	products services.ProductStore
}

// NewWishlistHandler creates a wishlist handler over the given stores.
func NewWishlistHandler(wishlist services.WishlistStore, products services.ProductStore) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, products: products}
}

// GetWishlist retrieves the user's wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	items, err := h.wishlist.ItemsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": items})
}

// AddToWishlist saves a product; duplicates are absorbed
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	var input models.WishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.products.FindByID(c.Request.Context(), input.ProductID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.wishlist.Add(c.Request.Context(), userID, input.ProductID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product added to wishlist"})
}

// RemoveFromWishlist drops a saved product
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	var input models.WishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.wishlist.Remove(c.Request.Context(), userID, input.ProductID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product removed from wishlist"})
}

// ClearWishlist removes every saved product
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	if err := h.wishlist.Clear(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "wishlist cleared"})
}
