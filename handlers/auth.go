package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SickWater/clothing-store/models"
	"github.com/SickWater/clothing-store/services"
	"github.com/SickWater/clothing-store/utils"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	users services.UserStore
}

// NewAuthHandler creates an auth handler over the given user store.
func NewAuthHandler(users services.UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates a local account and returns a token
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.UserRegister
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := h.users.FindByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	} else if !errors.Is(err, services.ErrNotFound) {
		respondError(c, err)
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := &models.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         "user",
		IsActive:     true,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login verifies credentials and returns a token
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.UserLogin
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if !user.IsActive || !utils.CheckPassword(user.PasswordHash, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
