package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/repository"
	"github.com/glasscard/storefront-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		case errors.Is(err, repository.ErrUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		case errors.Is(err, repository.ErrUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
