package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	items, err := h.reviewService.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ReviewHandler) Add(c *gin.Context) {
	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	id, err := h.reviewService.Add(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
