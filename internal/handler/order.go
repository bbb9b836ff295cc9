package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	id, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *OrderHandler) List(c *gin.Context) {
	items, err := h.orderService.List(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
