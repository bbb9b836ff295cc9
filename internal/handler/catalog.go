package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/repository"
	"github.com/glasscard/storefront-api/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	items, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	id, err := h.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	resp, err := h.catalogService.ListProducts(c.Request.Context(), req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	resp, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	id, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *CatalogHandler) Seed(c *gin.Context) {
	result, err := h.catalogService.Seed(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// storeError maps errors with no dedicated status to the 500 family,
// distinguishing a missing store from an unexpected failure.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database not available"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}
