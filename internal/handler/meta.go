package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glasscard/storefront-api/internal/config"
	"github.com/glasscard/storefront-api/internal/repository"
)

// MetaHandler serves the liveness, schema, and connectivity endpoints.
type MetaHandler struct {
	store *repository.Store
	cfg   config.MongoConfig
}

func NewMetaHandler(store *repository.Store, cfg config.MongoConfig) *MetaHandler {
	return &MetaHandler{store: store, cfg: cfg}
}

func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "E-Commerce Backend Ready"})
}

func (h *MetaHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"collections": []string{"user", "category", "product", "review", "cartitem", "order"},
	})
}

// Test reports store connectivity and env-var presence without failing the
// request, whatever state the store is in.
func (h *MetaHandler) Test(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus(h.cfg.URL),
		"database_name":     envStatus(h.cfg.Name),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.store.Available() {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.store.Ping(pingCtx); err != nil {
			resp["database"] = "error: " + truncate(err.Error(), 80)
		} else {
			resp["database"] = "connected"
			resp["connection_status"] = "connected"
			if names, err := h.store.CollectionNames(pingCtx, 10); err == nil {
				resp["collections"] = names
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func envStatus(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
