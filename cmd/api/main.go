package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/glasscard/storefront-api/internal/config"
	"github.com/glasscard/storefront-api/internal/handler"
	"github.com/glasscard/storefront-api/internal/middleware"
	"github.com/glasscard/storefront-api/internal/repository"
	"github.com/glasscard/storefront-api/internal/service"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB. A missing DATABASE_URL yields a store that reports itself
	// unavailable instead of aborting startup.
	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	store, err := repository.Connect(connectCtx, cfg.Mongo.URL, cfg.Mongo.Name)
	connectCancel()
	if err != nil {
		log.Error("connect to store", "error", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	if store.Available() {
		if err := store.Ping(ctx); err != nil {
			log.Warn("store not reachable", "error", err)
		} else {
			log.Info("connected to MongoDB", "database", cfg.Mongo.Name)
		}
	} else {
		log.Warn("DATABASE_URL not set, store unavailable")
	}

	// Repositories
	userRepo := repository.NewUserRepository(store)
	categoryRepo := repository.NewCategoryRepository(store)
	productRepo := repository.NewProductRepository(store)
	reviewRepo := repository.NewReviewRepository(store)
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	// Services
	authSvc := service.NewAuthService(userRepo)
	catalogSvc := service.NewCatalogService(categoryRepo, productRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	cartSvc := service.NewCartService(cartRepo, productRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, log)

	// Handlers
	metaH := handler.NewMetaHandler(store, cfg.Mongo)
	authH := handler.NewAuthHandler(authSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	cartH := handler.NewCartHandler(cartSvc)
	orderH := handler.NewOrderHandler(orderSvc)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))

	router.GET("/", metaH.Root)
	router.GET("/schema", metaH.Schema)
	router.GET("/test", metaH.Test)

	auth := router.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)

	router.GET("/categories", catalogH.ListCategories)
	router.POST("/categories", catalogH.CreateCategory)

	router.GET("/products", catalogH.ListProducts)
	router.POST("/products", catalogH.CreateProduct)
	router.GET("/products/:id", catalogH.GetProduct)
	router.GET("/products/:id/reviews", reviewH.ListByProduct)
	router.POST("/products/:id/reviews", reviewH.Add)

	router.GET("/cart", cartH.GetCart)
	router.POST("/cart", cartH.AddItem)
	router.PATCH("/cart/:id", cartH.UpdateItem)
	router.DELETE("/cart/:id", cartH.RemoveItem)

	router.POST("/orders", orderH.Create)
	router.GET("/orders", orderH.List)

	router.POST("/seed", catalogH.Seed)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
