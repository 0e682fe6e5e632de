package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-admin/internal/handler"
	"shop-admin/internal/repository"
	"shop-admin/internal/service"
	"shop-admin/pkg/config"
	"shop-admin/pkg/database"
)

func main() {
	config.Load()

	mongoURI := config.GetEnv("MONGODB_URI", "")
	if mongoURI == "" {
		log.Fatal("MongoDB URI not found. Please check your environment or .env file.")
	}
	dbName := config.GetEnv("MONGO_DB", "shop_admin")
	port := config.GetEnv("PORT", "4000")

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoDB, err := database.Connect(ctx, mongoURI, dbName)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	log.Println("Connected to MongoDB successfully")

	// Initialize repositories
	productRepo := repository.NewProductRepository(mongoDB.Database)
	orderRepo := repository.NewOrderRepository(mongoDB.Database)
	fulfilledRepo := repository.NewFulfilledOrderRepository(mongoDB.Database)
	couponRepo := repository.NewCouponRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)

	// Initialize services
	router := handler.NewRouter(handler.Deps{
		Products:    productRepo,
		Orders:      orderRepo,
		Users:       userRepo,
		Coupons:     couponRepo,
		Fulfilled:   fulfilledRepo,
		CouponSvc:   service.NewCouponService(couponRepo),
		Fulfillment: service.NewFulfillmentService(orderRepo, fulfilledRepo),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server is running on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown: stop accepting requests, then close the store
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := mongoDB.Disconnect(context.Background()); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
	log.Println("MongoDB connection closed.")
}
