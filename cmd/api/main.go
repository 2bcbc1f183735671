package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hosteleats/backend/config"
	"github.com/hosteleats/backend/internal/api"
	"github.com/hosteleats/backend/internal/database"
	"github.com/hosteleats/backend/internal/router"
	"github.com/hosteleats/backend/internal/server"
	"github.com/hosteleats/backend/internal/service"
	"github.com/hosteleats/backend/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongo, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	authService := service.NewAuthService(cfg.JWTSecret)
	stripeService := service.NewStripeService(cfg.StripeSecretKey)

	db := mongo.Database()
	users := store.NewUsers(db)
	handlers := router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Users:    api.NewUserHandler(users),
		Meals:    api.NewMealHandler(store.NewMeals(db)),
		Upcoming: api.NewUpcomingMealHandler(store.NewUpcomingMeals(db)),
		Requests: api.NewRequestHandler(store.NewRequests(db)),
		Reviews:  api.NewReviewHandler(store.NewReviews(db)),
		Payments: api.NewPaymentHandler(store.NewPayments(db), users, stripeService),
	}

	srv := server.New(router.Setup(authService, users, handlers), cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Hostel management server running on port %s", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := mongo.Close(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
	log.Println("Server stopped")
}
