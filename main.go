package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/config"
	"github.com/oussama1399/BookQuest/controllers"
	"github.com/oussama1399/BookQuest/database"
	"github.com/oussama1399/BookQuest/logging"
	"github.com/oussama1399/BookQuest/middleware"
	"github.com/oussama1399/BookQuest/repositories"
	"github.com/oussama1399/BookQuest/routes"
	"github.com/oussama1399/BookQuest/services"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("MongoDB connection error")
	}
	logger.Info().Str("database", store.DatabaseName()).Msg("connected to MongoDB")

	userRepo := repositories.NewUserRepository(store)
	bookRepo := repositories.NewBookRepository(store)
	reviewRepo := repositories.NewReviewRepository(store)

	reviewService := services.NewReviewService(reviewRepo, bookRepo, logger)
	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	bookService := services.NewBookService(bookRepo, reviewRepo)
	recService := services.NewRecommendationService(reviewRepo, bookRepo)

	userController := controllers.NewUserController(userService, reviewService)
	bookController := controllers.NewBookController(bookService, reviewService)
	reviewController := controllers.NewReviewController(reviewService)
	recController := controllers.NewRecommendationController(recService)
	healthController := controllers.NewHealthController(store)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.GinMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Confirm-Action"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/api/health", healthController.Health)
	routes.SetupUserRoutes(r, userController)
	routes.SetupBookRoutes(r, bookController, recController)
	routes.SetupReviewRoutes(r, reviewController, middleware.AuthMiddleware(cfg.JWTSecret, userRepo))

	srv := &http.Server{
		Addr:    ":" + cfg.PORT,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", cfg.PORT).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("MongoDB disconnection error")
	}
	logger.Info().Msg("bye")
}
