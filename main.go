package main

import (
	"context"
	"log"
	"time"

	"github.com/ShivamH1/QuizApp/config"
	"github.com/ShivamH1/QuizApp/handlers"
	"github.com/ShivamH1/QuizApp/models"
	"github.com/ShivamH1/QuizApp/routes"
	"github.com/ShivamH1/QuizApp/seeds"
	"github.com/ShivamH1/QuizApp/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed demo data on an empty database
	if cfg.SeedDemoData {
		if err := seeds.Run(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Printf("Redis unreachable at startup (attempts unavailable until it recovers): %v", err)
	}
	cancel()

	// Initialize services
	quizService := services.NewQuizService(db)
	questionService := services.NewQuestionService(db)
	questionCache := services.NewQuestionCache(questionService, cfg.QuestionTTL)
	scoringService := services.NewScoringService()
	attemptService := services.NewAttemptService(redisClient, questionCache, scoringService, cfg.AttemptTTL)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService, questionCache)
	questionHandler := handlers.NewQuestionHandler(questionService, questionCache, scoringService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	// Setup Gin router
	router := gin.Default()
	routes.SetupRoutes(router, quizHandler, questionHandler, attemptHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
