package routes

import (
	"net/http"
	"time"

	"github.com/ShivamH1/QuizApp/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	questionHandler *handlers.QuestionHandler,
	attemptHandler *handlers.AttemptHandler,
) {
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.GetAllQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuizByID)
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.PUT("/:id", quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.GetQuestionsByQuizID)
			questions.POST("", questionHandler.CreateQuestion)
			questions.POST("/bulk", questionHandler.CreateQuestionsBulk)
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
			// Kept for clients that still post to the old path.
			questions.POST("/submit", questionHandler.SubmitAnswers)
		}

		api.POST("/submit", questionHandler.SubmitAnswers)

		attempts := api.Group("/attempts")
		{
			attempts.POST("", attemptHandler.StartAttempt)
			attempts.GET("/:id", attemptHandler.GetAttempt)
			attempts.PUT("/:id/answer", attemptHandler.RecordAnswer)
			attempts.PUT("/:id/seek", attemptHandler.Seek)
			attempts.POST("/:id/submit", attemptHandler.SubmitAttempt)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
