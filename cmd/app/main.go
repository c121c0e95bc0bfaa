package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"quizgen/cmd/fx/attempt_fx"
	"quizgen/cmd/fx/controllers_fx"
	"quizgen/cmd/fx/db_fx"
	"quizgen/cmd/fx/generator_fx"
	"quizgen/cmd/fx/session_fx"
	"quizgen/cmd/fx/submission_fx"
	"quizgen/internal/api/controllers"
	"quizgen/internal/infra"
	"quizgen/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	infra.InitLogger()

	app := fx.New(
		db_fx.Module,
		session_fx.Module,
		generator_fx.Module,
		submission_fx.Module,
		attempt_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logrus.WithField("port", port).Info("Starting HTTP server")
				if err := engine.Run(":" + port); err != nil {
					logrus.WithError(err).Fatal("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	submissionController *controllers.SubmissionController,
	sessionController *controllers.SessionController,
	quizController *controllers.QuizController,
	attemptController *controllers.AttemptController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, submissionController, sessionController, quizController, attemptController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	submissionController *controllers.SubmissionController,
	sessionController *controllers.SessionController,
	quizController *controllers.QuizController,
	attemptController *controllers.AttemptController) {

	api := r.Group("/api")

	submissions := api.Group("/submissions")
	submissions.POST("", submissionController.SubmitHandler)
	submissions.POST("/file", submissionController.SubmitFileHandler)
	submissions.POST("/regenerate", submissionController.RegenerateHandler)
	submissions.GET("/progress", submissionController.ProgressHandler)

	session := api.Group("/session")
	session.GET("", sessionController.GetSessionHandler)
	session.POST("/reset", sessionController.ResetSessionHandler)

	quizzes := api.Group("/quizzes")
	quizzes.GET("", quizController.ListQuizzesHandler)
	quizzes.DELETE("/:id", quizController.DeleteQuizHandler)
	quizzes.GET("/:id/export", quizController.ExportQuizHandler)

	attempts := api.Group("/attempts")
	attempts.POST("", attemptController.StartAttemptHandler)
	attempts.POST("/:id/answers", attemptController.SelectAnswerHandler)
	attempts.POST("/:id/submit", attemptController.SubmitAttemptHandler)
}
