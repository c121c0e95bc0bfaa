package controllers_fx

import (
	"go.uber.org/fx"

	"quizgen/internal/api/controllers"
	"quizgen/internal/repositories"
	"quizgen/internal/services"
	mem "quizgen/pkg/memcache"
)

var Module = fx.Provide(
	provideSubmissionController,
	provideSessionController,
	provideQuizController,
	provideAttemptController)

func provideSubmissionController(
	submissionService services.SubmissionServiceInterface,
	progress services.ProgressTrackerInterface,
) *controllers.SubmissionController {
	return controllers.NewSubmissionController(submissionService, progress)
}

func provideSessionController(session mem.SessionStore) *controllers.SessionController {
	return controllers.NewSessionController(session)
}

func provideQuizController(repo repositories.QuizRepositoryInterface) *controllers.QuizController {
	return controllers.NewQuizController(repo)
}

func provideAttemptController(
	attempts services.AttemptManagerInterface,
	repo repositories.QuizRepositoryInterface,
) *controllers.AttemptController {
	return controllers.NewAttemptController(attempts, repo)
}
