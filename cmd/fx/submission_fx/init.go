package submission_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizgen/internal/repositories"
	"quizgen/internal/services"
	mem "quizgen/pkg/memcache"
)

var Module = fx.Provide(
	provideProgressTracker, provideQuizRepo, provideSubmissionService)

func provideProgressTracker() services.ProgressTrackerInterface {
	tick := 200 * time.Millisecond
	if ms, err := strconv.Atoi(os.Getenv("QUIZGEN_TICK_MS")); err == nil && ms > 0 {
		tick = time.Duration(ms) * time.Millisecond
	}
	return services.NewProgressTracker(tick)
}

func provideQuizRepo(db *gorm.DB) repositories.QuizRepositoryInterface {
	return repositories.NewQuizRepository(db)
}

func provideSubmissionService(
	generator services.GeneratorClientInterface,
	session mem.SessionStore,
	repo repositories.QuizRepositoryInterface,
	progress services.ProgressTrackerInterface,
) services.SubmissionServiceInterface {
	return services.NewSubmissionService(generator, session, repo, progress)
}
