package attempt_fx

import (
	"go.uber.org/fx"

	"quizgen/internal/services"
)

var Module = fx.Provide(
	provideAttemptManager)

func provideAttemptManager() services.AttemptManagerInterface {
	return services.NewAttemptManager()
}
