package generator_fx

import (
	"os"

	"go.uber.org/fx"

	"quizgen/internal/services"
)

var Module = fx.Provide(
	provideGeneratorClient)

func provideGeneratorClient() services.GeneratorClientInterface {
	apiURL := os.Getenv("QUIZGEN_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:5000/api/generate-quiz"
	}
	return services.NewGeneratorClient(apiURL)
}
