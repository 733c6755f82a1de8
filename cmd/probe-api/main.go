package main

import (
	"os"

	"bias-probing/internal/api"
	"bias-probing/internal/api/handler"
	"bias-probing/internal/provider"
	"bias-probing/internal/store"
	"bias-probing/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "go.uber.org/automaxprocs"

	_ "bias-probing/docs"
)

// defaultKeys reads fallback provider credentials from the environment.
// Request-supplied keys take precedence; these cover local development.
func defaultKeys() map[string]string {
	envVars := map[string]string{
		provider.ProviderOpenAI:      "OPENAI_API_KEY",
		provider.ProviderAnthropic:   "ANTHROPIC_API_KEY",
		provider.ProviderHuggingFace: "HUGGINGFACE_API_KEY",
	}

	keys := make(map[string]string)
	for name, envVar := range envVars {
		if key := os.Getenv(envVar); key != "" {
			keys[name] = key
		}
	}
	return keys
}

func main() {
	dbPath := os.Getenv("PROBE_DB_PATH")
	if dbPath == "" {
		dbPath = "probe.db"
	}
	if err := store.InitDB(dbPath); err != nil {
		panic(err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	registry := provider.NewRegistry()
	h := &handler.Analysis{
		Invoker:     provider.NewRouter(registry),
		Registry:    registry,
		DefaultKeys: defaultKeys(),
	}

	r := router.New()
	api.RegisterRoutes(r, h)
	r.Mount("/swagger/", httpSwagger.WrapHandler)

	r.Start(":" + port)
}
