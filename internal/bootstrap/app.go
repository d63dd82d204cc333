package bootstrap

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/bytebender77/AI-CitySense/internal/config"
	"github.com/bytebender77/AI-CitySense/internal/issues"
	"github.com/bytebender77/AI-CitySense/internal/llm"
	"github.com/bytebender77/AI-CitySense/internal/llm/gemini"
	"github.com/bytebender77/AI-CitySense/internal/server"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	History      *issues.HistoryStore
	IssueService *issues.Service
	IssueHandler *issues.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	history := issues.NewHistoryStore()
	svc := issues.NewService(history, llmClient, cfg.MaxVideoBytes())
	handler := issues.NewHandler(svc)

	app := &App{
		Config:       cfg,
		History:      history,
		IssueService: svc,
		IssueHandler: handler,
	}
	app.Router = server.NewRouter(server.Deps{
		Config:       cfg,
		IssueHandler: handler,
	})
	return app, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "gemini" {
		log.Printf("bootstrap: LLM provider %q, analyses will fail until one is configured", cfg.LLMProvider)
		return llm.PlaceholderClient{}, nil
	}
	return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
}
