package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"

	"internship-assistant/config"
	_ "internship-assistant/docs" // Swagger docs
	"internship-assistant/internal/agent"
	"internship-assistant/internal/agent/orchestrator"
	"internship-assistant/internal/agent/tools"
	"internship-assistant/internal/chat"
	chatUsecase "internship-assistant/internal/chat/usecase"
	"internship-assistant/internal/composer"
	"internship-assistant/internal/formatter"
	"internship-assistant/internal/httpserver"
	"internship-assistant/internal/middleware"
	"internship-assistant/internal/router"
	"internship-assistant/internal/talent/repository"
	"internship-assistant/internal/talent/repository/cache"
	qdrantRepo "internship-assistant/internal/talent/repository/qdrant"
	"internship-assistant/internal/talent/repository/sqldb"
	talentUsecase "internship-assistant/internal/talent/usecase"
	"internship-assistant/pkg/llmprovider"
	"internship-assistant/pkg/log"
	pkgQdrant "internship-assistant/pkg/qdrant"
	"internship-assistant/pkg/voyage"
)

// @title       Internship Assistant API
// @description Role-aware chatbot that answers seeker, company and university questions from verified internship platform data.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Internship Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Relational store
	db, err := sqldb.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database driver: %s", cfg.Database.Driver)

	var data repository.DataAccess = sqldb.New(db, sqldb.Options{QueryTimeout: cfg.Database.QueryTimeout}, logger)
	if cfg.Cache.Enabled {
		data = cache.New(data, cfg.Cache.Size, cfg.Cache.TTL, logger)
		logger.Infof(ctx, "Aggregate cache enabled (size=%d, ttl=%s)", cfg.Cache.Size, cfg.Cache.TTL)
	}

	// 4. Semantic index
	voyageClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}
	voyageClient.WithModel(cfg.Voyage.Model)

	index := qdrantRepo.New(pkgQdrant.NewClient(cfg.Qdrant.URL), voyageClient, qdrantRepo.Options{
		SeekerCollection: cfg.Qdrant.SeekerCollection,
		PostCollection:   cfg.Qdrant.PostCollection,
		VectorSize:       cfg.Qdrant.VectorSize,
	}, logger)
	logger.Infof(ctx, "Qdrant URL: %s", cfg.Qdrant.URL)

	talentUC := talentUsecase.New(logger, data, index)

	// 5. LLM providers
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	// 6. Conversation
	semanticRouter := router.New(llm, completionOptions(cfg.Chat.Classifier), logger)

	var chatUC chat.UseCase
	switch cfg.Chat.Strategy {
	case "agent":
		registry := agent.NewToolRegistry()
		registry.Register(tools.All(data, index)...)
		chatUC = orchestrator.New(llm, registry, completionOptions(cfg.Chat.Composer), logger)
		logger.Infof(ctx, "Chat strategy: agent (%d tools)", len(registry.List()))
	default:
		chatUC = chatUsecase.New(
			logger,
			semanticRouter,
			formatter.New(data, index, formatter.Options{FetchTimeout: cfg.Chat.FetchTimeout}, logger),
			composer.New(llm, completionOptions(cfg.Chat.Composer), logger),
		)
		logger.Info(ctx, "Chat strategy: pipeline")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.CORS, cfg.RateLimit),
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		ChatUseCase:    chatUC,
		Router:         semanticRouter,
		TalentUseCase:  talentUC,
		Database:       data,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func completionOptions(g config.GenerationConfig) llmprovider.CompletionOptions {
	return llmprovider.CompletionOptions{
		Temperature: lo.ToPtr(g.Temperature),
		MaxTokens:   g.MaxTokens,
		Timeout:     g.Timeout,
	}
}
