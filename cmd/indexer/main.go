package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"internship-assistant/config"
	"internship-assistant/internal/talent"
	"internship-assistant/internal/talent/repository/qdrant"
	"internship-assistant/internal/talent/repository/sqldb"
	"internship-assistant/internal/talent/usecase"
	"internship-assistant/pkg/log"
	pkgQdrant "internship-assistant/pkg/qdrant"
	"internship-assistant/pkg/voyage"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "indexer",
	Short: "Maintain the semantic index behind talent search",
	Long: `Copies seekers and internship posts from the relational store into Qdrant
and reports what is indexed. Uses the same config.yaml as the API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default: search ./config, ., /etc/app/)")
	rootCmd.AddCommand(reindexCmd, statsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app is the talent use case plus what it needs closed at exit.
type app struct {
	uc    talent.UseCase
	l     log.Logger
	close func() error
}

func newApp(ctx context.Context) (*app, error) {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := sqldb.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("voyage: %w", err)
	}
	embedder.WithModel(cfg.Voyage.Model)

	index := qdrant.New(pkgQdrant.NewClient(cfg.Qdrant.URL), embedder, qdrant.Options{
		SeekerCollection: cfg.Qdrant.SeekerCollection,
		PostCollection:   cfg.Qdrant.PostCollection,
		VectorSize:       cfg.Qdrant.VectorSize,
	}, logger)

	return &app{
		uc:    usecase.New(logger, sqldb.New(db, sqldb.Options{QueryTimeout: cfg.Database.QueryTimeout}, logger), index),
		l:     logger,
		close: db.Close,
	}, nil
}
