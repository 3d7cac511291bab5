package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/config"
	"github.com/tradeport/formengine/internal/export"
	"github.com/tradeport/formengine/internal/forms"
	"github.com/tradeport/formengine/internal/ledger"
	"github.com/tradeport/formengine/internal/notify"
	"github.com/tradeport/formengine/internal/repository"
	"github.com/tradeport/formengine/internal/server"
	"github.com/tradeport/formengine/internal/submit"
	"github.com/tradeport/formengine/pkg/database"
	"github.com/tradeport/formengine/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting TradePort Form Engine",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	// Initialize submission journal
	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Create export directory
	if err := os.MkdirAll(cfg.Export.OutputDir, 0755); err != nil {
		logger.Fatal("Failed to create export directory", zap.Error(err))
	}

	numberPolicy := ledger.PolicyCoerceZero
	if cfg.Engine.NumberPolicy == "strict" {
		numberPolicy = ledger.PolicyStrict
	}

	// Wire the form engine and its collaborators
	registry := forms.NewRegistry(numberPolicy, logger)
	repo := repository.NewSubmissionRepository(db.DB, logger)
	submitter := submit.NewJournalSubmitter(repo, logger)
	notifier := notify.NewLogNotifier(logger)
	exporter := export.NewExporter(cfg.Export.CompanyName, cfg.Export.CompanyGSTIN, logger)

	// Set Gin mode based on logger level
	if cfg.Logger.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ExportDir:    cfg.Export.OutputDir,
	}, registry, submitter, notifier, repo, exporter, logger)

	// Run until interrupted, then shut down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
