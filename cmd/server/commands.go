package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voteverse-backend/internal/api/routes"
	"voteverse-backend/internal/config"
	"voteverse-backend/internal/database"
	"voteverse-backend/internal/i18n"
	"voteverse-backend/internal/logger"
	"voteverse-backend/internal/metrics"
	"voteverse-backend/internal/registry"
	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/seed"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "voteverse",
		Short:         "VoteVerse election backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath != "" {
				config.SetConfigFile(configPath)
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("LOG_LEVEL", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd(), newSyncRegistryCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.Flags().String("port", "", "listen port")
	_ = viper.BindPFlag("PORT", cmd.Flags().Lookup("port"))
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if _, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true}); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			logrus.Info("Database schema is up to date")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <dir>",
		Short: "Load voters, elections, positions and candidates from YAML files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true})
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			report, err := seed.LoadAndApply(db, args[0])
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"voters":     report.Voters,
				"elections":  report.Elections,
				"positions":  report.Positions,
				"candidates": report.Candidates,
			}).Info("Seed data loaded")
			return nil
		},
	}
}

func newSyncRegistryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-registry",
		Short: "Import voters from the university registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: cfg.AutoMigrate})
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			reg, err := registry.Open(cfg.RegistryDriver, cfg.RegistryDSN, cfg.RegistryTable)
			if err != nil {
				return err
			}
			defer reg.Close()

			return syncRegistry(cmd.Context(), db, reg, metrics.New())
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)
	return cfg, nil
}

func syncRegistry(ctx context.Context, db *gorm.DB, reg *registry.Registry, m *metrics.Metrics) error {
	svc := service.NewRegistrySyncService(reg, repository.NewVoterRepository(db), m)
	report, err := svc.Sync(ctx)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"total":   report.Total,
		"created": report.Created,
		"updated": report.Updated,
		"failed":  report.Failed,
	}).Info("Registry sync finished")
	return nil
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: cfg.AutoMigrate})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	blobs, err := storage.Open(ctx, storage.Config{
		Driver:        storage.Driver(cfg.BlobDriver),
		FSRoot:        cfg.BlobFSRoot,
		S3Bucket:      cfg.BlobS3Bucket,
		S3Region:      cfg.BlobS3Region,
		S3Endpoint:    cfg.BlobS3Endpoint,
		S3PathStyle:   cfg.BlobS3PathStyle,
		S3AccessKeyID: cfg.BlobS3AccessKey,
		S3SecretKey:   cfg.BlobS3SecretKey,
	})
	if err != nil {
		return fmt.Errorf("failed to open blob storage: %w", err)
	}

	translator, err := i18n.New(cfg.Locale)
	if err != nil {
		return fmt.Errorf("failed to load locales: %w", err)
	}

	m := metrics.New()

	var reg *registry.Registry
	if cfg.RegistryEnabled() {
		reg, err = registry.Open(cfg.RegistryDriver, cfg.RegistryDSN, cfg.RegistryTable)
		if err != nil {
			logrus.WithError(err).Warn("University registry unavailable, registry sync disabled")
			reg = nil
		} else {
			defer reg.Close()
			if cfg.RegistrySyncOnStart {
				if err := syncRegistry(ctx, db, reg, m); err != nil {
					logrus.WithError(err).Warn("Initial registry sync failed")
				}
			}
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg, routes.Dependencies{
		Blobs:      blobs,
		Registry:   reg,
		Translator: translator,
		Metrics:    m,
	})
	if err != nil {
		return fmt.Errorf("failed to set up routes: %w", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
