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

	"vet-clinic-records/internal/adapters/storage"
	"vet-clinic-records/internal/config"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/router"

	"github.com/spf13/cobra"
)

// @title Vet Clinic Records API
// @version 1.0
// @description Tutores, pacientes, médicos, fichas clínicas y dashboards de la clínica veterinaria.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "vet-clinic-records",
		Short: "API de fichas clínicas veterinarias",
		// sin subcomando => serve
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(pingCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Verifica la conexión con el STORE configurado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(contextOrBackground(cmd.Context()), cfg.ShutdownTimeout)
			defer cancel()

			repos, err := storage.Open(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = repos.Close(context.Background()) }()

			if err := repos.Ping(ctx); err != nil {
				log.Error("store ping failed", map[string]any{"store": cfg.Store, "err": err})
				return err
			}
			log.Info("store ok", map[string]any{"store": cfg.Store})
			return nil
		},
	}
}

func setup() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}

func runServer(parent context.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(parent), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error("open store", map[string]any{"store": cfg.Store, "err": err})
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Repos:        repos,
			Logger:       log,
			ScanPageSize: cfg.ScanPageSize,
		}),
		ReadTimeout: 5 * time.Second,
		// los dashboards recorren toda la tabla de fichas
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": cfg.Store})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server", nil)
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"err": err})
			_ = repos.Close(context.Background())
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", map[string]any{"err": err})
	}
	if err := repos.Close(shutdownCtx); err != nil {
		log.Error("close store", map[string]any{"store": cfg.Store, "err": err})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
