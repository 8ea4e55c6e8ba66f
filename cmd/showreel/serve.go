package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dconn.dev/showreel/internal/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio website",
	RunE: func(cmd *cobra.Command, args []string) error {
		router, err := handlers.SetupRoutes(cfg, logger)
		if err != nil {
			logger.Error("invalid host page", zap.Error(err))
			return err
		}

		srv := &http.Server{
			Addr:              cfg.ServerAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("server listening", zap.String("addr", cfg.ServerAddr), zap.Int("entries", len(cfg.Entries)))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("shutting down")
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}
