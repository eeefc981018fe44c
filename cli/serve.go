package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"tesla-notes/config/setup"

	"github.com/spf13/cobra"
)

func newServeCommand(s *session) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				s.cfg.Port = port
			}
			return serve(cmd.Context(), s)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	return cmd
}

func serve(ctx context.Context, s *session) error {
	logger := s.logger

	fiberApp := setup.NewFiberApp(s.cfg, logger)
	setup.ApplyMiddleware(fiberApp, s.cfg, logger)
	setup.RegisterRoutes(fiberApp, s.app)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server", "port", s.cfg.Port, "env", s.cfg.Env)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(":" + s.cfg.Port)
	}()

	select {
	case err := <-errCh:
		logger.Error("server failed", "error", err)
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(s.db, logger)
	s.db = nil

	logger.Info("server stopped")
	return nil
}
