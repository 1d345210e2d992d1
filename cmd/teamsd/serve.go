package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/information-sharing-networks/teamsd/internal/server"
	"github.com/information-sharing-networks/teamsd/internal/version"
	"github.com/spf13/cobra"
)

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ui-api gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Info("Starting teamsd ui-api", slog.String("version", version.Get().Version))

			srv, err := server.NewServerWithClient(a.cfg, a.logger, a.apiClient)
			if err != nil {
				a.logger.Error("could not create server", slog.String("error", err.Error()))
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.Start(ctx); err != nil {
				a.logger.Error("ui-api server error", slog.String("error", err.Error()))
				return err
			}

			a.logger.Info("ui-api server shutdown complete")
			return nil
		},
	}
}
