package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wallview/internal/api"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP API for the web front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, logCloser, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}
			defer logCloser.Close()

			srv, err := api.NewServer(cfg, api.WithLogger(logger), api.WithBind(bind))
			if err != nil {
				return err
			}
			if err := srv.Start(signalCtx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", srv.Addr())

			<-signalCtx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown api server: %w", err)
			}
			logger.Info("api server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides server.bind)")
	return cmd
}
