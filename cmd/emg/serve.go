package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conornaught0n/emg-energy-demo/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sync server",
		Long: `Run the HTTP sync API the capture clients and reviewer dashboard talk
to: survey upload, retrieval, deletion, and storage statistics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Local .env is optional; deployed instances use real env vars.
			if err := godotenv.Load(); err == nil {
				slog.Debug("loaded environment from .env")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if addr == "" {
				addr = viper.GetString("server.addr")
			}
			if addr == "" {
				addr = ":8081"
			}

			srv := server.New(store)
			if err := srv.ListenAndServe(ctx, addr); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("sync server failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8081)")

	return cmd
}
