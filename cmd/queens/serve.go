package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/queenslogic/internal/config"
	"github.com/gitrdm/queenslogic/internal/server"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve solver sessions over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			srv := server.New(cfg, log)

			log.Info("listening", "addr", cfg.Addr,
				"max_board_size", cfg.MaxBoardSize,
				"persistent_history", cfg.PersistentHistory)
			return http.ListenAndServe(cfg.Addr, srv)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return cmd
}
