package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eventdeck/eventdeck/internal/devserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bundled events backend (db.json-compatible)",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := devserver.OpenDataset(cfg.Serve.DataFile)
		if err != nil {
			return err
		}

		srv := devserver.New(cfg, data, logr)
		return srv.Run(fmt.Sprintf(":%d", cfg.Serve.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
