package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"skillscout/internal/httpapi"
	"skillscout/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP scan API",
	Long:  "Serves POST /v1/scan: accepts extracted resume text and responds with the matched skills and aggregated postings.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	httpClient := &http.Client{Timeout: cfg.Sources.Timeout}
	pipe, err := buildPipeline(cfg, sqlStore, httpClient, logger)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}

	srv := httpapi.New(pipe, logger)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	return nil
}
