package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skillscout/internal/browse"
	"skillscout/internal/store"
)

const historyLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse stored scan runs",
	Long:  "Interactive browser over past scans: pick a run, scroll through its postings.",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	runs, err := sqlStore.ListRuns(historyLimit)
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("no scans recorded yet, run `skillscout scan` first")
		return nil
	}

	idx, err := browse.RunPicker(runs)
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}

	postings, err := sqlStore.RunPostings(runs[idx].ID)
	if err != nil {
		logger.Error("failed to load postings", "run", runs[idx].ID, "error", err)
		os.Exit(1)
	}

	return browse.RunViewer(runs[idx], postings)
}
