package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"skillscout/internal/extract"
	"skillscout/internal/model"
	"skillscout/internal/pipeline"
	"skillscout/internal/store"
)

var (
	scanJSON   bool
	scanNoSave bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <resume-file>",
	Short: "Scan a resume and aggregate matching job postings",
	Long:  "Extracts skills from the given resume (.txt, .md or .html), queries every enabled job board for each skill, and prints the deduplicated, most-recent-first postings.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "print the result as JSON")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "do not record this scan in the history database")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	text, err := extract.FromFile(args[0])
	if err != nil {
		logger.Error("failed to read document", "file", args[0], "error", err)
		os.Exit(1)
	}

	var runStore model.RunStore
	if scanNoSave {
		runStore = store.NewNopStore()
	} else {
		sqlStore, err := store.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			logger.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		runStore = sqlStore
	}

	httpClient := &http.Client{Timeout: cfg.Sources.Timeout}
	pipe, err := buildPipeline(cfg, runStore, httpClient, logger)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := pipe.Run(ctx, text)
	if err != nil {
		logger.Error("scan failed", "error", err)
		os.Exit(1)
	}

	if scanJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		printResult(result)
	}

	n := setupNotifier(cfg, httpClient, logger)
	run := model.ScanRun{
		ID:        result.RunID,
		Skills:    result.Skills,
		JobCount:  len(result.Jobs),
		CreatedAt: time.Now().UTC(),
	}
	if err := n.Notify(run, result.Jobs); err != nil {
		logger.Error("notification failed", "error", err)
	}

	return nil
}

var (
	scanHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	scanTitleStyle = lipgloss.NewStyle().
			Bold(true)

	scanMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	scanURLStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))
)

func printResult(result *pipeline.Result) {
	if len(result.Skills) == 0 {
		fmt.Println(scanMetaStyle.Render("no known skills found in the document"))
		return
	}

	fmt.Println(scanHeaderStyle.Render(fmt.Sprintf("Skills: %v", result.Skills)))
	fmt.Println(scanHeaderStyle.Render(fmt.Sprintf("%d matching postings", len(result.Jobs))))
	fmt.Println()

	for i, p := range result.Jobs {
		date := "no date"
		if p.PostedAt != nil {
			date = p.PostedAt.Local().Format("2006-01-02")
		}
		fmt.Printf("%3d. %s\n", i+1, scanTitleStyle.Render(p.Title))
		fmt.Println("     " + scanMetaStyle.Render(fmt.Sprintf("%s · %s · %s · %s", p.Company, p.Location, p.Skill, date)))
		fmt.Println("     " + scanURLStyle.Render(p.URL))
	}
}
