package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"skillscout/internal/aggregate"
	"skillscout/internal/config"
	"skillscout/internal/match"
	"skillscout/internal/model"
	"skillscout/internal/notify"
	"skillscout/internal/pipeline"
	"skillscout/internal/ratelimit"
	"skillscout/internal/source"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "skillscout",
	Short: "Match a resume against fresh job postings",
	Long:  "Skillscout extracts skills from a resume and aggregates recent job postings for them from several job boards.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: SKILLSCOUT_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > SKILLSCOUT_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	// .env is optional; environment variables may be set directly.
	_ = godotenv.Load()

	if path == "" {
		if env := os.Getenv("SKILLSCOUT_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Notifier {
	switch cfg.Notification.Type {
	case "slack":
		logger.Info("using slack notifier")
		return notify.NewSlackNotifier(cfg.Notification.WebhookURL, httpClient, logger)
	default:
		return notify.NewLogNotifier(logger)
	}
}

// buildFetchers assembles one adapter per enabled source, each wrapped with
// the shared per-source rate limiter.
func buildFetchers(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) []model.Fetcher {
	window := cfg.RecencyWindow()

	var fetchers []model.Fetcher
	if cfg.Sources.Remotive.Enabled {
		fetchers = append(fetchers, source.NewRemotiveAdapter(httpClient, window))
	}
	if cfg.Sources.Arbeitnow.Enabled {
		fetchers = append(fetchers, source.NewArbeitnowAdapter(httpClient, window))
	}
	if cfg.Sources.HackerNews.Enabled {
		fetchers = append(fetchers, source.NewHackerNewsAdapter(httpClient, window))
	}
	if cfg.Sources.WeWorkRemotely.Enabled {
		fetchers = append(fetchers, source.NewWeWorkRemotelyAdapter(httpClient, window))
	}
	if len(cfg.Sources.RSS.Feeds) > 0 {
		fetchers = append(fetchers, source.NewRSSAdapter(cfg.Sources.RSS.Feeds, httpClient, window))
	}

	if cfg.RateLimit.PerHostRPS > 0 {
		limiter := ratelimit.NewSourceLimiter(cfg.RateLimit.PerHostRPS, cfg.RateLimit.Burst)
		for i, f := range fetchers {
			fetchers[i] = ratelimit.NewLimitedFetcher(f, limiter)
		}
	}

	for _, f := range fetchers {
		logger.Debug("registered source", "name", f.Name())
	}
	return fetchers
}

// buildPipeline wires matcher, engine, and store into a ready pipeline.
func buildPipeline(cfg *config.Config, st model.RunStore, httpClient *http.Client, logger *slog.Logger) (*pipeline.Pipeline, error) {
	matcher, err := match.NewSkillMatcher(cfg.Vocabulary)
	if err != nil {
		return nil, err
	}

	engine := aggregate.NewEngine(
		buildFetchers(cfg, httpClient, logger),
		aggregate.Options{
			Timeout:       cfg.Sources.Timeout,
			MaxConcurrent: cfg.Sources.MaxConcurrent,
		},
		logger,
	)

	return pipeline.New(matcher, engine, st, logger), nil
}
