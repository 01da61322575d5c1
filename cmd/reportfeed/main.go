// Command reportfeed scrapes the configured news listing page and writes a
// static RSS feed file. It is meant to be run on a schedule (cron or CI);
// one invocation is one complete rebuild of the feed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tempest790/reportfeed/config"
	"github.com/tempest790/reportfeed/feed"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an int from environment variable or returns default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration parses a duration from environment variable or returns default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool parses a bool from environment variable or returns default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func main() {
	// Optional .env file for cron/CI environments.
	_ = godotenv.Load()

	cfgPath := flag.String("config", getEnv("REPORTFEED_CONFIG", "reportfeed.yaml"), "Path to YAML config file (REPORTFEED_CONFIG)")
	sourceURL := flag.String("source", getEnv("REPORTFEED_SOURCE_URL", ""), "Listing page URL (REPORTFEED_SOURCE_URL)")
	outputPath := flag.String("output", getEnv("REPORTFEED_OUTPUT", ""), "Output feed file path (REPORTFEED_OUTPUT)")
	feedURL := flag.String("feed-url", getEnv("REPORTFEED_FEED_URL", ""), "Public URL of the published feed (REPORTFEED_FEED_URL)")
	maxItems := flag.Int("max-items", getEnvInt("REPORTFEED_MAX_ITEMS", 0), "Maximum number of feed items (REPORTFEED_MAX_ITEMS)")
	candidateCap := flag.Int("candidate-cap", getEnvInt("REPORTFEED_CANDIDATE_CAP", 0), "Maximum number of listing links to fetch (REPORTFEED_CANDIDATE_CAP)")
	timeout := flag.Duration("timeout", getEnvDuration("REPORTFEED_TIMEOUT", 0), "Per-request HTTP timeout (REPORTFEED_TIMEOUT)")
	failOnEmpty := flag.Bool("fail-on-empty", getEnvBool("REPORTFEED_FAIL_ON_EMPTY", false), "Exit non-zero when a run yields no items (REPORTFEED_FAIL_ON_EMPTY)")

	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags and environment override the config file.
	if *sourceURL != "" {
		cfg.SourceURL = *sourceURL
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}
	if *feedURL != "" {
		cfg.FeedURL = *feedURL
	}
	if *maxItems > 0 {
		cfg.MaxItems = *maxItems
	}
	if *candidateCap > 0 {
		cfg.CandidateCap = *candidateCap
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if *failOnEmpty {
		cfg.FailOnEmpty = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := feed.NewCollector(cfg, nil)
	items, err := collector.Collect(ctx)
	if err != nil {
		log.Fatalf("Failed to collect items: %v", err)
	}

	if len(items) == 0 {
		log.Printf("WARN: No items found (writing empty feed)")
	}

	document, err := feed.RenderRSS(items, cfg, time.Now())
	if err != nil {
		log.Fatalf("Failed to render feed: %v", err)
	}

	// The one hard failure: if the feed file can't be written there is
	// nothing to degrade to.
	if err := os.WriteFile(cfg.OutputPath, []byte(document), 0o644); err != nil {
		log.Fatalf("Failed to write feed file %s: %v", cfg.OutputPath, err)
	}

	fmt.Printf("Wrote %s with %d items.\n", cfg.OutputPath, len(items))
	for _, item := range items {
		fmt.Printf("- %s | %s -> %s\n", item.PublishedAt.Format("2006-01-02"), item.Title, item.Link)
	}

	if len(items) == 0 && cfg.FailOnEmpty {
		log.Printf("ERROR: No items found and fail-on-empty is set")
		os.Exit(1)
	}
}
