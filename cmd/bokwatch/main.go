package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/extraction"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	var (
		apiURL   = flag.String("api", envOr("BOK_API", "http://localhost:8080"), "directory API base URL")
		typeStr  = flag.String("type", "", "entity type (restaurant, hotel, mall, attraction, school, fitness)")
		idStr    = flag.String("id", "", "watch an existing extraction instead of starting one")
		placeID  = flag.String("place-id", "", "google place id of the candidate")
		query    = flag.String("query", "", "search query used to find the candidate")
		dataFile = flag.String("place-data", "", "path to a JSON file with the raw place search result")
		override = flag.Bool("override", false, "skip the duplicate guard")
		interval = flag.Duration("interval", cfg.Watcher.PollInterval, "poll interval (default from POLL_INTERVAL)")
		timeout  = flag.Duration("timeout", cfg.Watcher.PollTimeout, "give up after this long (default from POLL_TIMEOUT)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	et, ok := constants.CanonicalizeEntityType(*typeStr)
	if !ok {
		printError("Error: --type must be one of %v\n", constants.EntityTypeStrings())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := extraction.NewClient(*apiURL, nil, logger)

	entityID, err := resolveEntityID(ctx, client, et, *idStr, *placeID, *query, *dataFile, *override)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("watching %s %s\n", et, entityID)

	watcher := extraction.NewWatcher(client, et, logger,
		extraction.WithInterval(*interval),
		extraction.WithTimeout(*timeout),
	)
	sub := watcher.Watch(ctx, entityID, nil)
	defer sub.Stop()

	for u := range sub.Updates() {
		render(u)
		if u.Done {
			if u.Err != nil {
				if errors.Is(u.Err, extraction.ErrWatchTimeout) {
					printError("extraction did not finish within %s\n", *timeout)
					os.Exit(2)
				}
				printError("watch failed: %v\n", u.Err)
				os.Exit(1)
			}
			if u.Job.Status == constants.JobStatusFailed {
				os.Exit(1)
			}
		}
	}
}

func resolveEntityID(ctx context.Context, client *extraction.Client, et constants.EntityType, idStr, placeID, query, dataFile string, override bool) (uuid.UUID, error) {
	if idStr != "" {
		return uuid.Parse(idStr)
	}
	if placeID == "" && query == "" && dataFile == "" {
		return uuid.Nil, fmt.Errorf("either --id or a candidate (--place-id/--query/--place-data) is required")
	}

	var placeData json.RawMessage
	if dataFile != "" {
		raw, err := os.ReadFile(dataFile)
		if err != nil {
			return uuid.Nil, fmt.Errorf("read --place-data: %w", err)
		}
		if !json.Valid(raw) {
			return uuid.Nil, fmt.Errorf("--place-data is not valid JSON")
		}
		placeData = raw
	}

	return client.StartExtraction(ctx, et, extraction.StartRequest{
		PlaceID:     placeID,
		SearchQuery: query,
		PlaceData:   placeData,
		Override:    override,
	})
}

func render(u extraction.Update) {
	fmt.Printf("[%s] %3d%%", u.Job.Status, u.Job.Progress)
	if u.Job.CurrentStep != "" {
		fmt.Printf("  %s", u.Job.CurrentStep)
	}
	fmt.Println()
	for _, step := range u.Job.Steps {
		marker := " "
		switch step.Status {
		case constants.StepRunning:
			marker = ">"
		case constants.StepCompleted:
			marker = "+"
		case constants.StepFailed:
			marker = "x"
		}
		fmt.Printf("  %s %-24s %s", marker, step.DisplayName, step.Status)
		if step.Progress != nil {
			fmt.Printf("  %d/%d ($%.2f)", step.Progress.Current, step.Progress.Total, step.Progress.Cost)
		}
		if step.Error != "" {
			fmt.Printf("  %s", step.Error)
		}
		fmt.Println()
	}
	if u.Done && u.Record != nil {
		fmt.Printf("record: %s (%s), %d images, %d attributes\n",
			u.Record.Name, u.Record.Slug, len(u.Record.Images), len(u.Record.Attributes))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
