// Package main provides a CLI that prints the current headlines.
// Usage: news [--size N] [--source remote|synthetic] [--output text|json]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"news-contracts/internal/config"
	"news-contracts/internal/domain/entity"
	"news-contracts/internal/infra/source"
	"news-contracts/internal/observability/logging"
	"news-contracts/internal/usecase/news"
)

// NewsOutput is the JSON form of one News.
type NewsOutput struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	Author      string    `json:"author"`
	URL         string    `json:"url,omitempty"`
	URLImage    string    `json:"url_image,omitempty"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}

func main() {
	var (
		size         int
		sourceKind   string
		outputFormat string
		timeout      time.Duration
	)

	flag.IntVar(&size, "size", 0, "Number of headlines to retrieve; 0 returns none (default: NEWS_PAGE_SIZE)")
	flag.StringVar(&sourceKind, "source", "", "Source: remote or synthetic (default: NEWS_SOURCE)")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout")
	flag.Parse()

	if outputFormat != "text" && outputFormat != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q (expected text or json)\n", outputFormat)
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: failed to load .env: %v\n", err)
		os.Exit(1)
	}
	if sourceKind != "" {
		_ = os.Setenv("NEWS_SOURCE", sourceKind)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	size = resolveSize(flagPassed(flag.CommandLine, "size"), size, cfg.PageSize)

	// Logs go to stderr so stdout stays parseable.
	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	contracts, err := source.New(cfg.Source, cfg.APIKey, cfg.HTTPConfig(),
		source.WithLogger(logger),
		source.WithSeed(uint64(cfg.SyntheticSeed)))
	if err != nil {
		logger.Error("failed to create news source", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	svc := news.NewService(string(cfg.Source), contracts, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	items, err := svc.Retrieve(ctx, size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: retrieve failed (%s): %s\n", news.ErrorKind(err), logging.SanitizeError(err))
		os.Exit(1)
	}

	if outputFormat == "json" {
		err = outputJSON(os.Stdout, items)
	} else {
		err = outputText(os.Stdout, items)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

// outputText prints headlines in human-readable format.
func outputText(w io.Writer, items []*entity.News) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No headlines.")
		return err
	}
	for i, n := range items {
		if _, err := fmt.Fprintf(w, "%d. %s\n   %s | %s | %s\n   %s\n",
			i+1, n.Title(), n.Source(), n.Author(),
			n.PublishedAt().Format(time.RFC3339), n.Description()); err != nil {
			return err
		}
		if n.URL() != "" {
			if _, err := fmt.Fprintf(w, "   URL: %s\n", n.URL()); err != nil {
				return err
			}
		}
	}
	return nil
}

// outputJSON prints headlines as an indented JSON array.
func outputJSON(w io.Writer, items []*entity.News) error {
	out := make([]NewsOutput, 0, len(items))
	for _, n := range items {
		out = append(out, toOutput(n))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func toOutput(n *entity.News) NewsOutput {
	return NewsOutput{
		ID:          n.ID(),
		Title:       n.Title(),
		Source:      n.Source(),
		Author:      n.Author(),
		URL:         n.URL(),
		URLImage:    n.URLImage(),
		Description: n.Description(),
		Content:     n.Content(),
		PublishedAt: n.PublishedAt(),
	}
}

// flagPassed reports whether name was set on the command line.
func flagPassed(fs *flag.FlagSet, name string) bool {
	passed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// resolveSize returns the -size value when it was given, including 0 and
// negative values, and pageSize otherwise.
func resolveSize(passed bool, size, pageSize int) int {
	if passed {
		return size
	}
	return pageSize
}
