// Command fetchcovers fills in missing cover art and preview urls of a songs file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/sharetube/roomdecor/internal/covers"
	"github.com/sharetube/roomdecor/internal/library"
	"github.com/sharetube/roomdecor/pkg/ctxlogger"
	"github.com/sharetube/roomdecor/pkg/deezer"
)

var errNoSongsPath = errors.New("songs path is required")

func run(ctx context.Context, songsPath, deezerURL string, interval time.Duration, logger *slog.Logger) error {
	// an empty path would load the embedded songs and leave nowhere to write them
	if songsPath == "" {
		return errNoSongsPath
	}

	lib, err := library.Load(songsPath)
	if err != nil {
		return err
	}

	songs := lib.Songs()
	service := covers.NewService(deezer.NewClient(deezerURL, nil), nil, interval, logger)

	found, err := service.Fill(ctx, songs)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "covers filled", "found", found, "songs", len(songs))

	data, err := json.MarshalIndent(songs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal songs: %w", err)
	}

	if err := os.WriteFile(songsPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write songs file: %w", err)
	}

	return nil
}

func main() {
	songsPath := pflag.String("songs", "internal/library/songs.json", "Songs file to update in place")
	deezerURL := pflag.String("deezer-url", deezer.DefaultBaseURL, "Deezer api base url")
	interval := pflag.Duration("interval", covers.DefaultFillInterval, "Delay between lookups")
	verbose := pflag.BoolP("verbose", "v", false, "Log every lookup")
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(ctxlogger.ContextHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *songsPath, *deezerURL, *interval, logger); err != nil {
		log.Fatal(err)
	}
}
