package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/sharetube/roomdecor/internal/codec"
	"github.com/sharetube/roomdecor/internal/controller"
	"github.com/sharetube/roomdecor/internal/covers"
	"github.com/sharetube/roomdecor/internal/library"
	coverRedis "github.com/sharetube/roomdecor/internal/repository/cover/redis"
	"github.com/sharetube/roomdecor/internal/state"
	"github.com/sharetube/roomdecor/pkg/ctxlogger"
	"github.com/sharetube/roomdecor/pkg/deezer"
	"github.com/sharetube/roomdecor/pkg/redisclient"
)

type AppConfig struct {
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	LogLevel       string        `json:"log_level"`
	RedisPort      int           `json:"redis_port"`
	RedisHost      string        `json:"redis_host"`
	RedisPassword  string        `json:"-"`
	DeezerURL      string        `json:"deezer_url"`
	PublicURL      string        `json:"public_url"`
	SongsPath      string        `json:"songs_path"`
	MaxTokenLength int           `json:"max_token_length"`
	PlaylistLimit  int           `json:"playlist_limit"`
	SongsLimit     int           `json:"songs_limit"`
	CoverCacheTTL  time.Duration `json:"cover_cache_ttl"`
}

var logLevels = []any{"DEBUG", "INFO", "WARN", "ERROR"}

func (cfg *AppConfig) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Host, validation.Required),
		validation.Field(&cfg.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&cfg.LogLevel, validation.Required, validation.By(func(value any) error {
			return validation.Validate(strings.ToUpper(value.(string)), validation.In(logLevels...))
		})),
		validation.Field(&cfg.RedisHost, validation.Required),
		validation.Field(&cfg.RedisPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&cfg.DeezerURL, validation.Required, is.URL),
		validation.Field(&cfg.PublicURL, validation.Required, is.URL),
		validation.Field(&cfg.MaxTokenLength, validation.Required, validation.Min(64)),
		validation.Field(&cfg.PlaylistLimit, validation.Required, validation.Min(1)),
		validation.Field(&cfg.SongsLimit, validation.Required, validation.Min(1)),
		validation.Field(&cfg.CoverCacheTTL, validation.Required, validation.Min(time.Second)),
	)
}

func newLogger(level string) (*slog.Logger, error) {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	h := ctxlogger.ContextHandler{
		Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}),
	}

	return slog.New(h), nil
}

// newHandler wires every component behind the http handler. coverRepo may be nil.
func newHandler(cfg *AppConfig, coverRepo covers.CoverRepo, logger *slog.Logger) (http.Handler, error) {
	songs, err := library.Load(cfg.SongsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load songs: %w", err)
	}

	roomCodec := codec.New(&codec.Config{
		MaxTokenLength: cfg.MaxTokenLength,
	}, logger)

	reducer := state.NewReducer(&state.Config{
		Hydrator:      roomCodec,
		PlaylistLimit: cfg.PlaylistLimit,
		SongsLimit:    cfg.SongsLimit,
	})

	coverService := covers.NewService(deezer.NewClient(cfg.DeezerURL, nil), coverRepo, covers.DefaultFillInterval, logger)

	ctrl := controller.NewController(&controller.Params{
		Codec:        roomCodec,
		Reducer:      reducer,
		Library:      songs,
		CoverService: coverService,
	}, &controller.Config{
		PublicURL: cfg.PublicURL,
	}, logger)

	return ctrl.GetMux(), nil
}

func Run(ctx context.Context, cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	var coverRepo covers.CoverRepo
	rc, err := redisclient.NewRedisClient(ctx, &redisclient.Config{
		Port:     cfg.RedisPort,
		Host:     cfg.RedisHost,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		logger.WarnContext(ctx, "redis unavailable, cover cache disabled", "error", err)
	} else {
		defer rc.Close()
		coverRepo = coverRedis.NewRepo(rc, cfg.CoverCacheTTL, logger)
	}

	handler, err := newHandler(cfg, coverRepo, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// graceful shutdown
	serverCtx, serverStopCtx := context.WithCancel(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		shutdownCtx, c := context.WithTimeout(serverCtx, 30*time.Second)
		defer c()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	logger.InfoContext(serverCtx, "starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-serverCtx.Done()

	return nil
}
