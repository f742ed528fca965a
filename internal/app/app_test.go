package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/redis/go-redis/v9"
	coverRedis "github.com/sharetube/roomdecor/internal/repository/cover/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *AppConfig {
	return &AppConfig{
		Host:           "0.0.0.0",
		Port:           8080,
		LogLevel:       "info",
		RedisHost:      "localhost",
		RedisPort:      6379,
		DeezerURL:      "https://api.deezer.com",
		PublicURL:      "https://decor.example.com",
		MaxTokenLength: 4096,
		PlaylistLimit:  25,
		SongsLimit:     100,
		CoverCacheTTL:  time.Hour,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		modify func(cfg *AppConfig)
		field  string
	}{
		{"port out of range", func(cfg *AppConfig) { cfg.Port = 70000 }, "port"},
		{"unknown log level", func(cfg *AppConfig) { cfg.LogLevel = "verbose" }, "log_level"},
		{"bad deezer url", func(cfg *AppConfig) { cfg.DeezerURL = "not a url" }, "deezer_url"},
		{"missing public url", func(cfg *AppConfig) { cfg.PublicURL = "" }, "public_url"},
		{"tiny token limit", func(cfg *AppConfig) { cfg.MaxTokenLength = 10 }, "max_token_length"},
		{"zero playlist limit", func(cfg *AppConfig) { cfg.PlaylistLimit = 0 }, "playlist_limit"},
		{"short cache ttl", func(cfg *AppConfig) { cfg.CoverCacheTTL = time.Millisecond }, "cover_cache_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	s := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { rc.Close() })

	cfg := validConfig()
	handler, err := newHandler(cfg, coverRedis.NewRepo(rc, cfg.CoverCacheTTL, slog.Default()), slog.Default())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/songs?q=&limit=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Data, 3)
}

func TestNewHandlerBadSongsPath(t *testing.T) {
	cfg := validConfig()
	cfg.SongsPath = "/does/not/exist.json"

	_, err := newHandler(cfg, nil, slog.Default())
	assert.Error(t, err)
}
