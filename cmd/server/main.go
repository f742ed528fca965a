package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sharetube/roomdecor/internal/app"
	"github.com/sharetube/roomdecor/internal/codec"
	"github.com/sharetube/roomdecor/internal/state"
	"github.com/sharetube/roomdecor/pkg/deezer"
)

type configVar[T any] struct {
	envKey       string
	flagKey      string
	defaultValue T
	usage        string
}

var (
	port = configVar[int]{
		envKey:       "SERVER_PORT",
		flagKey:      "port",
		defaultValue: 80,
		usage:        "Server port",
	}
	host = configVar[string]{
		envKey:       "SERVER_HOST",
		flagKey:      "host",
		defaultValue: "0.0.0.0",
		usage:        "Server host",
	}
	logLevel = configVar[string]{
		envKey:       "SERVER_LOG_LEVEL",
		flagKey:      "log-level",
		defaultValue: "INFO",
		usage:        "Logging level",
	}
	publicURL = configVar[string]{
		envKey:       "SERVER_PUBLIC_URL",
		flagKey:      "public-url",
		defaultValue: "http://localhost",
		usage:        "Public base url used in share links",
	}
	songsPath = configVar[string]{
		envKey:       "SERVER_SONGS_PATH",
		flagKey:      "songs-path",
		defaultValue: "",
		usage:        "Path to a songs json file, the embedded library is used when empty",
	}
	maxTokenLength = configVar[int]{
		envKey:       "SERVER_MAX_TOKEN_LENGTH",
		flagKey:      "max-token-length",
		defaultValue: codec.DefaultMaxTokenLength,
		usage:        "Maximum length of a share token",
	}
	playlistLimit = configVar[int]{
		envKey:       "SERVER_PLAYLIST_LIMIT",
		flagKey:      "playlist-limit",
		defaultValue: state.DefaultPlaylistLimit,
		usage:        "Maximum number of playlists in a room",
	}
	songsLimit = configVar[int]{
		envKey:       "SERVER_SONGS_LIMIT",
		flagKey:      "songs-limit",
		defaultValue: state.DefaultSongsLimit,
		usage:        "Maximum number of songs in a playlist",
	}
	deezerURL = configVar[string]{
		envKey:       "DEEZER_URL",
		flagKey:      "deezer-url",
		defaultValue: deezer.DefaultBaseURL,
		usage:        "Deezer api base url",
	}
	coverCacheTTL = configVar[time.Duration]{
		envKey:       "SERVER_COVER_CACHE_TTL",
		flagKey:      "cover-cache-ttl",
		defaultValue: 24 * time.Hour,
		usage:        "How long looked up covers stay cached",
	}
	redisPort = configVar[int]{
		envKey:       "REDIS_PORT",
		flagKey:      "redis-port",
		defaultValue: 6379,
		usage:        "Redis port",
	}
	redisHost = configVar[string]{
		envKey:       "REDIS_HOST",
		flagKey:      "redis-host",
		defaultValue: "localhost",
		usage:        "Redis host",
	}
	redisPassword = configVar[string]{
		envKey:       "REDIS_PASSWORD",
		flagKey:      "redis-password",
		defaultValue: "",
		usage:        "Redis password",
	}
)

func bindString(v configVar[string]) {
	pflag.String(v.flagKey, v.defaultValue, v.usage)
	viper.BindEnv(v.flagKey, v.envKey)
	viper.SetDefault(v.flagKey, v.defaultValue)
}

func bindInt(v configVar[int]) {
	pflag.Int(v.flagKey, v.defaultValue, v.usage)
	viper.BindEnv(v.flagKey, v.envKey)
	viper.SetDefault(v.flagKey, v.defaultValue)
}

func bindDuration(v configVar[time.Duration]) {
	pflag.Duration(v.flagKey, v.defaultValue, v.usage)
	viper.BindEnv(v.flagKey, v.envKey)
	viper.SetDefault(v.flagKey, v.defaultValue)
}

func loadAppConfig() *app.AppConfig {
	bindInt(port)
	bindString(host)
	bindString(logLevel)
	bindString(publicURL)
	bindString(songsPath)
	bindInt(maxTokenLength)
	bindInt(playlistLimit)
	bindInt(songsLimit)
	bindString(deezerURL)
	bindDuration(coverCacheTTL)
	bindInt(redisPort)
	bindString(redisHost)
	bindString(redisPassword)
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)

	return &app.AppConfig{
		Host:           viper.GetString(host.flagKey),
		Port:           viper.GetInt(port.flagKey),
		LogLevel:       viper.GetString(logLevel.flagKey),
		PublicURL:      viper.GetString(publicURL.flagKey),
		SongsPath:      viper.GetString(songsPath.flagKey),
		MaxTokenLength: viper.GetInt(maxTokenLength.flagKey),
		PlaylistLimit:  viper.GetInt(playlistLimit.flagKey),
		SongsLimit:     viper.GetInt(songsLimit.flagKey),
		DeezerURL:      viper.GetString(deezerURL.flagKey),
		CoverCacheTTL:  viper.GetDuration(coverCacheTTL.flagKey),
		RedisPort:      viper.GetInt(redisPort.flagKey),
		RedisHost:      viper.GetString(redisHost.flagKey),
		RedisPassword:  viper.GetString(redisPassword.flagKey),
	}
}

func main() {
	ctx := context.Background()

	appConfig := loadAppConfig()

	jsonConfig, _ := json.MarshalIndent(appConfig, "", "  ")
	fmt.Printf("starting app with config: %s\n", jsonConfig)

	log.Fatal(app.Run(ctx, appConfig))
}
