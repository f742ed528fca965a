package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sharetube/roomdecor/internal/repository/cover"
)

type repo struct {
	rc             *redis.Client
	expireDuration time.Duration
	logger         *slog.Logger
}

func NewRepo(rc *redis.Client, expireDuration time.Duration, logger *slog.Logger) *repo {
	return &repo{
		rc:             rc,
		expireDuration: expireDuration,
		logger:         logger,
	}
}

func (r repo) getCoverKey(query string) string {
	return "cover:" + query
}

func (r repo) GetCover(ctx context.Context, query string) (cover.Cover, error) {
	key := r.getCoverKey(query)
	cmd := r.rc.HGetAll(ctx, key)
	if err := cmd.Err(); err != nil {
		return cover.Cover{}, err
	}

	if len(cmd.Val()) == 0 {
		return cover.Cover{}, cover.ErrCoverNotFound
	}

	var c cover.Cover
	if err := cmd.Scan(&c); err != nil {
		return cover.Cover{}, err
	}

	return c, nil
}

func (r repo) SetCover(ctx context.Context, params *cover.SetCoverParams) error {
	r.logger.DebugContext(ctx, "set cover", "query", params.Query)
	pipe := r.rc.TxPipeline()

	key := r.getCoverKey(params.Query)
	if err := r.hSetStruct(ctx, pipe, key, cover.Cover{
		Cover:   params.Cover,
		Preview: params.Preview,
	}); err != nil {
		return err
	}
	pipe.Expire(ctx, key, r.expireDuration)

	return r.executePipe(ctx, pipe)
}
