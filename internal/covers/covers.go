// Package covers finds album art and preview clips for songs.
package covers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sharetube/roomdecor/internal/domain"
	"github.com/sharetube/roomdecor/internal/repository/cover"
	"github.com/sharetube/roomdecor/pkg/deezer"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	DefaultFillInterval = 300 * time.Millisecond

	fetchTimeout = 10 * time.Second
)

var ErrNetworkFailure = errors.New("network failure")

type Cover struct {
	Cover   string `json:"cover"`
	Preview string `json:"preview"`
}

type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]deezer.Track, error)
}

type CoverRepo interface {
	GetCover(ctx context.Context, query string) (cover.Cover, error)
	SetCover(ctx context.Context, params *cover.SetCoverParams) error
}

type Service struct {
	searcher     Searcher
	repo         CoverRepo
	group        singleflight.Group
	fillInterval time.Duration
	logger       *slog.Logger
}

// NewService creates a lookup service. repo may be nil, which disables caching.
func NewService(searcher Searcher, repo CoverRepo, fillInterval time.Duration, logger *slog.Logger) *Service {
	if fillInterval <= 0 {
		fillInterval = DefaultFillInterval
	}

	return &Service{
		searcher:     searcher,
		repo:         repo,
		fillInterval: fillInterval,
		logger:       logger,
	}
}

func normalize(name, artist string) string {
	return strings.Join(strings.Fields(strings.ToLower(name+" "+artist)), " ")
}

// Lookup returns the best match for a song. A song with no match yields an empty Cover
// and no error.
func (s *Service) Lookup(ctx context.Context, name, artist string) (Cover, error) {
	return s.lookup(ctx, name, artist, false)
}

// LookupPreview skips the cache and always asks deezer, since preview urls are signed
// and expire. The fresh result still refreshes the cache.
func (s *Service) LookupPreview(ctx context.Context, name, artist string) (Cover, error) {
	return s.lookup(ctx, name, artist, true)
}

func (s *Service) lookup(ctx context.Context, name, artist string, fresh bool) (Cover, error) {
	query := normalize(name, artist)
	if query == "" {
		return Cover{}, nil
	}

	if s.repo != nil && !fresh {
		cached, err := s.repo.GetCover(ctx, query)
		switch {
		case err == nil:
			return Cover{Cover: cached.Cover, Preview: cached.Preview}, nil
		case !errors.Is(err, cover.ErrCoverNotFound):
			s.logger.WarnContext(ctx, "cover cache unavailable", "error", err)
		}
	}

	// the shared fetch outlives any single caller
	ch := s.group.DoChan(query, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		c, err := s.fetch(fetchCtx, name+" "+artist)
		if err != nil {
			return Cover{}, err
		}

		if s.repo != nil {
			if err := s.repo.SetCover(fetchCtx, &cover.SetCoverParams{
				Query:   query,
				Cover:   c.Cover,
				Preview: c.Preview,
			}); err != nil {
				s.logger.WarnContext(ctx, "failed to cache cover", "error", err)
			}
		}

		return c, nil
	})

	select {
	case <-ctx.Done():
		return Cover{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Cover{}, res.Err
		}
		return res.Val.(Cover), nil
	}
}

func (s *Service) fetch(ctx context.Context, query string) (Cover, error) {
	tracks, err := s.searcher.Search(ctx, query, 1)
	if err != nil {
		return Cover{}, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	if len(tracks) == 0 {
		return Cover{}, nil
	}

	return Cover{
		Cover:   tracks[0].Cover(),
		Preview: tracks[0].Preview,
	}, nil
}

// Fill looks up missing covers and previews one song at a time, waiting fillInterval
// between requests. Songs whose lookup fails are logged and left as they are.
// It returns how many songs got a cover.
func (s *Service) Fill(ctx context.Context, songs []domain.Song) (int, error) {
	limiter := rate.NewLimiter(rate.Every(s.fillInterval), 1)

	found := 0
	for i := range songs {
		song := &songs[i]
		if song.Cover != "" && song.Preview != "" {
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return found, fmt.Errorf("failed to wait for rate limiter: %w", err)
		}

		c, err := s.Lookup(ctx, song.Name, song.Artist)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to look up cover", "song_id", song.ID, "error", err)
			continue
		}

		if c.Cover != "" && song.Cover == "" {
			song.Cover = c.Cover
			found++
		}
		if c.Preview != "" && song.Preview == "" {
			song.Preview = c.Preview
		}

		s.logger.DebugContext(ctx, "cover looked up", "song_id", song.ID, "cover", c.Cover != "", "preview", c.Preview != "")
	}

	return found, nil
}
