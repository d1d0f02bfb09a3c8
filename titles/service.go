// Package titles correlates metadata records with playback-catalog
// entries and aggregates them into the response shapes. All state is
// request-scoped; the providers are consulted fresh on every call.
package titles

import (
	"context"
	"errors"
	"log/slog"

	"vodmatch/services"
)

// ErrNoPlaybackMatch reports that no playback-catalog entry reached the
// acceptance threshold. For series this is a hard failure: without a
// matched series id there is nothing to drive episode alignment.
var ErrNoPlaybackMatch = errors.New("no playback match found")

// MetadataProvider supplies descriptive records for titles, series and
// seasons.
type MetadataProvider interface {
	GetMovie(ctx context.Context, id string) (*services.TMDBMovie, error)
	GetSeries(ctx context.Context, id string) (*services.TMDBSeries, error)
	GetSeason(ctx context.Context, seriesID string, seasonNumber int) (*services.TMDBSeason, error)
}

// PlaybackProvider supplies the streamable asset catalog and builds
// access URLs.
type PlaybackProvider interface {
	VODStreams(ctx context.Context) ([]services.VODStream, error)
	SeriesList(ctx context.Context) ([]services.SeriesListing, error)
	SeriesInfo(ctx context.Context, seriesID int64) (*services.SeriesInfo, error)
	MovieStreamURL(streamID int64) string
	EpisodeStreamURL(episodeID, extension string) string
}

// Service is the correlation and aggregation engine.
type Service struct {
	metadata MetadataProvider
	playback PlaybackProvider
	log      *slog.Logger
}

// NewService creates the engine over the given providers.
func NewService(metadata MetadataProvider, playback PlaybackProvider, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		metadata: metadata,
		playback: playback,
		log:      log,
	}
}
