package titles

import (
	"context"
	"fmt"

	"vodmatch/match"
	"vodmatch/models"
	"vodmatch/services"
)

// SeriesDetails fetches the metadata record for tmdbID, locates the
// corresponding series in the playback catalog and aligns its episode
// listing season by season. Unlike movies there is no soft-failure
// state: without a matched series the caller gets ErrNoPlaybackMatch.
func (s *Service) SeriesDetails(ctx context.Context, tmdbID string) (*models.SeriesDetails, error) {
	series, err := s.metadata.GetSeries(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("metadata lookup for series %s: %w", tmdbID, err)
	}

	listings, err := s.playback.SeriesList(ctx)
	if err != nil {
		s.log.Warn("playback series catalog fetch failed", "tmdb_id", tmdbID, "error", err)
		return nil, ErrNoPlaybackMatch
	}
	best, percent, matched := match.Best(series.Name, listings,
		func(l services.SeriesListing) string { return l.Name }, match.SeriesThreshold)
	if !matched {
		return nil, ErrNoPlaybackMatch
	}
	s.log.Debug("series matched", "tmdb_id", tmdbID, "iptv_name", best.Name, "percent", percent)

	// A failed episode-listing fetch degrades to an empty listing; the
	// series-level response is still useful.
	episodes := map[string][]services.SeriesEpisode{}
	if info, err := s.playback.SeriesInfo(ctx, int64(best.SeriesID)); err != nil {
		s.log.Warn("playback episode listing fetch failed",
			"tmdb_id", tmdbID, "series_id", int64(best.SeriesID), "error", err)
	} else if info.Episodes != nil {
		episodes = info.Episodes
	}

	return &models.SeriesDetails{
		Success: true,
		Serie: models.Series{
			TMDBID:        series.ID,
			Titulo:        series.Name,
			Sinopse:       orSynopsis(series.Overview),
			Nota:          series.VoteAverage,
			Lancamento:    series.FirstAirDate,
			Poster:        imageURL("w500", series.PosterPath),
			Backdrop:      imageURL("w780", series.BackdropPath),
			Trailer:       firstTrailer(series.Videos),
			Generos:       genreNames(series.Genres),
			Elenco:        castList(series.Credits),
			Classificacao: tvCertification(series.ContentRatings),
		},
		Temporadas: seasonSummaries(series.Seasons),
		Episodios:  s.alignEpisodes(ctx, tmdbID, episodes),
	}, nil
}

// seasonSummaries keeps provider order and always excludes season 0
// (specials).
func seasonSummaries(seasons []services.TMDBSeasonStub) []models.Season {
	out := make([]models.Season, 0, len(seasons))
	for _, season := range seasons {
		if season.SeasonNumber == 0 {
			continue
		}
		out = append(out, models.Season{
			SeasonNumber: season.SeasonNumber,
			Name:         season.Name,
			Poster:       imageURL("w300", season.PosterPath),
			EpisodeCount: season.EpisodeCount,
			AirDate:      season.AirDate,
		})
	}
	return out
}
