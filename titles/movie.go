package titles

import (
	"context"
	"fmt"

	"vodmatch/match"
	"vodmatch/models"
	"vodmatch/services"
)

const movieUnavailableMessage = "Filme não disponível no IPTV no momento"

// MovieDetails fetches the metadata record for tmdbID, scans the
// playback movie catalog for the best title match and aggregates both
// into the response. A missing or sub-threshold playback match is a
// soft failure: the response still succeeds with Success false and an
// explanatory message. A playback catalog fetch failure degrades the
// same way.
func (s *Service) MovieDetails(ctx context.Context, tmdbID string) (*models.MovieDetails, error) {
	movie, err := s.metadata.GetMovie(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("metadata lookup for movie %s: %w", tmdbID, err)
	}

	var (
		best    services.VODStream
		matched bool
	)
	streams, err := s.playback.VODStreams(ctx)
	if err != nil {
		s.log.Warn("playback catalog fetch failed, treating movie as unmatched",
			"tmdb_id", tmdbID, "error", err)
	} else {
		var percent float64
		best, percent, matched = match.Best(movie.Title, streams,
			func(v services.VODStream) string { return v.Name }, match.MovieThreshold)
		if matched {
			s.log.Debug("movie matched", "tmdb_id", tmdbID, "iptv_name", best.Name, "percent", percent)
		}
	}

	details := &models.MovieDetails{
		Success:                 matched,
		TMDBID:                  movie.ID,
		Titulo:                  movie.Title,
		Sinopse:                 orSynopsis(movie.Overview),
		Nota:                    movie.VoteAverage,
		Lancamento:              movie.ReleaseDate,
		DuracaoFormatada:        formatRuntime(movie.Runtime),
		ClassificacaoIndicativa: movieCertification(movie.ReleaseDates),
		Poster:                  imageURL("w500", movie.PosterPath),
		Trailer:                 firstTrailer(movie.Videos),
		Generos:                 genreNames(movie.Genres),
		Elenco:                  castList(movie.Credits),
	}

	if matched {
		details.IPTVStreamID = int64(best.StreamID)
		details.IPTVName = best.Name
		details.IPTVStreamURL = s.playback.MovieStreamURL(int64(best.StreamID))
	} else {
		details.Message = movieUnavailableMessage
	}

	return details, nil
}
