package titles

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"vodmatch/models"
	"vodmatch/services"
)

// alignEpisodes merges the playback provider's per-season episode
// listing with per-season metadata. The playback listing is the
// driving set: a metadata episode without a playable asset is never
// surfaced, while a playback episode without metadata still emits with
// degraded fields. Metadata is fetched once per distinct season, never
// once per episode.
func (s *Service) alignEpisodes(ctx context.Context, tmdbID string, listing map[string][]services.SeriesEpisode) []models.Episode {
	out := make([]models.Episode, 0)
	for _, key := range sortedSeasonKeys(listing) {
		lookup := s.seasonLookup(ctx, tmdbID, key)
		for _, ep := range listing[key] {
			out = append(out, s.alignEpisode(key, ep, lookup))
		}
	}
	return out
}

// seasonLookup fetches one season's metadata and indexes it by episode
// number. A non-numeric season key or a failed fetch yields an empty
// lookup, degrading that season to playback-only fields instead of
// failing the request.
func (s *Service) seasonLookup(ctx context.Context, tmdbID, seasonKey string) map[int64]services.TMDBEpisode {
	lookup := make(map[int64]services.TMDBEpisode)
	seasonNumber, err := strconv.Atoi(strings.TrimSpace(seasonKey))
	if err != nil {
		s.log.Warn("non-numeric season key in playback listing", "tmdb_id", tmdbID, "season", seasonKey)
		return lookup
	}
	season, err := s.metadata.GetSeason(ctx, tmdbID, seasonNumber)
	if err != nil {
		s.log.Warn("season metadata fetch failed, emitting playback-only episodes",
			"tmdb_id", tmdbID, "season", seasonNumber, "error", err)
		return lookup
	}
	// Duplicate episode numbers within a season collapse to the last
	// one seen, matching the upstream feed's contract.
	for _, ep := range season.Episodes {
		lookup[ep.EpisodeNumber] = ep
	}
	return lookup
}

func (s *Service) alignEpisode(seasonKey string, ep services.SeriesEpisode, lookup map[int64]services.TMDBEpisode) models.Episode {
	record := models.Episode{
		SeasonNumber:  seasonKey,
		EpisodeNumber: int64(ep.EpisodeNum),
		IPTVURL:       s.playback.EpisodeStreamURL(string(ep.ID), ep.ContainerExtension),
	}

	meta, ok := lookup[int64(ep.EpisodeNum)]
	if !ok {
		record.Title = ep.Title
		record.Sinopse = fallbackSynopsis
		return record
	}

	// Metadata wins; the playback title is only a fallback when the
	// metadata record carries none.
	record.Title = meta.Name
	if record.Title == "" {
		record.Title = ep.Title
	}
	record.Sinopse = meta.Overview
	record.StillPath = imageURL("w300", meta.StillPath)
	record.AirDate = meta.AirDate
	record.Nota = meta.VoteAverage
	return record
}

// sortedSeasonKeys orders season keys numerically ascending; keys that
// do not parse sort after the numeric ones, lexically.
func sortedSeasonKeys(listing map[string][]services.SeriesEpisode) []string {
	keys := make([]string, 0, len(listing))
	for key := range listing {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iErr := strconv.Atoi(strings.TrimSpace(keys[i]))
		nj, jErr := strconv.Atoi(strings.TrimSpace(keys[j]))
		switch {
		case iErr == nil && jErr == nil:
			return ni < nj
		case iErr == nil:
			return true
		case jErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
