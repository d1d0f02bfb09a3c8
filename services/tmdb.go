// Package services provides typed clients for the external metadata
// and playback providers.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ErrNotFound reports that the provider has no record for the
// requested id.
var ErrNotFound = errors.New("title not found")

const (
	requestTimeout = 20 * time.Second
	userAgent      = "Mozilla/5.0 (compatible; TMDB-IPTV/1.0)"
)

// TMDBService handles interactions with The Movie Database API.
type TMDBService struct {
	baseURL  string
	apiKey   string
	language string
	client   *http.Client
}

// TMDBMovie is a movie record with credits, videos and release dates
// appended.
type TMDBMovie struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Overview     string       `json:"overview"`
	VoteAverage  float64      `json:"vote_average"`
	ReleaseDate  string       `json:"release_date"`
	Runtime      int          `json:"runtime"`
	PosterPath   string       `json:"poster_path"`
	Genres       []Genre      `json:"genres"`
	Credits      Credits      `json:"credits"`
	Videos       VideoResults `json:"videos"`
	ReleaseDates ReleaseDates `json:"release_dates"`
}

// TMDBSeries is a TV record with credits, videos and content ratings
// appended.
type TMDBSeries struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Overview       string           `json:"overview"`
	VoteAverage    float64          `json:"vote_average"`
	FirstAirDate   string           `json:"first_air_date"`
	PosterPath     string           `json:"poster_path"`
	BackdropPath   string           `json:"backdrop_path"`
	Genres         []Genre          `json:"genres"`
	Credits        Credits          `json:"credits"`
	Videos         VideoResults     `json:"videos"`
	ContentRatings ContentRatings   `json:"content_ratings"`
	Seasons        []TMDBSeasonStub `json:"seasons"`
}

// TMDBSeasonStub is the season summary embedded in a series record.
type TMDBSeasonStub struct {
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
}

// TMDBSeason is a full per-season episode listing.
type TMDBSeason struct {
	SeasonNumber int           `json:"season_number"`
	Episodes     []TMDBEpisode `json:"episodes"`
}

// TMDBEpisode is one episode's metadata within a season.
type TMDBEpisode struct {
	SeasonNumber  int     `json:"season_number"`
	EpisodeNumber int64   `json:"episode_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	StillPath     string  `json:"still_path"`
	AirDate       string  `json:"air_date"`
	VoteAverage   float64 `json:"vote_average"`
}

// Genre represents a genre entry.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits contains cast information.
type Credits struct {
	Cast []TMDBCastMember `json:"cast"`
}

// TMDBCastMember is one credited cast entry.
type TMDBCastMember struct {
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

// VideoResults wraps the appended videos sub-resource.
type VideoResults struct {
	Results []Video `json:"results"`
}

// Video is one trailer/teaser entry.
type Video struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

// ReleaseDates wraps the appended release_dates sub-resource.
type ReleaseDates struct {
	Results []ReleaseDateEntry `json:"results"`
}

// ReleaseDateEntry groups a region's release records.
type ReleaseDateEntry struct {
	Region       string        `json:"iso_3166_1"`
	ReleaseDates []ReleaseDate `json:"release_dates"`
}

// ReleaseDate is one release record carrying a certification string.
type ReleaseDate struct {
	Certification string `json:"certification"`
}

// ContentRatings wraps the appended content_ratings sub-resource.
type ContentRatings struct {
	Results []ContentRating `json:"results"`
}

// ContentRating is a per-region TV rating.
type ContentRating struct {
	Region string `json:"iso_3166_1"`
	Rating string `json:"rating"`
}

// NewTMDBService creates a TMDB client. baseURL has no trailing slash,
// e.g. "https://api.themoviedb.org/3".
func NewTMDBService(baseURL, apiKey, language string) *TMDBService {
	return &TMDBService{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// GetMovie fetches a movie record with credits, videos and release
// dates appended. Returns ErrNotFound when TMDB has no such movie.
func (t *TMDBService) GetMovie(ctx context.Context, id string) (*TMDBMovie, error) {
	url := fmt.Sprintf("%s/movie/%s?api_key=%s&language=%s&append_to_response=credits,videos,release_dates",
		t.baseURL, id, t.apiKey, t.language)

	var movie TMDBMovie
	if err := t.getJSON(ctx, url, &movie); err != nil {
		return nil, err
	}
	if movie.ID == 0 {
		return nil, ErrNotFound
	}
	return &movie, nil
}

// GetSeries fetches a series record with credits, videos and content
// ratings appended. Returns ErrNotFound when TMDB has no such series.
func (t *TMDBService) GetSeries(ctx context.Context, id string) (*TMDBSeries, error) {
	url := fmt.Sprintf("%s/tv/%s?api_key=%s&language=%s&append_to_response=credits,videos,content_ratings",
		t.baseURL, id, t.apiKey, t.language)

	var series TMDBSeries
	if err := t.getJSON(ctx, url, &series); err != nil {
		return nil, err
	}
	if series.ID == 0 {
		return nil, ErrNotFound
	}
	return &series, nil
}

// GetSeason fetches the full episode list of one season.
func (t *TMDBService) GetSeason(ctx context.Context, seriesID string, seasonNumber int) (*TMDBSeason, error) {
	url := fmt.Sprintf("%s/tv/%s/season/%d?api_key=%s&language=%s",
		t.baseURL, seriesID, seasonNumber, t.apiKey, t.language)

	var season TMDBSeason
	if err := t.getJSON(ctx, url, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

func (t *TMDBService) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build TMDB request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from TMDB: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close TMDB response body", "error", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API returned status %d", resp.StatusCode)
	}

	if err := decodeJSON(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode TMDB response: %w", err)
	}
	return nil
}
