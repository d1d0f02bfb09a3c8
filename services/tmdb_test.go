package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const movieBody = `{
	"id": 100,
	"title": "Foo",
	"overview": "Um filme",
	"vote_average": 7.2,
	"release_date": "2020-05-01",
	"runtime": 90,
	"poster_path": "/poster.jpg",
	"genres": [{"id": 28, "name": "Ação"}],
	"credits": {"cast": [{"name": "Alice", "profile_path": "/a.jpg"}]},
	"videos": {"results": [{"key": "abc", "type": "Trailer"}]},
	"release_dates": {"results": [
		{"iso_3166_1": "BR", "release_dates": [{"certification": "12"}]}
	]}
}`

func TestGetMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/100", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))
		assert.Equal(t, "credits,videos,release_dates", r.URL.Query().Get("append_to_response"))
		_, _ = w.Write([]byte(movieBody))
	}))
	defer server.Close()

	svc := NewTMDBService(server.URL, "secret", "pt-BR")
	movie, err := svc.GetMovie(context.Background(), "100")
	assert.NoError(t, err)
	assert.Equal(t, 100, movie.ID)
	assert.Equal(t, "Foo", movie.Title)
	assert.Equal(t, 90, movie.Runtime)
	assert.Equal(t, "Ação", movie.Genres[0].Name)
	assert.Equal(t, "/a.jpg", movie.Credits.Cast[0].ProfilePath)
	assert.Equal(t, "Trailer", movie.Videos.Results[0].Type)
	assert.Equal(t, "12", movie.ReleaseDates.Results[0].ReleaseDates[0].Certification)
}

func TestGetMovieNotFoundStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewTMDBService(server.URL, "secret", "pt-BR")
	_, err := svc.GetMovie(context.Background(), "100")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMovieMissingIDIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status_message": "whatever"}`))
	}))
	defer server.Close()

	svc := NewTMDBService(server.URL, "secret", "pt-BR")
	_, err := svc.GetMovie(context.Background(), "100")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/200", r.URL.Path)
		assert.Equal(t, "credits,videos,content_ratings", r.URL.Query().Get("append_to_response"))
		_, _ = w.Write([]byte(`{
			"id": 200,
			"name": "Foo",
			"first_air_date": "2020-01-01",
			"backdrop_path": "/b.jpg",
			"content_ratings": {"results": [{"iso_3166_1": "US", "rating": "TV-MA"}]},
			"seasons": [{"season_number": 1, "name": "Temporada 1", "episode_count": 8}]
		}`))
	}))
	defer server.Close()

	svc := NewTMDBService(server.URL, "secret", "pt-BR")
	series, err := svc.GetSeries(context.Background(), "200")
	assert.NoError(t, err)
	assert.Equal(t, "Foo", series.Name)
	assert.Equal(t, "TV-MA", series.ContentRatings.Results[0].Rating)
	assert.Equal(t, 1, series.Seasons[0].SeasonNumber)
	assert.Equal(t, 8, series.Seasons[0].EpisodeCount)
}

func TestGetSeason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/200/season/2", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"season_number": 2,
			"episodes": [
				{"season_number": 2, "episode_number": 1, "name": "Volta", "overview": "…", "vote_average": 8.0}
			]
		}`))
	}))
	defer server.Close()

	svc := NewTMDBService(server.URL, "secret", "pt-BR")
	season, err := svc.GetSeason(context.Background(), "200", 2)
	assert.NoError(t, err)
	assert.Len(t, season.Episodes, 1)
	assert.Equal(t, int64(1), season.Episodes[0].EpisodeNumber)
	assert.Equal(t, "Volta", season.Episodes[0].Name)
}

func TestGetMovieUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewTMDBService(server.URL, "secret", "pt-BR")
	_, err := svc.GetMovie(context.Background(), "100")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
