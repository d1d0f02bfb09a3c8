package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newXtreamServer(t *testing.T, action string, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/player_api.php", r.URL.Path)
		assert.Equal(t, "user", r.URL.Query().Get("username"))
		assert.Equal(t, "pass", r.URL.Query().Get("password"))
		assert.Equal(t, action, r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(body))
	}))
}

func TestVODStreamsFlexibleDecoding(t *testing.T) {
	// Some panels serve stream_id as a number, others as a string.
	server := newXtreamServer(t, "get_vod_streams", `[
		{"name": "Foo Bar", "stream_id": 55, "category_id": "12", "stream_icon": "http://x/icon.png"},
		{"name": "Baz", "stream_id": "56", "category_id": 7}
	]`)
	defer server.Close()

	svc := NewIPTVService(server.URL, "user", "pass")
	streams, err := svc.VODStreams(context.Background())
	assert.NoError(t, err)
	assert.Len(t, streams, 2)
	assert.Equal(t, FlexInt(55), streams[0].StreamID)
	assert.Equal(t, FlexInt(56), streams[1].StreamID)
	assert.Equal(t, FlexString("12"), streams[0].CategoryID)
	assert.Equal(t, FlexString("7"), streams[1].CategoryID)
}

func TestSeriesList(t *testing.T) {
	server := newXtreamServer(t, "get_series", `[
		{"name": "Foo", "series_id": "7", "cover": "http://x/cover.jpg"}
	]`)
	defer server.Close()

	svc := NewIPTVService(server.URL, "user", "pass")
	listings, err := svc.SeriesList(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, FlexInt(7), listings[0].SeriesID)
	assert.Equal(t, "Foo", listings[0].Name)
}

func TestSeriesInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "get_series_info", r.URL.Query().Get("action"))
		assert.Equal(t, "7", r.URL.Query().Get("series_id"))
		_, _ = w.Write([]byte(`{"episodes": {
			"1": [
				{"id": 10, "episode_num": "1", "title": "S01E01", "container_extension": "mkv"},
				{"id": "11", "episode_num": 2, "title": "S01E02"}
			]
		}}`))
	}))
	defer server.Close()

	svc := NewIPTVService(server.URL, "user", "pass")
	info, err := svc.SeriesInfo(context.Background(), 7)
	assert.NoError(t, err)
	episodes := info.Episodes["1"]
	assert.Len(t, episodes, 2)
	assert.Equal(t, FlexString("10"), episodes[0].ID)
	assert.Equal(t, FlexInt(1), episodes[0].EpisodeNum)
	assert.Equal(t, "mkv", episodes[0].ContainerExtension)
	assert.Equal(t, FlexString("11"), episodes[1].ID)
	assert.Equal(t, FlexInt(2), episodes[1].EpisodeNum)
}

func TestStreamURLs(t *testing.T) {
	svc := NewIPTVService("http://provider.example", "user", "pass")
	assert.Equal(t, "http://provider.example:80/movie/user/pass/55.mp4", svc.MovieStreamURL(55))
	assert.Equal(t, "http://provider.example/series/user/pass/99.mkv", svc.EpisodeStreamURL("99", "mkv"))
	assert.Equal(t, "http://provider.example/series/user/pass/99.mp4", svc.EpisodeStreamURL("99", ""))
}

func TestIPTVUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewIPTVService(server.URL, "user", "pass")
	_, err := svc.VODStreams(context.Background())
	assert.Error(t, err)
}

func TestFlexIntEdgeCases(t *testing.T) {
	var f FlexInt
	assert.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.Equal(t, FlexInt(0), f)
	assert.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.Equal(t, FlexInt(0), f)
	assert.NoError(t, json.Unmarshal([]byte(`"55.0"`), &f))
	assert.Equal(t, FlexInt(55), f)
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
}
