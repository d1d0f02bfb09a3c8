package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// IPTVService talks to an Xtream-style playback provider through its
// player_api.php endpoint and builds playable stream URLs.
type IPTVService struct {
	domain   string
	username string
	password string
	client   *http.Client
}

// VODStream is one entry of the provider's movie catalog. The name is
// free text under provider control and is never normalized here.
type VODStream struct {
	Name       string     `json:"name"`
	StreamID   FlexInt    `json:"stream_id"`
	CategoryID FlexString `json:"category_id"`
	StreamIcon string     `json:"stream_icon"`
}

// SeriesListing is one entry of the provider's series catalog. The
// series id keys a second fetch for the per-season episode listing.
type SeriesListing struct {
	Name       string     `json:"name"`
	SeriesID   FlexInt    `json:"series_id"`
	CategoryID FlexString `json:"category_id"`
	Cover      string     `json:"cover"`
}

// SeriesInfo is the per-series episode listing, keyed by the
// provider's season-number strings.
type SeriesInfo struct {
	Episodes map[string][]SeriesEpisode `json:"episodes"`
}

// SeriesEpisode is one playable episode asset.
type SeriesEpisode struct {
	ID                 FlexString `json:"id"`
	EpisodeNum         FlexInt    `json:"episode_num"`
	Title              string     `json:"title"`
	ContainerExtension string     `json:"container_extension"`
}

// NewIPTVService creates an Xtream client. domain carries the scheme,
// e.g. "http://provider.example".
func NewIPTVService(domain, username, password string) *IPTVService {
	return &IPTVService{
		domain:   domain,
		username: username,
		password: password,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// VODStreams fetches the full movie catalog. The list is unordered and
// re-fetched on every request; there is no cross-request cache.
func (s *IPTVService) VODStreams(ctx context.Context) ([]VODStream, error) {
	var streams []VODStream
	if err := s.getJSON(ctx, "get_vod_streams", nil, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

// SeriesList fetches the full series catalog.
func (s *IPTVService) SeriesList(ctx context.Context) ([]SeriesListing, error) {
	var listings []SeriesListing
	if err := s.getJSON(ctx, "get_series", nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// SeriesInfo fetches the per-season episode listing for one series.
func (s *IPTVService) SeriesInfo(ctx context.Context, seriesID int64) (*SeriesInfo, error) {
	params := url.Values{"series_id": {fmt.Sprintf("%d", seriesID)}}
	var info SeriesInfo
	if err := s.getJSON(ctx, "get_series_info", params, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// MovieStreamURL builds the playable URL for a matched movie stream.
func (s *IPTVService) MovieStreamURL(streamID int64) string {
	return fmt.Sprintf("%s:80/movie/%s/%s/%d.mp4", s.domain, s.username, s.password, streamID)
}

// EpisodeStreamURL builds the playable URL for a series episode asset.
// An empty container extension falls back to mp4.
func (s *IPTVService) EpisodeStreamURL(episodeID, extension string) string {
	if extension == "" {
		extension = "mp4"
	}
	return fmt.Sprintf("%s/series/%s/%s/%s.%s", s.domain, s.username, s.password, episodeID, extension)
}

func (s *IPTVService) getJSON(ctx context.Context, action string, extra url.Values, out any) error {
	params := url.Values{
		"username": {s.username},
		"password": {s.password},
		"action":   {action},
	}
	for key, values := range extra {
		params[key] = values
	}
	endpoint := fmt.Sprintf("%s/player_api.php?%s", s.domain, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build IPTV request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from IPTV provider: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close IPTV response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("IPTV API returned status %d", resp.StatusCode)
	}

	if err := decodeJSON(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode IPTV response: %w", err)
	}
	return nil
}
