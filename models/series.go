package models

// SeriesDetails is the /series response.
type SeriesDetails struct {
	Success    bool      `json:"success"`
	Serie      Series    `json:"serie"`
	Temporadas []Season  `json:"temporadas"`
	Episodios  []Episode `json:"episodios"`
}

// Series carries the series-level metadata fields.
type Series struct {
	TMDBID        int          `json:"tmdb_id"`
	Titulo        string       `json:"titulo"`
	Sinopse       string       `json:"sinopse"`
	Nota          float64      `json:"nota"`
	Lancamento    string       `json:"lancamento"`
	Poster        string       `json:"poster"`
	Backdrop      string       `json:"backdrop"`
	Trailer       string       `json:"trailer"`
	Generos       []string     `json:"generos"`
	Elenco        []CastMember `json:"elenco"`
	Classificacao string       `json:"classificacao"`
}

// Season summarizes one metadata season. Season 0 (specials) is never
// included.
type Season struct {
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	Poster       string `json:"poster"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
}

// Episode is one aligned episode. SeasonNumber keeps the playback
// provider's string key; joining against metadata happens numerically
// before the record is built.
type Episode struct {
	SeasonNumber  string  `json:"season_number"`
	EpisodeNumber int64   `json:"episode_number"`
	Title         string  `json:"title"`
	Sinopse       string  `json:"sinopse"`
	StillPath     string  `json:"still_path"`
	AirDate       string  `json:"air_date"`
	Nota          float64 `json:"nota"`
	IPTVURL       string  `json:"iptv_url"`
}
