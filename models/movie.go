// Package models defines the response shapes served to clients. Field
// names and nesting are a compatibility contract with existing
// consumers and must not change.
package models

// MovieDetails is the /movie response. Success is true exactly when a
// playback match was found; the IPTV* fields are present only in that
// case, and Message only when no match was found.
type MovieDetails struct {
	Success                 bool         `json:"success"`
	TMDBID                  int          `json:"tmdb_id"`
	Titulo                  string       `json:"titulo"`
	Sinopse                 string       `json:"sinopse"`
	Nota                    float64      `json:"nota"`
	Lancamento              string       `json:"lancamento"`
	DuracaoFormatada        string       `json:"duracao_formatada"`
	ClassificacaoIndicativa string       `json:"classificacao_indicativa"`
	Poster                  string       `json:"poster"`
	Trailer                 string       `json:"trailer"`
	Generos                 []string     `json:"generos"`
	Elenco                  []CastMember `json:"elenco"`
	IPTVStreamID            int64        `json:"iptv_stream_id,omitempty"`
	IPTVName                string       `json:"iptv_name,omitempty"`
	IPTVStreamURL           string       `json:"iptv_stream_url,omitempty"`
	Message                 string       `json:"message,omitempty"`
}

// CastMember is one credited cast entry with a photo.
type CastMember struct {
	Name string `json:"name"`
	Foto string `json:"foto"`
}

// ErrorResponse is the body of every 4xx answer.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
