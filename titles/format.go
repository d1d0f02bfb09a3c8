package titles

import (
	"fmt"
	"strings"

	"vodmatch/models"
	"vodmatch/services"
)

const (
	imageBaseURL     = "https://image.tmdb.org/t/p/"
	youtubeWatchURL  = "https://www.youtube.com/watch?v="
	fallbackSynopsis = "Descrição não disponível"
	maxCastEntries   = 10
)

// formatRuntime renders minutes as "1h 30min" / "45min"; zero renders
// as the zero-minutes literal.
func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return "0min"
	}
	h := minutes / 60
	m := minutes % 60
	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh ", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dmin", m)
	} else {
		b.WriteString("0min")
	}
	return b.String()
}

// imageURL prefixes a TMDB image path with the CDN base at the given
// size; empty paths stay empty.
func imageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}

// firstTrailer picks the first video of type Trailer that has a
// playable key, as a YouTube watch URL.
func firstTrailer(videos services.VideoResults) string {
	for _, v := range videos.Results {
		if v.Type == "Trailer" && v.Key != "" {
			return youtubeWatchURL + v.Key
		}
	}
	return ""
}

// movieCertification scans release dates for the BR then US regions,
// in that priority order, returning the first non-empty certification.
func movieCertification(releases services.ReleaseDates) string {
	for _, region := range []string{"BR", "US"} {
		for _, entry := range releases.Results {
			if entry.Region != region {
				continue
			}
			for _, r := range entry.ReleaseDates {
				if r.Certification != "" {
					return r.Certification
				}
			}
		}
	}
	return ""
}

// tvCertification returns the first US/BR content rating with its
// "TV-" prefix stripped.
func tvCertification(ratings services.ContentRatings) string {
	for _, r := range ratings.Results {
		if (r.Region == "US" || r.Region == "BR") && r.Rating != "" {
			return strings.ReplaceAll(r.Rating, "TV-", "")
		}
	}
	return ""
}

// castList truncates to the first entries and keeps only members with
// a photo.
func castList(credits services.Credits) []models.CastMember {
	cast := credits.Cast
	if len(cast) > maxCastEntries {
		cast = cast[:maxCastEntries]
	}
	out := make([]models.CastMember, 0, len(cast))
	for _, member := range cast {
		if member.ProfilePath == "" {
			continue
		}
		out = append(out, models.CastMember{
			Name: member.Name,
			Foto: imageURL("w200", member.ProfilePath),
		})
	}
	return out
}

// genreNames flattens genre entries to their names, always allocated
// so the field renders as [].
func genreNames(genres []services.Genre) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		out = append(out, g.Name)
	}
	return out
}

// orSynopsis applies the aggregation-boundary default for an absent
// synopsis.
func orSynopsis(overview string) string {
	if overview == "" {
		return fallbackSynopsis
	}
	return overview
}
