package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cinetech/cinetech/pkg/constants"
	"github.com/cinetech/cinetech/pkg/errors"
)

// NotAvailable is the marker the external metadata service uses for an
// absent field.
const NotAvailable = "N/A"

// ExternalFilm is a raw record from the external film-metadata service.
// All fields are strings as delivered on the wire; any of them may carry
// the NotAvailable marker instead of real data.
type ExternalFilm struct {
	Title    string
	Year     string
	Director string
	Genre    string
	Runtime  string // e.g. "148 min"
	Rating   string // e.g. "8.8"
	Poster   string
	Plot     string
	Country  string
}

// ImportExternalFilm normalizes a record from the external metadata
// service into the native film shape and inserts it.
//
// The director is matched by exact case-sensitive name. When no match
// exists and the external name is not a not-available marker, a new
// director is synthesized: nationality from the first comma-separated
// token of the country field, plus a generated one-line biography. When
// the name is unavailable, the film gets the sentinel director id.
//
// Fields carrying the not-available marker fall back to the system's own
// defaults: placeholder poster, default genre label, 120 minute duration,
// 7.0 rating, current year. The title has no default; a record without a
// usable title is rejected. The fetch-normalize-insert cycle is a single
// observable step.
func (c *Catalog) ImportExternalFilm(raw ExternalFilm) (*Film, error) {
	if notAvailable(raw.Title) {
		return nil, errors.NewValidationError("title", raw.Title, "title must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	directorID := c.resolveImportDirectorLocked(raw)

	film := &Film{
		ID:         c.allocateFilmIDLocked(),
		Title:      raw.Title,
		DirectorID: directorID,
		Year:       normalizeYear(raw.Year, c.now().Year()),
		Genre:      normalizeGenre(raw.Genre),
		Duration:   normalizeRuntime(raw.Runtime),
		Rating:     normalizeRating(raw.Rating),
		Poster:     normalizePoster(raw.Poster),
		Synopsis:   normalizeText(raw.Plot),
		CreatedAt:  c.now(),
	}

	// Defaulted fields bypass create validation, but the rating range
	// still holds for real external values.
	if film.Rating < 0 || film.Rating > 10 {
		film.Rating = constants.DefaultRating
	}

	c.films = append(c.films, film)
	c.persistLocked()

	c.logger.Info().Int("id", film.ID).Str("title", film.Title).Msg("Film imported from external service")
	return film.clone(), nil
}

// resolveImportDirectorLocked reuses an existing director matched by exact
// name, synthesizes a new one, or falls back to the sentinel id.
func (c *Catalog) resolveImportDirectorLocked(raw ExternalFilm) int {
	if d := c.directorByNameLocked(raw.Director); d != nil {
		return d.ID
	}
	if notAvailable(raw.Director) {
		return SentinelDirectorID
	}

	director := &Director{
		ID:          c.allocateDirectorIDLocked(),
		Name:        raw.Director,
		Nationality: firstToken(normalizeText(raw.Country)),
		Bio:         fmt.Sprintf("Director of %q", raw.Title),
	}
	c.directors = append(c.directors, director)
	return director.ID
}

// notAvailable reports whether an external field carries no usable value.
func notAvailable(s string) bool {
	return s == "" || s == NotAvailable
}

// normalizeText maps the not-available marker to an empty string.
func normalizeText(s string) string {
	if notAvailable(s) {
		return ""
	}
	return s
}

// normalizeGenre keeps the first genre of a comma-separated list.
func normalizeGenre(s string) string {
	if notAvailable(s) {
		return constants.DefaultGenre
	}
	return firstToken(s)
}

// normalizeYear parses the leading year of values like "2010" or
// "2010-2012", falling back to the current year.
func normalizeYear(s string, current int) int {
	if year, err := strconv.Atoi(leadingDigits(s)); err == nil && year > 0 {
		return year
	}
	return current
}

// normalizeRuntime parses the leading integer of values like "148 min".
func normalizeRuntime(s string) int {
	if minutes, err := strconv.Atoi(leadingDigits(s)); err == nil && minutes > 0 {
		return minutes
	}
	return constants.DefaultDuration
}

// normalizeRating parses a decimal rating string.
func normalizeRating(s string) float64 {
	if notAvailable(s) {
		return constants.DefaultRating
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return constants.DefaultRating
	}
	return rating
}

// normalizePoster substitutes the placeholder URI for missing posters.
func normalizePoster(s string) string {
	if notAvailable(s) {
		return constants.PlaceholderPoster
	}
	return s
}

// firstToken returns the first comma-separated token, trimmed.
func firstToken(s string) string {
	token, _, _ := strings.Cut(s, ",")
	return strings.TrimSpace(token)
}

// leadingDigits returns the leading run of ASCII digits in s, skipping
// leading whitespace.
func leadingDigits(s string) string {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
