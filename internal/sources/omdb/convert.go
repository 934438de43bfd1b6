package omdb

import (
	"github.com/cinetech/cinetech/pkg/catalog"
)

// External converts an OMDb record into the raw external shape consumed
// by the catalog's import adapter. Fields pass through verbatim, "N/A"
// markers included.
func (r *Record) External() catalog.ExternalFilm {
	return catalog.ExternalFilm{
		Title:    r.Title,
		Year:     r.Year,
		Director: r.Director,
		Genre:    r.Genre,
		Runtime:  r.Runtime,
		Rating:   r.IMDBRating,
		Poster:   r.Poster,
		Plot:     r.Plot,
		Country:  r.Country,
	}
}
