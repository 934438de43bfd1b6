package catalog

import (
	"strings"

	"github.com/agentstation/utc"

	"github.com/cinetech/cinetech/pkg/errors"
)

// Film represents a single film record in the catalog.
//
// ID and CreatedAt are owned by the store: ID is assigned once at creation
// and never reused, and CreatedAt is set at creation and preserved across
// updates. DirectorID references a Director, or the sentinel
// SentinelDirectorID when the director is unknown.
type Film struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	DirectorID int      `json:"directorId"`
	Year       int      `json:"year"`
	Genre      string   `json:"genre"`
	Duration   int      `json:"duration"` // minutes
	Rating     float64  `json:"rating"`   // 0.0 to 10.0
	Poster     string   `json:"poster,omitempty"`
	Synopsis   string   `json:"synopsis,omitempty"`
	CreatedAt  utc.Time `json:"createdAt"`
}

// clone returns a deep copy of the film.
func (f *Film) clone() *Film {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// validate checks field-level constraints. Referential checks against the
// director collection happen in the store, which holds both collections.
func (f *Film) validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return errors.NewValidationError("title", f.Title, "title must not be empty")
	}
	if f.Rating < 0 || f.Rating > 10 {
		return errors.NewValidationError("rating", f.Rating, "rating must be between 0 and 10")
	}
	if f.Duration < 0 {
		return errors.NewValidationError("duration", f.Duration, "duration must not be negative")
	}
	if f.DirectorID < 0 {
		return errors.NewValidationError("directorId", f.DirectorID, "director reference must not be negative")
	}
	return nil
}
