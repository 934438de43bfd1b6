package catalog

import (
	"strings"

	"github.com/cinetech/cinetech/pkg/errors"
)

// SentinelDirectorID is the reserved identifier meaning "director
// unknown". It is never backed by a real Director record: the store
// refuses to create or delete it, and the identity allocator starts at 1.
const SentinelDirectorID = 0

// Director represents a film director in the catalog.
type Director struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
	Birthdate   string `json:"birthdate,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// clone returns a deep copy of the director.
func (d *Director) clone() *Director {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// validate checks field-level constraints.
func (d *Director) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewValidationError("name", d.Name, "name must not be empty")
	}
	return nil
}
