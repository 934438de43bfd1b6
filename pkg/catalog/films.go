package catalog

import (
	"github.com/cinetech/cinetech/pkg/constants"
	"github.com/cinetech/cinetech/pkg/errors"
)

// Film returns the film with the given id.
func (c *Catalog) Film(id int) (*Film, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, f := range c.films {
		if f.ID == id {
			return f.clone(), nil
		}
	}
	return nil, errors.NewNotFoundError("film", id)
}

// CreateFilm validates data, allocates an identifier, stamps the creation
// time, and appends the film. The ID and CreatedAt fields of data are
// ignored. An empty poster defaults to the placeholder URI.
func (c *Catalog) CreateFilm(data Film) (*Film, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validateFilmLocked(&data); err != nil {
		return nil, err
	}

	film := data.clone()
	film.ID = c.allocateFilmIDLocked()
	film.CreatedAt = c.now()
	if film.Poster == "" {
		film.Poster = constants.PlaceholderPoster
	}

	c.films = append(c.films, film)
	c.persistLocked()

	c.logger.Debug().Int("id", film.ID).Str("title", film.Title).Msg("Film created")
	return film.clone(), nil
}

// UpdateFilm replaces all fields of the film except ID and CreatedAt,
// which are carried over from the existing record. The replacement is
// re-validated like a create.
func (c *Catalog) UpdateFilm(id int, data Film) (*Film, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.filmIndexLocked(id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("film", id)
	}

	if err := c.validateFilmLocked(&data); err != nil {
		return nil, err
	}

	film := data.clone()
	film.ID = c.films[idx].ID
	film.CreatedAt = c.films[idx].CreatedAt
	if film.Poster == "" {
		film.Poster = constants.PlaceholderPoster
	}

	c.films[idx] = film
	c.persistLocked()

	c.logger.Debug().Int("id", film.ID).Str("title", film.Title).Msg("Film updated")
	return film.clone(), nil
}

// DeleteFilm removes the film with the given id. Films have no dependents,
// so deletion is unconditional once the record is found.
func (c *Catalog) DeleteFilm(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.filmIndexLocked(id)
	if idx < 0 {
		return errors.NewNotFoundError("film", id)
	}

	c.films = append(c.films[:idx], c.films[idx+1:]...)
	c.persistLocked()

	c.logger.Debug().Int("id", id).Msg("Film deleted")
	return nil
}

// DeleteFilms removes every present id and silently ignores absent ones.
// It returns the count actually removed. The whole removal is a single
// observable step: readers never see a partially applied bulk delete.
func (c *Catalog) DeleteFilms(ids []int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	doomed := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	kept := c.films[:0]
	removed := 0
	for _, f := range c.films {
		if _, ok := doomed[f.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	c.films = kept

	if removed > 0 {
		c.persistLocked()
		c.logger.Debug().Int("removed", removed).Msg("Films bulk deleted")
	}
	return removed
}

// filmIndexLocked returns the slice index of the film with the given id,
// or -1 when absent.
func (c *Catalog) filmIndexLocked(id int) int {
	for i, f := range c.films {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// validateFilmLocked runs field-level validation plus the referential
// check that DirectorID is the sentinel or resolves to an existing
// director.
func (c *Catalog) validateFilmLocked(f *Film) error {
	if err := f.validate(); err != nil {
		return err
	}
	if f.DirectorID != SentinelDirectorID && c.directorIndexLocked(f.DirectorID) < 0 {
		return errors.NewValidationError("directorId", f.DirectorID, "director does not exist")
	}
	return nil
}
