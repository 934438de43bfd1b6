package catalog

import (
	"github.com/cinetech/cinetech/pkg/errors"
)

// Director returns the director with the given id.
func (c *Catalog) Director(id int) (*Director, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.directorIndexLocked(id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("director", id)
	}
	return c.directors[idx].clone(), nil
}

// CreateDirector validates data, allocates an identifier, and appends the
// director. The ID field of data is ignored; the allocator never hands out
// the reserved sentinel id 0.
func (c *Catalog) CreateDirector(data Director) (*Director, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := data.validate(); err != nil {
		return nil, err
	}

	director := data.clone()
	director.ID = c.allocateDirectorIDLocked()

	c.directors = append(c.directors, director)
	c.persistLocked()

	c.logger.Debug().Int("id", director.ID).Str("name", director.Name).Msg("Director created")
	return director.clone(), nil
}

// UpdateDirector replaces all fields of the director except ID.
func (c *Catalog) UpdateDirector(id int, data Director) (*Director, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.directorIndexLocked(id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("director", id)
	}

	if err := data.validate(); err != nil {
		return nil, err
	}

	director := data.clone()
	director.ID = c.directors[idx].ID

	c.directors[idx] = director
	c.persistLocked()

	c.logger.Debug().Int("id", director.ID).Str("name", director.Name).Msg("Director updated")
	return director.clone(), nil
}

// DeleteDirector removes the director with the given id. The delete is
// rejected with a ConflictError carrying the dependent film count when any
// film still references the director; referential integrity is enforced by
// rejection, never by cascading.
func (c *Catalog) DeleteDirector(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == SentinelDirectorID {
		return errors.NewValidationError("id", id, "director id 0 is reserved")
	}

	idx := c.directorIndexLocked(id)
	if idx < 0 {
		return errors.NewNotFoundError("director", id)
	}

	if dependents := c.dependentFilmsLocked(id); dependents > 0 {
		return errors.NewConflictError("director", id, dependents)
	}

	c.directors = append(c.directors[:idx], c.directors[idx+1:]...)
	c.persistLocked()

	c.logger.Debug().Int("id", id).Msg("Director deleted")
	return nil
}

// DependentFilms returns the number of films referencing the director.
func (c *Catalog) DependentFilms(id int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dependentFilmsLocked(id)
}

// directorIndexLocked returns the slice index of the director with the
// given id, or -1 when absent.
func (c *Catalog) directorIndexLocked(id int) int {
	for i, d := range c.directors {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// directorByNameLocked returns the first director whose name matches
// exactly (case-sensitive), or nil.
func (c *Catalog) directorByNameLocked(name string) *Director {
	for _, d := range c.directors {
		if d.Name == name {
			return d
		}
	}
	return nil
}

func (c *Catalog) dependentFilmsLocked(id int) int {
	count := 0
	for _, f := range c.films {
		if f.DirectorID == id {
			count++
		}
	}
	return count
}
