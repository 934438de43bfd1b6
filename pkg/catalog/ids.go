package catalog

// Identifier allocation draws from per-collection high-water marks rather
// than the live maximum, so an id is never reused once handed out — even
// after the maximum-valued record is deleted. The marks rise on every
// create and import; only wholesale state replacement (load, ReplaceAll,
// Clear) recomputes them from the collections.

// allocateFilmIDLocked hands out the next film identifier.
func (c *Catalog) allocateFilmIDLocked() int {
	c.lastFilmID++
	return c.lastFilmID
}

// allocateDirectorIDLocked hands out the next director identifier. The
// mark starts at zero, so the reserved sentinel id 0 is excluded from the
// allocator's range by construction.
func (c *Catalog) allocateDirectorIDLocked() int {
	c.lastDirectorID++
	return c.lastDirectorID
}

// resetIDMarksLocked rebases both allocation marks on the maximum ids in
// the current collections.
func (c *Catalog) resetIDMarksLocked() {
	c.lastFilmID = 0
	for _, f := range c.films {
		if f.ID > c.lastFilmID {
			c.lastFilmID = f.ID
		}
	}
	c.lastDirectorID = 0
	for _, d := range c.directors {
		if d.ID > c.lastDirectorID {
			c.lastDirectorID = d.ID
		}
	}
}

// NextFilmID reports the identifier the next created film would receive.
func (c *Catalog) NextFilmID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastFilmID + 1
}

// NextDirectorID reports the identifier the next created director would
// receive.
func (c *Catalog) NextDirectorID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastDirectorID + 1
}
