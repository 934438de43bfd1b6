// Package catalog provides the cinetech catalog engine: two record
// collections (films and directors) with CRUD operations, referential
// integrity, identity allocation, a query engine for filtering and
// aggregate statistics, and a snapshot codec for portable JSON backups.
//
// The catalog exclusively owns its collections. Callers mutate state only
// through store operations, which validate input, enforce invariants, and
// persist both collections through the configured storage sink. Reads
// return defensive copies.
//
// Example usage:
//
//	sink, err := file.New(dataDir)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cat := catalog.New(catalog.WithSink(sink))
//
//	film, err := cat.CreateFilm(catalog.Film{
//	    Title:      "Inception",
//	    DirectorID: 1,
//	    Year:       2010,
//	    Genre:      "Science-fiction",
//	    Duration:   148,
//	    Rating:     8.8,
//	})
package catalog

import (
	"encoding/json"
	"sync"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/cinetech/cinetech/pkg/constants"
	"github.com/cinetech/cinetech/pkg/logging"
	"github.com/cinetech/cinetech/pkg/storage"
)

// Catalog is the catalog store. The zero-value collections are empty; use
// New to construct a catalog and load any previously persisted state.
type Catalog struct {
	mu        sync.RWMutex
	films     []*Film
	directors []*Director

	// High-water marks for identity allocation; ids are never reused.
	lastFilmID     int
	lastDirectorID int

	sink   storage.Sink
	logger *zerolog.Logger
	now    func() utc.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithSink sets the persistence sink. Both collections are loaded from the
// sink at construction and saved back after every successful mutation.
// Without a sink the catalog is memory-only.
func WithSink(sink storage.Sink) Option {
	return func(c *Catalog) {
		c.sink = sink
	}
}

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source used for CreatedAt and ExportedAt
// timestamps. Intended for tests.
func WithClock(now func() utc.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a catalog and, when a sink is configured, restores both
// collections from it. Absent or malformed persisted values load as empty
// collections rather than failing.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		logger: logging.Default(),
		now:    utc.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.load()
	return c
}

// Films returns a copy of the film collection in insertion order.
func (c *Catalog) Films() []*Film {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneFilms(c.films)
}

// Directors returns a copy of the director collection in insertion order.
func (c *Catalog) Directors() []*Director {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneDirectors(c.directors)
}

// Len returns the number of films and directors.
func (c *Catalog) Len() (films, directors int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.films), len(c.directors)
}

// Clear empties both collections unconditionally.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.films = nil
	c.directors = nil
	c.resetIDMarksLocked()
	c.persistLocked()
}

// load restores both collections from the sink. A missing or unreadable
// value yields an empty collection; the catalog never fails to start over
// bad persisted state.
func (c *Catalog) load() {
	if c.sink == nil {
		return
	}
	c.films = loadCollection[Film](c, constants.FilmsKey)
	c.directors = loadCollection[Director](c, constants.DirectorsKey)
	c.resetIDMarksLocked()
}

func loadCollection[T any](c *Catalog, key string) []*T {
	data, ok, err := c.sink.Load(key)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Failed to load collection, starting empty")
		return nil
	}
	if !ok {
		return nil
	}
	var records []*T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Malformed persisted collection, starting empty")
		return nil
	}
	return records
}

// persistLocked saves both collections through the sink. It must be called
// with the write lock held, after the mutation has been applied. Sink
// failures are logged rather than rolled back: the in-memory catalog is
// the source of truth and a later successful mutation rewrites both keys.
func (c *Catalog) persistLocked() {
	if c.sink == nil {
		return
	}
	c.saveCollection(constants.FilmsKey, c.films)
	c.saveCollection(constants.DirectorsKey, c.directors)
}

func (c *Catalog) saveCollection(key string, records any) {
	data, err := json.Marshal(records)
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("Failed to serialize collection")
		return
	}
	if data == nil || string(data) == "null" {
		data = []byte("[]")
	}
	if err := c.sink.Save(key, data); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("Failed to persist collection")
	}
}

func cloneFilms(films []*Film) []*Film {
	out := make([]*Film, len(films))
	for i, f := range films {
		out[i] = f.clone()
	}
	return out
}

func cloneDirectors(directors []*Director) []*Director {
	out := make([]*Director, len(directors))
	for i, d := range directors {
		out[i] = d.clone()
	}
	return out
}
