package catalog

import (
	"testing"
	"time"

	"github.com/agentstation/utc"

	"github.com/cinetech/cinetech/pkg/errors"
	"github.com/cinetech/cinetech/pkg/logging"
)

// memSink is an in-memory storage sink for tests.
type memSink struct {
	values map[string][]byte
	saves  int
}

func newMemSink() *memSink {
	return &memSink{values: make(map[string][]byte)}
}

func (s *memSink) Save(key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	s.saves++
	return nil
}

func (s *memSink) Load(key string) ([]byte, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

func testClock(t time.Time) func() utc.Time {
	return func() utc.Time { return utc.Time{Time: t} }
}

func newTestCatalog(t *testing.T, opts ...Option) *Catalog {
	t.Helper()
	nop := logging.Nop
	return New(append([]Option{WithLogger(&nop)}, opts...)...)
}

// seedDirector adds a director and fails the test on error.
func seedDirector(t *testing.T, c *Catalog, name string) *Director {
	t.Helper()
	d, err := c.CreateDirector(Director{Name: name})
	if err != nil {
		t.Fatalf("CreateDirector(%q): %v", name, err)
	}
	return d
}

// seedFilm adds a film and fails the test on error.
func seedFilm(t *testing.T, c *Catalog, film Film) *Film {
	t.Helper()
	f, err := c.CreateFilm(film)
	if err != nil {
		t.Fatalf("CreateFilm(%q): %v", film.Title, err)
	}
	return f
}

func TestCreateFilm(t *testing.T) {
	c := newTestCatalog(t)
	d := seedDirector(t, c, "Christopher Nolan")

	film := seedFilm(t, c, Film{
		Title: "Inception", DirectorID: d.ID, Year: 2010,
		Genre: "Science-fiction", Duration: 148, Rating: 8.8,
	})

	if film.ID != 1 {
		t.Errorf("expected ID 1, got %d", film.ID)
	}
	if film.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
	if film.Poster == "" {
		t.Error("expected placeholder poster for empty poster")
	}

	t.Run("RejectsEmptyTitle", func(t *testing.T) {
		_, err := c.CreateFilm(Film{Title: "  ", DirectorID: d.ID, Rating: 5})
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("RejectsRatingOutOfRange", func(t *testing.T) {
		_, err := c.CreateFilm(Film{Title: "Bad", DirectorID: d.ID, Rating: 10.5})
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("RejectsUnknownDirector", func(t *testing.T) {
		_, err := c.CreateFilm(Film{Title: "Orphan", DirectorID: 99, Rating: 5})
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("AcceptsSentinelDirector", func(t *testing.T) {
		f, err := c.CreateFilm(Film{Title: "Anonymous", DirectorID: SentinelDirectorID, Rating: 5})
		if err != nil {
			t.Fatalf("CreateFilm with sentinel director: %v", err)
		}
		if f.DirectorID != SentinelDirectorID {
			t.Errorf("expected sentinel director id, got %d", f.DirectorID)
		}
	})
}

func TestIdentityMonotonicity(t *testing.T) {
	c := newTestCatalog(t)

	seen := make(map[int]bool)
	lastMax := 0
	for i := 0; i < 5; i++ {
		f := seedFilm(t, c, Film{Title: "Film", Rating: 5})
		if seen[f.ID] {
			t.Fatalf("id %d reused", f.ID)
		}
		if f.ID <= lastMax {
			t.Fatalf("id %d not greater than previous max %d", f.ID, lastMax)
		}
		seen[f.ID] = true
		lastMax = f.ID
	}

	// Deleting the maximum-valued record must not release its id.
	if err := c.DeleteFilm(lastMax); err != nil {
		t.Fatalf("DeleteFilm(%d): %v", lastMax, err)
	}
	f := seedFilm(t, c, Film{Title: "After delete", Rating: 5})
	if f.ID <= lastMax {
		t.Errorf("expected id above %d after deleting the max, got %d", lastMax, f.ID)
	}

	t.Run("Directors", func(t *testing.T) {
		c := newTestCatalog(t)
		first := seedDirector(t, c, "First")
		second := seedDirector(t, c, "Second")
		if err := c.DeleteDirector(second.ID); err != nil {
			t.Fatalf("DeleteDirector(%d): %v", second.ID, err)
		}
		third := seedDirector(t, c, "Third")
		if third.ID <= second.ID {
			t.Errorf("expected id above %d after deleting the max, got %d", second.ID, third.ID)
		}
		if first.ID == third.ID {
			t.Errorf("id %d reused", first.ID)
		}
	})

	// Only live records persist, so a fresh load rebases the allocator on
	// the stored maximum; never-reuse holds within a catalog's lifetime.
	t.Run("ReloadRebasesAllocator", func(t *testing.T) {
		sink := newMemSink()
		c := newTestCatalog(t, WithSink(sink))
		seedFilm(t, c, Film{Title: "One", Rating: 5})
		high := seedFilm(t, c, Film{Title: "Two", Rating: 5})
		if err := c.DeleteFilm(high.ID); err != nil {
			t.Fatalf("DeleteFilm(%d): %v", high.ID, err)
		}

		reloaded := newTestCatalog(t, WithSink(sink))
		if next := reloaded.NextFilmID(); next != high.ID {
			t.Errorf("expected next id %d after reload, got %d", high.ID, next)
		}
	})

	t.Run("SnapshotRebasesAllocator", func(t *testing.T) {
		c := newTestCatalog(t)
		if err := c.ReplaceAll(&Snapshot{
			Films:     []*Film{{ID: 7, Title: "Imported", Rating: 5}},
			Directors: []*Director{{ID: 3, Name: "Imported"}},
		}); err != nil {
			t.Fatalf("ReplaceAll: %v", err)
		}
		if next := c.NextFilmID(); next != 8 {
			t.Errorf("expected next film id 8, got %d", next)
		}
		if next := c.NextDirectorID(); next != 4 {
			t.Errorf("expected next director id 4, got %d", next)
		}
	})
}

func TestUpdateFilmPreservesIdentityAndCreationTime(t *testing.T) {
	created := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	c := newTestCatalog(t, WithClock(testClock(created)))
	d := seedDirector(t, c, "Quentin Tarantino")
	film := seedFilm(t, c, Film{Title: "Pulp Fiction", DirectorID: d.ID, Year: 1994, Rating: 8.9})

	updated, err := c.UpdateFilm(film.ID, Film{
		Title: "Pulp Fiction (Director's Cut)", DirectorID: d.ID, Year: 1994,
		Rating: 9.0, CreatedAt: utc.Time{Time: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("UpdateFilm: %v", err)
	}

	if updated.ID != film.ID {
		t.Errorf("update changed id: %d -> %d", film.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(utc.Time{Time: created}) {
		t.Errorf("update changed CreatedAt: %v -> %v", created, updated.CreatedAt)
	}
	if updated.Rating != 9.0 {
		t.Errorf("expected updated rating 9.0, got %v", updated.Rating)
	}

	t.Run("NotFound", func(t *testing.T) {
		_, err := c.UpdateFilm(999, Film{Title: "Ghost", Rating: 5})
		if !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestDeleteFilms(t *testing.T) {
	c := newTestCatalog(t)
	a := seedFilm(t, c, Film{Title: "A", Rating: 5})
	b := seedFilm(t, c, Film{Title: "B", Rating: 5})

	if removed := c.DeleteFilms([]int{a.ID, 999}); removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}

	// Idempotent per id: repeating with the same arguments is a no-op.
	if removed := c.DeleteFilms([]int{a.ID, 999}); removed != 0 {
		t.Errorf("expected 0 removed on repeat, got %d", removed)
	}

	films := c.Films()
	if len(films) != 1 || films[0].ID != b.ID {
		t.Errorf("unexpected collection after bulk delete: %+v", films)
	}
}

func TestDeleteDirector(t *testing.T) {
	c := newTestCatalog(t)
	busy := seedDirector(t, c, "Steven Spielberg")
	idle := seedDirector(t, c, "Idle Director")
	seedFilm(t, c, Film{Title: "Jurassic Park", DirectorID: busy.ID, Rating: 8.2})
	seedFilm(t, c, Film{Title: "Jaws", DirectorID: busy.ID, Rating: 8.1})

	t.Run("RejectedWithDependentCount", func(t *testing.T) {
		err := c.DeleteDirector(busy.ID)
		var conflict *errors.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if conflict.Dependents != 2 {
			t.Errorf("expected 2 dependents, got %d", conflict.Dependents)
		}
		// The rejected delete must leave the director in place.
		if _, err := c.Director(busy.ID); err != nil {
			t.Errorf("director removed despite conflict: %v", err)
		}
	})

	t.Run("SucceedsWithoutDependents", func(t *testing.T) {
		if err := c.DeleteDirector(idle.ID); err != nil {
			t.Fatalf("DeleteDirector: %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if err := c.DeleteDirector(999); !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("SentinelReserved", func(t *testing.T) {
		if err := c.DeleteDirector(SentinelDirectorID); !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("expected validation error for sentinel, got %v", err)
		}
	})
}

func TestPersistence(t *testing.T) {
	sink := newMemSink()

	c := newTestCatalog(t, WithSink(sink))
	d := seedDirector(t, c, "James Cameron")
	seedFilm(t, c, Film{Title: "Avatar", DirectorID: d.ID, Year: 2009, Rating: 7.9})

	if sink.saves == 0 {
		t.Fatal("expected mutations to persist through the sink")
	}

	t.Run("Reload", func(t *testing.T) {
		reloaded := newTestCatalog(t, WithSink(sink))
		films, directors := reloaded.Len()
		if films != 1 || directors != 1 {
			t.Errorf("expected 1 film and 1 director after reload, got %d/%d", films, directors)
		}
	})

	t.Run("MalformedValueLoadsEmpty", func(t *testing.T) {
		bad := newMemSink()
		bad.values["cinetech.films"] = []byte("{not json")
		c := newTestCatalog(t, WithSink(bad))
		if films, _ := c.Len(); films != 0 {
			t.Errorf("expected empty collection for malformed value, got %d films", films)
		}
	})

	t.Run("AbsentValueLoadsEmpty", func(t *testing.T) {
		c := newTestCatalog(t, WithSink(newMemSink()))
		films, directors := c.Len()
		if films != 0 || directors != 0 {
			t.Errorf("expected empty catalog, got %d/%d", films, directors)
		}
	})
}

func TestClear(t *testing.T) {
	c := newTestCatalog(t)
	seedDirector(t, c, "Someone")
	seedFilm(t, c, Film{Title: "Something", Rating: 5})

	c.Clear()

	films, directors := c.Len()
	if films != 0 || directors != 0 {
		t.Errorf("expected empty catalog after Clear, got %d/%d", films, directors)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	c := newTestCatalog(t)
	seedFilm(t, c, Film{Title: "Original", Rating: 5})

	c.Films()[0].Title = "Mutated"

	film, err := c.Film(1)
	if err != nil {
		t.Fatalf("Film(1): %v", err)
	}
	if film.Title != "Original" {
		t.Error("mutating a returned film leaked into the store")
	}
}
