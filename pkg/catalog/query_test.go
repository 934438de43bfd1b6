package catalog

import (
	"testing"
	"time"
)

// sampleCatalog loads the built-in dataset into a fresh catalog.
func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := newTestCatalog(t)
	if err := c.LoadSampleData(); err != nil {
		t.Fatalf("LoadSampleData: %v", err)
	}
	return c
}

func titles(films []*Film) []string {
	out := make([]string, len(films))
	for i, f := range films {
		out[i] = f.Title
	}
	return out
}

func TestSearch(t *testing.T) {
	t.Run("LocaleAwareTitleOrder", func(t *testing.T) {
		c := newTestCatalog(t)
		for _, title := range []string{"Beta", "alpha", "Gamma"} {
			seedFilm(t, c, Film{Title: title, Rating: 5})
		}

		got := titles(c.Search("", "", SortTitleAsc))
		want := []string{"alpha", "Beta", "Gamma"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("TermMatchesSingleFilm", func(t *testing.T) {
		c := sampleCatalog(t)
		got := c.Search("incep", "", SortTitleAsc)
		if len(got) != 1 || got[0].Title != "Inception" {
			t.Fatalf("expected exactly Inception, got %v", titles(got))
		}
	})

	t.Run("TermMatchesDirectorName", func(t *testing.T) {
		c := sampleCatalog(t)
		got := c.Search("nolan", "", SortTitleAsc)
		if len(got) != 1 || got[0].Title != "Inception" {
			t.Fatalf("expected Inception via director match, got %v", titles(got))
		}
	})

	t.Run("TermMatchesYear", func(t *testing.T) {
		c := sampleCatalog(t)
		got := c.Search("1994", "", SortTitleAsc)
		if len(got) != 1 || got[0].Title != "Pulp Fiction" {
			t.Fatalf("expected Pulp Fiction via year match, got %v", titles(got))
		}
	})

	t.Run("GenreFilterIsExact", func(t *testing.T) {
		c := sampleCatalog(t)
		got := c.Search("", "Science-fiction", SortYearAsc)
		if want := []string{"Avatar", "Inception"}; len(got) != 2 ||
			got[0].Title != want[0] || got[1].Title != want[1] {
			t.Fatalf("expected %v, got %v", want, titles(got))
		}
	})

	t.Run("EmptyTermMatchesEverything", func(t *testing.T) {
		c := sampleCatalog(t)
		if got := c.Search("", "", ""); len(got) != 5 {
			t.Fatalf("expected all 5 films, got %d", len(got))
		}
	})

	t.Run("RatingSortDescending", func(t *testing.T) {
		c := sampleCatalog(t)
		got := c.Search("", "", SortRatingDesc)
		if got[0].Title != "Pulp Fiction" || got[len(got)-1].Title != "Avatar" {
			t.Fatalf("unexpected rating order: %v", titles(got))
		}
	})

	t.Run("UnknownSortKeyPreservesOrder", func(t *testing.T) {
		c := sampleCatalog(t)
		got := c.Search("", "", "surprise-me")
		want := []string{"Inception", "Pulp Fiction", "Jurassic Park", "The Departed", "Avatar"}
		for i := range want {
			if got[i].Title != want[i] {
				t.Fatalf("expected input order %v, got %v", want, titles(got))
			}
		}
	})

	t.Run("DoesNotMutateStore", func(t *testing.T) {
		c := sampleCatalog(t)
		c.Search("", "", SortRatingDesc)
		if c.Films()[0].Title != "Inception" {
			t.Error("search reordered the underlying collection")
		}
	})
}

func TestRecentFilms(t *testing.T) {
	c := sampleCatalog(t)

	got := c.RecentFilms(3)
	want := []string{"Avatar", "The Departed", "Jurassic Park"}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("expected %v, got %v", want, titles(got))
		}
	}

	t.Run("MissingCreatedAtSortsOldest", func(t *testing.T) {
		c := newTestCatalog(t)
		if err := c.ReplaceAll(&Snapshot{
			Films: []*Film{
				{ID: 1, Title: "Undated", Rating: 5},
				{ID: 2, Title: "Dated", Rating: 5, CreatedAt: sampleTime(2024, time.May, 1, 0, 0)},
			},
			Directors: []*Director{},
		}); err != nil {
			t.Fatalf("ReplaceAll: %v", err)
		}

		got := c.RecentFilms(2)
		if got[0].Title != "Dated" || got[1].Title != "Undated" {
			t.Fatalf("expected dated film first, got %v", titles(got))
		}
	})
}

func TestDirectorStats(t *testing.T) {
	c := sampleCatalog(t)
	seedFilm(t, c, Film{Title: "Interstellar", DirectorID: 1, Year: 2014, Genre: "Science-fiction", Rating: 8.7})

	stats, ok := c.DirectorStats(1)
	if !ok {
		t.Fatal("expected stats for director 1")
	}
	if stats.FilmCount != 2 {
		t.Errorf("expected 2 films, got %d", stats.FilmCount)
	}
	// (8.8 + 8.7) / 2 rounded to one decimal.
	if stats.AverageRating != 8.8 {
		t.Errorf("expected average 8.8, got %v", stats.AverageRating)
	}

	t.Run("NoFilms", func(t *testing.T) {
		d := seedDirector(t, c, "Newcomer")
		if _, ok := c.DirectorStats(d.ID); ok {
			t.Error("expected not-applicable stats for director without films")
		}
	})
}

func TestAggregateByDirector(t *testing.T) {
	c := sampleCatalog(t)
	seedFilm(t, c, Film{Title: "Dunkirk", DirectorID: 1, Year: 2017, Genre: "War", Rating: 7.8})
	seedFilm(t, c, Film{Title: "Mystery Reel", DirectorID: SentinelDirectorID, Rating: 6.0})

	entries := c.AggregateByDirector(3)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "Christopher Nolan" || entries[0].Count != 2 {
		t.Errorf("expected Nolan on top with 2 films, got %+v", entries[0])
	}

	t.Run("MissingDirectorLabel", func(t *testing.T) {
		all := c.AggregateByDirector(-1)
		found := false
		for _, e := range all {
			if e.DirectorID == SentinelDirectorID {
				found = true
				if e.Name != "Director #0" {
					t.Errorf("expected synthesized label, got %q", e.Name)
				}
			}
		}
		if !found {
			t.Error("expected an entry for the sentinel director")
		}
	})
}

func TestAggregateByYear(t *testing.T) {
	c := sampleCatalog(t)
	entries := c.AggregateByYear()

	if entries[0].Year != 1993 || entries[len(entries)-1].Year != 2010 {
		t.Errorf("expected ascending years 1993..2010, got %+v", entries)
	}
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	if total != 5 {
		t.Errorf("expected year counts to sum to 5, got %d", total)
	}
}

func TestAggregateByGenre(t *testing.T) {
	c := sampleCatalog(t)
	entries := c.AggregateByGenre()

	// First-occurrence order of the sample data.
	want := []string{"Science-fiction", "Thriller", "Adventure"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d genres, got %d", len(want), len(entries))
	}
	for i, genre := range want {
		if entries[i].Genre != genre {
			t.Fatalf("expected genre order %v, got %+v", want, entries)
		}
	}
	if entries[0].Count != 2 {
		t.Errorf("expected 2 science-fiction films, got %d", entries[0].Count)
	}
}

func TestRatingHistogram(t *testing.T) {
	c := newTestCatalog(t)
	ratings := []float64{0, 1.9, 2, 5.9, 6, 7.9, 8, 10}
	for _, r := range ratings {
		seedFilm(t, c, Film{Title: "Rated", Rating: r})
	}

	buckets := c.RatingHistogram()

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != len(ratings) {
		t.Errorf("expected buckets to sum to %d, got %d", len(ratings), total)
	}

	want := []int{2, 1, 1, 2, 2}
	for i, count := range want {
		if buckets[i].Count != count {
			t.Errorf("bucket %s: expected %d, got %d", buckets[i].Label, count, buckets[i].Count)
		}
	}

	t.Run("BoundaryEightIsTopBucket", func(t *testing.T) {
		c := newTestCatalog(t)
		seedFilm(t, c, Film{Title: "Eight", Rating: 8.0})
		buckets := c.RatingHistogram()
		if buckets[3].Count != 0 || buckets[4].Count != 1 {
			t.Errorf("expected 8.0 in [8,10], got %+v", buckets)
		}
	})
}

func TestMonthlyAdditions(t *testing.T) {
	c := sampleCatalog(t)
	months := c.MonthlyAdditions()

	// Sample data: Jan, Feb, two in Mar, Apr.
	want := [12]int{1, 1, 2, 1}
	if months != want {
		t.Errorf("expected %v, got %v", want, months)
	}

	t.Run("MissingCreatedAtCountsAsNow", func(t *testing.T) {
		now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
		c := newTestCatalog(t, WithClock(testClock(now)))
		if err := c.ReplaceAll(&Snapshot{
			Films:     []*Film{{ID: 1, Title: "Undated", Rating: 5}},
			Directors: []*Director{},
		}); err != nil {
			t.Fatalf("ReplaceAll: %v", err)
		}

		months := c.MonthlyAdditions()
		if months[int(time.June)-1] != 1 {
			t.Errorf("expected undated film counted in June, got %v", months)
		}
	})
}

func TestOverview(t *testing.T) {
	c := sampleCatalog(t)
	ov := c.Overview()

	if ov.FilmCount != 5 || ov.DirectorCount != 5 {
		t.Errorf("unexpected counts: %+v", ov)
	}
	if ov.OldestYear != 1993 || ov.NewestYear != 2010 {
		t.Errorf("unexpected year range: %+v", ov)
	}
	if ov.GenreCount != 3 {
		t.Errorf("expected 3 genres, got %d", ov.GenreCount)
	}
	// (8.8+8.9+8.2+8.5+7.9)/5 = 8.46, rounded to 8.5.
	if ov.AverageRating != 8.5 {
		t.Errorf("expected average rating 8.5, got %v", ov.AverageRating)
	}
	if ov.TotalDuration != 148+154+127+151+162 {
		t.Errorf("unexpected total duration %d", ov.TotalDuration)
	}

	t.Run("Empty", func(t *testing.T) {
		c := newTestCatalog(t)
		ov := c.Overview()
		if ov.FilmCount != 0 || ov.AverageRating != 0 {
			t.Errorf("expected zero overview, got %+v", ov)
		}
	})
}
