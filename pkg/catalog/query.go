package catalog

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by Search. An unrecognized key leaves the input
// order unchanged.
const (
	SortTitleAsc   = "title-asc"
	SortTitleDesc  = "title-desc"
	SortYearAsc    = "year-asc"
	SortYearDesc   = "year-desc"
	SortRatingAsc  = "rating-asc"
	SortRatingDesc = "rating-desc"
)

// collationLanguage drives locale-aware title comparison. Collation at
// the default strength orders base letters before case, so "alpha" sorts
// before "Beta" for any Latin-script locale.
var collationLanguage = language.French

// Search filters the film collection and sorts the result.
//
// term matches case-insensitively as a substring against the film title,
// its director's name, the stringified year, and the genre; an empty term
// matches everything. genreFilter restricts to an exact genre match when
// non-empty. Title sorts use locale-aware collation; year and rating
// sorts are numeric. Sorting is stable and the store is never mutated.
func (c *Catalog) Search(term, genreFilter, sortKey string) []*Film {
	c.mu.RLock()
	term = strings.ToLower(term)

	matched := make([]*Film, 0, len(c.films))
	for _, f := range c.films {
		if genreFilter != "" && f.Genre != genreFilter {
			continue
		}
		if term != "" && !c.matchesTermLocked(f, term) {
			continue
		}
		matched = append(matched, f.clone())
	}
	c.mu.RUnlock()

	sortFilms(matched, sortKey)
	return matched
}

// matchesTermLocked reports whether the lowercased term occurs in any of
// the film's searchable fields.
func (c *Catalog) matchesTermLocked(f *Film, term string) bool {
	if strings.Contains(strings.ToLower(f.Title), term) {
		return true
	}
	if idx := c.directorIndexLocked(f.DirectorID); idx >= 0 {
		if strings.Contains(strings.ToLower(c.directors[idx].Name), term) {
			return true
		}
	}
	if strings.Contains(strconv.Itoa(f.Year), term) {
		return true
	}
	return strings.Contains(strings.ToLower(f.Genre), term)
}

func sortFilms(films []*Film, sortKey string) {
	switch sortKey {
	case SortTitleAsc, SortTitleDesc:
		coll := collate.New(collationLanguage)
		sort.SliceStable(films, func(i, j int) bool {
			if sortKey == SortTitleDesc {
				i, j = j, i
			}
			return coll.CompareString(films[i].Title, films[j].Title) < 0
		})
	case SortYearAsc:
		sort.SliceStable(films, func(i, j int) bool { return films[i].Year < films[j].Year })
	case SortYearDesc:
		sort.SliceStable(films, func(i, j int) bool { return films[i].Year > films[j].Year })
	case SortRatingAsc:
		sort.SliceStable(films, func(i, j int) bool { return films[i].Rating < films[j].Rating })
	case SortRatingDesc:
		sort.SliceStable(films, func(i, j int) bool { return films[i].Rating > films[j].Rating })
	}
}

// RecentFilms returns the n films with the most recent creation time,
// descending. Ties keep the original collection order; films without a
// creation time sort as oldest.
func (c *Catalog) RecentFilms(n int) []*Film {
	c.mu.RLock()
	films := cloneFilms(c.films)
	c.mu.RUnlock()

	sort.SliceStable(films, func(i, j int) bool {
		return films[i].CreatedAt.After(films[j].CreatedAt)
	})
	if n >= 0 && n < len(films) {
		films = films[:n]
	}
	return films
}

// DirectorStats holds per-director aggregate figures.
type DirectorStats struct {
	FilmCount     int
	AverageRating float64 // arithmetic mean, rounded to one decimal
}

// DirectorStats returns the film count and mean rating for a director.
// The boolean reports whether the director has any films; when false the
// average is not applicable.
func (c *Catalog) DirectorStats(directorID int) (DirectorStats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	sum := 0.0
	for _, f := range c.films {
		if f.DirectorID == directorID {
			count++
			sum += f.Rating
		}
	}
	if count == 0 {
		return DirectorStats{}, false
	}
	return DirectorStats{
		FilmCount:     count,
		AverageRating: roundOneDecimal(sum / float64(count)),
	}, true
}

// DirectorCount is one entry of the films-per-director aggregate.
type DirectorCount struct {
	DirectorID int
	Name       string
	Count      int
}

// AggregateByDirector groups films by director, resolves display names,
// and returns the topN directors by film count, descending. A missing
// director record, including the sentinel, gets a synthesized
// "Director #<id>" label.
func (c *Catalog) AggregateByDirector(topN int) []DirectorCount {
	c.mu.RLock()

	counts := make(map[int]int)
	order := make([]int, 0)
	for _, f := range c.films {
		if _, seen := counts[f.DirectorID]; !seen {
			order = append(order, f.DirectorID)
		}
		counts[f.DirectorID]++
	}

	entries := make([]DirectorCount, 0, len(order))
	for _, id := range order {
		name := fmt.Sprintf("Director #%d", id)
		if idx := c.directorIndexLocked(id); idx >= 0 {
			name = c.directors[idx].Name
		}
		entries = append(entries, DirectorCount{DirectorID: id, Name: name, Count: counts[id]})
	}
	c.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	if topN >= 0 && topN < len(entries) {
		entries = entries[:topN]
	}
	return entries
}

// YearCount is one entry of the films-per-year aggregate.
type YearCount struct {
	Year  int
	Count int
}

// AggregateByYear groups films by year, ascending.
func (c *Catalog) AggregateByYear() []YearCount {
	c.mu.RLock()
	counts := make(map[int]int)
	for _, f := range c.films {
		counts[f.Year]++
	}
	c.mu.RUnlock()

	entries := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		entries = append(entries, YearCount{Year: year, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Year < entries[j].Year })
	return entries
}

// GenreCount is one entry of the films-per-genre aggregate.
type GenreCount struct {
	Genre string
	Count int
}

// AggregateByGenre groups films by genre in first-occurrence order.
func (c *Catalog) AggregateByGenre() []GenreCount {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, f := range c.films {
		if _, seen := counts[f.Genre]; !seen {
			order = append(order, f.Genre)
		}
		counts[f.Genre]++
	}

	entries := make([]GenreCount, 0, len(order))
	for _, genre := range order {
		entries = append(entries, GenreCount{Genre: genre, Count: counts[genre]})
	}
	return entries
}

// RatingBucket is one bucket of the rating histogram.
type RatingBucket struct {
	Label string
	Count int
}

// RatingHistogram distributes films over five fixed rating buckets with
// half-open lower bounds; the final bucket is closed at both ends so a
// film rated exactly 10 is counted. A film rated exactly 8.0 falls in the
// top bucket.
func (c *Catalog) RatingHistogram() []RatingBucket {
	buckets := []RatingBucket{
		{Label: "0-2"},
		{Label: "2-4"},
		{Label: "4-6"},
		{Label: "6-8"},
		{Label: "8-10"},
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, f := range c.films {
		switch r := f.Rating; {
		case r < 2:
			buckets[0].Count++
		case r < 4:
			buckets[1].Count++
		case r < 6:
			buckets[2].Count++
		case r < 8:
			buckets[3].Count++
		case r <= 10:
			buckets[4].Count++
		}
	}
	return buckets
}

// MonthlyAdditions counts films per calendar month of their creation
// time, ignoring the year. For this aggregate only, a film without a
// creation time counts as added now.
func (c *Catalog) MonthlyAdditions() [12]int {
	var months [12]int

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, f := range c.films {
		created := f.CreatedAt.Time
		if created.IsZero() {
			created = c.now().Time
		}
		months[int(created.Month())-1]++
	}
	return months
}

// Overview holds the dashboard totals computed from the current
// collections.
type Overview struct {
	FilmCount       int
	DirectorCount   int
	AverageRating   float64 // rounded to one decimal
	TotalDuration   int     // minutes
	AverageDuration int     // minutes, rounded
	OldestYear      int
	NewestYear      int
	GenreCount      int
}

// Overview computes the dashboard totals. Year and average fields are
// zero when the catalog holds no films.
func (c *Catalog) Overview() Overview {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ov := Overview{
		FilmCount:     len(c.films),
		DirectorCount: len(c.directors),
	}
	if len(c.films) == 0 {
		return ov
	}

	ratingSum := 0.0
	genres := make(map[string]struct{})
	ov.OldestYear = c.films[0].Year
	ov.NewestYear = c.films[0].Year
	for _, f := range c.films {
		ratingSum += f.Rating
		ov.TotalDuration += f.Duration
		genres[f.Genre] = struct{}{}
		if f.Year < ov.OldestYear {
			ov.OldestYear = f.Year
		}
		if f.Year > ov.NewestYear {
			ov.NewestYear = f.Year
		}
	}
	ov.AverageRating = roundOneDecimal(ratingSum / float64(len(c.films)))
	ov.AverageDuration = int(math.Round(float64(ov.TotalDuration) / float64(len(c.films))))
	ov.GenreCount = len(genres)
	return ov
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
