package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cinetech/cinetech/pkg/catalog"
	"github.com/cinetech/cinetech/pkg/constants"
)

// catalogReader is the slice of the query engine the stats views need.
type catalogReader interface {
	RecentFilms(n int) []*catalog.Film
	AggregateByDirector(topN int) []catalog.DirectorCount
	AggregateByYear() []catalog.YearCount
	AggregateByGenre() []catalog.GenreCount
	RatingHistogram() []catalog.RatingBucket
	MonthlyAdditions() [12]int
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		ov := cat.Overview()
		fmt.Printf("Films: %d   Directors: %d\n", ov.FilmCount, ov.DirectorCount)
		if ov.FilmCount == 0 {
			return nil
		}
		fmt.Printf("Average rating: %.1f/10   Average duration: %d min   Total: %d min\n",
			ov.AverageRating, ov.AverageDuration, ov.TotalDuration)
		fmt.Printf("Years: %d-%d   Genres: %d\n\n", ov.OldestYear, ov.NewestYear, ov.GenreCount)

		printRecent(cat)
		printTopDirectors(cat)
		printByYear(cat)
		printByGenre(cat)
		printHistogram(cat)
		printMonthly(cat)
		return nil
	},
}

func printRecent(cat catalogReader) {
	films := cat.RecentFilms(constants.RecentFilmsCount)
	if len(films) == 0 {
		return
	}
	rows := make([][]string, 0, len(films))
	for _, f := range films {
		rows = append(rows, []string{
			f.Title,
			strconv.Itoa(f.Year),
			f.CreatedAt.Format("2006-01-02"),
		})
	}
	fmt.Println("Recently added:")
	printTable([]string{"Title", "Year", "Added"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft})
}

func printTopDirectors(cat catalogReader) {
	entries := cat.AggregateByDirector(constants.TopDirectorsCount)
	if len(entries) == 0 {
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, strconv.Itoa(e.Count)})
	}
	fmt.Println("Top directors:")
	printTable([]string{"Director", "Films"}, rows,
		[]columnAlignment{alignLeft, alignRight})
}

func printByYear(cat catalogReader) {
	entries := cat.AggregateByYear()
	if len(entries) == 0 {
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.Year), strconv.Itoa(e.Count)})
	}
	fmt.Println("Films by year:")
	printTable([]string{"Year", "Films"}, rows,
		[]columnAlignment{alignRight, alignRight})
}

func printByGenre(cat catalogReader) {
	entries := cat.AggregateByGenre()
	if len(entries) == 0 {
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Genre, strconv.Itoa(e.Count)})
	}
	fmt.Println("Films by genre:")
	printTable([]string{"Genre", "Films"}, rows,
		[]columnAlignment{alignLeft, alignRight})
}

func printHistogram(cat catalogReader) {
	buckets := cat.RatingHistogram()
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{b.Label, strconv.Itoa(b.Count)})
	}
	fmt.Println("Rating distribution:")
	printTable([]string{"Rating", "Films"}, rows,
		[]columnAlignment{alignLeft, alignRight})
}

func printMonthly(cat catalogReader) {
	months := cat.MonthlyAdditions()
	rows := make([][]string, 0, len(months))
	for i, count := range months {
		rows = append(rows, []string{
			time.Month(i + 1).String()[:3],
			strconv.Itoa(count),
		})
	}
	fmt.Println("Additions by month:")
	printTable([]string{"Month", "Films"}, rows,
		[]columnAlignment{alignLeft, alignRight})
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
