package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cinetech/cinetech/pkg/constants"
)

var omdbCmd = &cobra.Command{
	Use:   "omdb",
	Short: "Search the OMDb film-metadata service and import films",
}

var omdbSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search OMDb by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newOMDBClient()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		results, err := client.Search(cmd.Context(), query)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No films found for %q.\n", query)
			return nil
		}
		if len(results) > constants.MaxSearchDetails {
			results = results[:constants.MaxSearchDetails]
		}

		rows := make([][]string, 0, len(results))
		for _, r := range results {
			// Detail lookups flesh out the card; a failed one degrades
			// to the search fields instead of failing the whole query.
			director, genre, rating := "?", "?", "?"
			if record, detailErr := client.Detail(cmd.Context(), r.IMDBID); detailErr == nil {
				director, genre, rating = record.Director, record.Genre, record.IMDBRating
			}
			rows = append(rows, []string{r.IMDBID, r.Title, r.Year, director, genre, rating})
		}
		printTable(
			[]string{"IMDb ID", "Title", "Year", "Director", "Genre", "Rating"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignRight},
		)
		fmt.Println("Import one with: cinetech omdb import <IMDb ID>")
		return nil
	},
}

var omdbImportCmd = &cobra.Command{
	Use:   "import <imdb-id>",
	Short: "Import a film from OMDb into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newOMDBClient()
		if err != nil {
			return err
		}

		// Fetch and normalize fully before touching the catalog, so a
		// service failure leaves local state unchanged.
		record, err := client.Detail(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		film, err := cat.ImportExternalFilm(record.External())
		if err != nil {
			return err
		}
		fmt.Printf("Film %q (%d) imported with ID %d.\n", film.Title, film.Year, film.ID)
		return nil
	},
}

func init() {
	omdbCmd.AddCommand(omdbSearchCmd, omdbImportCmd)
	rootCmd.AddCommand(omdbCmd)
}
