package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cinetech/cinetech/pkg/catalog"
)

var filmsCmd = &cobra.Command{
	Use:   "films",
	Short: "Manage the film collection",
}

var filmsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List films with optional search, genre filter, and sort",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		term, _ := cmd.Flags().GetString("search")
		genre, _ := cmd.Flags().GetString("genre")
		sortKey, _ := cmd.Flags().GetString("sort")

		films := cat.Search(term, genre, sortKey)
		if len(films) == 0 {
			fmt.Println("No films found.")
			return nil
		}

		rows := make([][]string, 0, len(films))
		for _, f := range films {
			rows = append(rows, []string{
				strconv.Itoa(f.ID),
				f.Title,
				directorLabel(cat, f.DirectorID),
				strconv.Itoa(f.Year),
				f.Genre,
				fmt.Sprintf("%d min", f.Duration),
				fmt.Sprintf("%.1f", f.Rating),
			})
		}
		printTable(
			[]string{"ID", "Title", "Director", "Year", "Genre", "Duration", "Rating"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight},
		)
		fmt.Printf("%d film(s)\n", len(films))
		return nil
	},
}

var filmsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one film in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid film id %q", args[0])
		}

		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		film, err := cat.Film(id)
		if err != nil {
			return err
		}

		fmt.Printf("Title:     %s\n", film.Title)
		fmt.Printf("Director:  %s\n", directorLabel(cat, film.DirectorID))
		fmt.Printf("Year:      %d\n", film.Year)
		fmt.Printf("Genre:     %s\n", film.Genre)
		fmt.Printf("Duration:  %d min\n", film.Duration)
		fmt.Printf("Rating:    %.1f/10\n", film.Rating)
		fmt.Printf("Poster:    %s\n", film.Poster)
		if film.Synopsis != "" {
			fmt.Printf("Synopsis:  %s\n", film.Synopsis)
		}
		fmt.Printf("Added:     %s\n", film.CreatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

var filmsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a film",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		film, err := cat.CreateFilm(filmFromFlags(cmd, catalog.Film{}))
		if err != nil {
			return err
		}
		fmt.Printf("Film %q added with ID %d.\n", film.Title, film.ID)
		return nil
	},
}

var filmsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a film; unset flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid film id %q", args[0])
		}

		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		existing, err := cat.Film(id)
		if err != nil {
			return err
		}

		film, err := cat.UpdateFilm(id, filmFromFlags(cmd, *existing))
		if err != nil {
			return err
		}
		fmt.Printf("Film %q updated.\n", film.Title)
		return nil
	},
}

var filmsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more films",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int, 0, len(args))
		for _, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid film id %q", arg)
			}
			ids = append(ids, id)
		}

		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		yes, _ := cmd.Flags().GetBool("yes")
		if !confirm(fmt.Sprintf("Delete %d film(s)? This cannot be undone.", len(ids)), yes) {
			fmt.Println("Aborted.")
			return nil
		}

		if len(ids) == 1 {
			if err := cat.DeleteFilm(ids[0]); err != nil {
				return err
			}
			fmt.Println("1 film deleted.")
			return nil
		}

		removed := cat.DeleteFilms(ids)
		fmt.Printf("%d film(s) deleted.\n", removed)
		return nil
	},
}

// filmFromFlags merges the command's film flags over base. Flags the user
// did not set keep the base values, so update keeps unspecified fields.
func filmFromFlags(cmd *cobra.Command, base catalog.Film) catalog.Film {
	flags := cmd.Flags()
	if flags.Changed("title") {
		base.Title, _ = flags.GetString("title")
	}
	if flags.Changed("director-id") {
		base.DirectorID, _ = flags.GetInt("director-id")
	}
	if flags.Changed("year") {
		base.Year, _ = flags.GetInt("year")
	}
	if flags.Changed("genre") {
		base.Genre, _ = flags.GetString("genre")
	}
	if flags.Changed("duration") {
		base.Duration, _ = flags.GetInt("duration")
	}
	if flags.Changed("rating") {
		base.Rating, _ = flags.GetFloat64("rating")
	}
	if flags.Changed("poster") {
		base.Poster, _ = flags.GetString("poster")
	}
	if flags.Changed("synopsis") {
		base.Synopsis, _ = flags.GetString("synopsis")
	}
	return base
}

// directorLabel resolves a director id to a display name, falling back to
// a synthesized label for the sentinel or a missing record.
func directorLabel(cat *catalog.Catalog, id int) string {
	if director, err := cat.Director(id); err == nil {
		return director.Name
	}
	if id == catalog.SentinelDirectorID {
		return "Unknown"
	}
	return fmt.Sprintf("Director #%d", id)
}

func addFilmFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "film title")
	cmd.Flags().Int("director-id", 0, "director id (0 for unknown)")
	cmd.Flags().Int("year", 0, "release year")
	cmd.Flags().String("genre", "", "genre label")
	cmd.Flags().Int("duration", 0, "duration in minutes")
	cmd.Flags().Float64("rating", 0, "rating from 0 to 10")
	cmd.Flags().String("poster", "", "poster URI")
	cmd.Flags().String("synopsis", "", "synopsis")
}

func init() {
	filmsListCmd.Flags().String("search", "", "match title, director, year, or genre")
	filmsListCmd.Flags().String("genre", "", "exact genre filter")
	filmsListCmd.Flags().String("sort", catalog.SortTitleAsc,
		"sort key: title-asc, title-desc, year-asc, year-desc, rating-asc, rating-desc")

	addFilmFlags(filmsAddCmd)
	addFilmFlags(filmsUpdateCmd)
	filmsDeleteCmd.Flags().Bool("yes", false, "skip confirmation")

	filmsCmd.AddCommand(filmsListCmd, filmsShowCmd, filmsAddCmd, filmsUpdateCmd, filmsDeleteCmd)
	rootCmd.AddCommand(filmsCmd)
}
