package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cinetech/cinetech/pkg/catalog"
	"github.com/cinetech/cinetech/pkg/errors"
)

var directorsCmd = &cobra.Command{
	Use:   "directors",
	Short: "Manage the director collection",
}

var directorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List directors with their film counts and average ratings",
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		directors := cat.Directors()
		if len(directors) == 0 {
			fmt.Println("No directors found.")
			return nil
		}

		rows := make([][]string, 0, len(directors))
		for _, d := range directors {
			films := "0"
			avg := "n/a"
			if stats, ok := cat.DirectorStats(d.ID); ok {
				films = strconv.Itoa(stats.FilmCount)
				avg = fmt.Sprintf("%.1f", stats.AverageRating)
			}
			rows = append(rows, []string{
				strconv.Itoa(d.ID),
				d.Name,
				d.Nationality,
				d.Birthdate,
				films,
				avg,
			})
		}
		printTable(
			[]string{"ID", "Name", "Nationality", "Born", "Films", "Avg rating"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
		)
		return nil
	},
}

var directorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a director",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		director, err := cat.CreateDirector(directorFromFlags(cmd, catalog.Director{}))
		if err != nil {
			return err
		}
		fmt.Printf("Director %q added with ID %d.\n", director.Name, director.ID)
		return nil
	},
}

var directorsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a director; unset flags keep their current values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid director id %q", args[0])
		}

		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		existing, err := cat.Director(id)
		if err != nil {
			return err
		}

		director, err := cat.UpdateDirector(id, directorFromFlags(cmd, *existing))
		if err != nil {
			return err
		}
		fmt.Printf("Director %q updated.\n", director.Name)
		return nil
	},
}

var directorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a director without films",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid director id %q", args[0])
		}

		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		yes, _ := cmd.Flags().GetBool("yes")
		if !confirm("Delete this director? This cannot be undone.", yes) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := cat.DeleteDirector(id); err != nil {
			var conflict *errors.ConflictError
			if errors.As(err, &conflict) {
				return fmt.Errorf("director %d still has %d film(s); delete or reassign them first",
					id, conflict.Dependents)
			}
			return err
		}
		fmt.Println("Director deleted.")
		return nil
	},
}

func directorFromFlags(cmd *cobra.Command, base catalog.Director) catalog.Director {
	flags := cmd.Flags()
	if flags.Changed("name") {
		base.Name, _ = flags.GetString("name")
	}
	if flags.Changed("nationality") {
		base.Nationality, _ = flags.GetString("nationality")
	}
	if flags.Changed("birthdate") {
		base.Birthdate, _ = flags.GetString("birthdate")
	}
	if flags.Changed("bio") {
		base.Bio, _ = flags.GetString("bio")
	}
	return base
}

func addDirectorFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "director name")
	cmd.Flags().String("nationality", "", "nationality")
	cmd.Flags().String("birthdate", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().String("bio", "", "short biography")
}

func init() {
	addDirectorFlags(directorsAddCmd)
	addDirectorFlags(directorsUpdateCmd)
	directorsDeleteCmd.Flags().Bool("yes", false, "skip confirmation")

	directorsCmd.AddCommand(directorsListCmd, directorsAddCmd, directorsUpdateCmd, directorsDeleteCmd)
	rootCmd.AddCommand(directorsCmd)
}
