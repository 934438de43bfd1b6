package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinetech/cinetech/pkg/catalog"
	"github.com/cinetech/cinetech/pkg/errors"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the catalog from a snapshot file",
	Long: `Import parses a JSON snapshot, reports what it is about to replace,
and only commits after confirmation. A snapshot that fails validation
leaves the current catalog untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.WrapIO("read", args[0], err)
		}

		snap, err := catalog.ParseSnapshot(data)
		if err != nil {
			return err
		}

		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		films, directors := cat.Len()
		yes, _ := cmd.Flags().GetBool("yes")
		message := fmt.Sprintf(
			"Replace the current %d film(s) and %d director(s) with %d film(s) and %d director(s)?",
			films, directors, len(snap.Films), len(snap.Directors))
		if !confirm(message, yes) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := cat.ReplaceAll(snap); err != nil {
			return err
		}
		fmt.Printf("Imported %d film(s) and %d director(s).\n", len(snap.Films), len(snap.Directors))
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("yes", false, "skip confirmation")
	rootCmd.AddCommand(importCmd)
}
