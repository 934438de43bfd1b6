package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Load the built-in demonstration dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		films, directors := cat.Len()
		yes, _ := cmd.Flags().GetBool("yes")
		if films > 0 || directors > 0 {
			message := fmt.Sprintf(
				"Replace the current %d film(s) and %d director(s) with the sample dataset?",
				films, directors)
			if !confirm(message, yes) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := cat.LoadSampleData(); err != nil {
			return err
		}
		fmt.Println("Sample data loaded.")
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every film and director",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		films, directors := cat.Len()
		yes, _ := cmd.Flags().GetBool("yes")
		message := fmt.Sprintf("Delete all %d film(s) and %d director(s)? This cannot be undone.",
			films, directors)
		if !confirm(message, yes) {
			fmt.Println("Aborted.")
			return nil
		}

		cat.Clear()
		fmt.Println("Catalog cleared.")
		return nil
	},
}

func init() {
	sampleCmd.Flags().Bool("yes", false, "skip confirmation")
	clearCmd.Flags().Bool("yes", false, "skip confirmation")
	rootCmd.AddCommand(sampleCmd, clearCmd)
}
