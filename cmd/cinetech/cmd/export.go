package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/cinetech/cinetech/pkg/constants"
	"github.com/cinetech/cinetech/pkg/errors"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a snapshot file",
	Long: `Export writes a structurally complete copy of both collections to a
portable snapshot. JSON snapshots round-trip through the import command;
YAML output is for human inspection.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, closer, err := openCatalog()
		if err != nil {
			return err
		}
		defer closer()

		snap := cat.Export()

		format, _ := cmd.Flags().GetString("format")
		var data []byte
		switch format {
		case "json":
			data, err = json.MarshalIndent(snap, "", "  ")
		case "yaml":
			data, err = yaml.Marshal(snap)
		default:
			return errors.NewValidationError("format", format, "must be json or yaml")
		}
		if err != nil {
			return errors.WrapParse(format, "snapshot", err)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = fmt.Sprintf("cinetech-backup-%s.%s", time.Now().Format("2006-01-02"), format)
		}
		if output == "-" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(output, data, constants.FilePermissions); err != nil {
			return errors.WrapIO("write", output, err)
		}
		fmt.Printf("Exported %d film(s) and %d director(s) to %s.\n",
			len(snap.Films), len(snap.Directors), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file (default cinetech-backup-<date>.<format>, - for stdout)")
	exportCmd.Flags().String("format", "json", "output format: json or yaml")
	rootCmd.AddCommand(exportCmd)
}
