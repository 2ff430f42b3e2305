package main

import (
	"fmt"

	"github.com/jonathan/career-recommender/internal/schemas"
	"github.com/spf13/cobra"
)

var validateExportCmd = &cobra.Command{
	Use:   "validate-export <file.json>...",
	Short: "Validate JSON exports against the recommendation schema",
	Long:  "Checks that each JSON export has the timestamp, user_input and recommendations layout written by recommend --save. Use --schema to validate against a different schema file.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidateExport,
}

var validateExportSchema string

func init() {
	validateExportCmd.Flags().StringVar(&validateExportSchema, "schema", "", "Path to an alternative JSON Schema file (default: embedded schema)")
	rootCmd.AddCommand(validateExportCmd)
}

func runValidateExport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		var err error
		if validateExportSchema != "" {
			err = schemas.ValidateJSON(validateExportSchema, path)
		} else {
			err = schemas.ValidateExportFile(path)
		}

		if err != nil {
			failed++
			_, _ = fmt.Fprintf(out, "✗ %s\n%v\n", path, err)
			continue
		}
		_, _ = fmt.Fprintf(out, "✓ %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
