package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/ftrack/internal/application"
	"github.com/spf13/cobra"
)

func newProcessCmd(app *app) *cobra.Command {
	var inputPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Convert sensor packages into workout summary lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := app.newSource(inputPath)
			if err != nil {
				return err
			}

			service := application.NewService(source)
			summaries, processErr := service.Summaries(cmd.Context())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(summaries); err != nil {
					return err
				}
				return processErr
			}

			for _, summary := range summaries {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), app.renderLine(summary)); err != nil {
					return err
				}
			}

			return processErr
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to a TOML packages file (defaults to the built-in samples)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print summaries as JSON")

	return cmd
}
