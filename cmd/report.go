package cmd

import (
	"fmt"

	summaryadapter "github.com/bnema/ftrack/internal/adapters/render/summary"
	"github.com/bnema/ftrack/internal/application"
	"github.com/spf13/cobra"
)

func newReportCmd(app *app) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a styled report of all workout summaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := app.newSource(inputPath)
			if err != nil {
				return err
			}

			service := application.NewService(source)
			summaries, processErr := service.Summaries(cmd.Context())

			rendered, err := app.renderReport(summaries, summaryadapter.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			return processErr
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to a TOML packages file (defaults to the built-in samples)")

	return cmd
}
