package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ft",
		Short:         "Fitness tracker CLI (ft): turn sensor packages into workout summaries",
		Long:          "ft (fitness tracker CLI) converts raw workout sensor packages (step or stroke counts, duration, weight, kind-specific parameters) into distance, mean speed and calorie summaries for running, sports walking and swimming.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProcessCmd(app),
		newReportCmd(app),
		newRecordCmd(app),
	)

	return rootCmd
}
