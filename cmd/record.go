package cmd

import (
	"fmt"

	"github.com/bnema/ftrack/internal/application"
	"github.com/bnema/ftrack/internal/domain"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *app) *cobra.Command {
	var inputPath string
	var workoutType string
	var data []float64

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Append a sensor package to the packages file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.newStore(inputPath)
			if err != nil {
				return err
			}

			service := application.NewServiceWithStore(store)
			pkg := domain.SensorPackage{WorkoutType: workoutType, Data: data}
			if err := service.Record(cmd.Context(), pkg); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s package with %d values\n", workoutType, len(data))
			return err
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to a TOML packages file (defaults to the configured one)")
	cmd.Flags().StringVar(&workoutType, "type", "", "Workout type code (SWM, RUN or WLK)")
	cmd.Flags().Float64SliceVar(&data, "data", nil, "Sensor readings in positional order")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
