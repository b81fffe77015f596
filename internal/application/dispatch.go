package application

import (
	"fmt"

	"github.com/bnema/ftrack/internal/domain"
)

type workoutFactory func(data []float64) (domain.Workout, error)

var workoutFactories = map[string]workoutFactory{
	"SWM": newSwimming,
	"RUN": newRunning,
	"WLK": newSportsWalking,
}

// NewWorkout constructs the workout kind a sensor package announces via its
// type code, binding the positional data values to that kind's parameters.
func NewWorkout(pkg domain.SensorPackage) (domain.Workout, error) {
	factory, ok := workoutFactories[pkg.WorkoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedWorkoutType, pkg.WorkoutType)
	}

	return factory(pkg.Data)
}

func newRunning(data []float64) (domain.Workout, error) {
	if len(data) != 3 {
		return nil, fmt.Errorf("running package: want 3 values, got %d", len(data))
	}

	return domain.NewRunning(int(data[0]), data[1], data[2]), nil
}

func newSportsWalking(data []float64) (domain.Workout, error) {
	if len(data) != 4 {
		return nil, fmt.Errorf("sports walking package: want 4 values, got %d", len(data))
	}

	return domain.NewSportsWalking(int(data[0]), data[1], data[2], data[3]), nil
}

func newSwimming(data []float64) (domain.Workout, error) {
	if len(data) != 5 {
		return nil, fmt.Errorf("swimming package: want 5 values, got %d", len(data))
	}

	return domain.NewSwimming(int(data[0]), data[1], data[2], int(data[3]), int(data[4])), nil
}
