package domain

import "fmt"

// Summary is the derived metrics of one completed workout.
type Summary struct {
	Kind      string
	Duration  float64
	Distance  float64
	MeanSpeed float64
	Calories  float64
}

// Summarize derives the full metric set for a workout.
func Summarize(w Workout) (Summary, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return Summary{}, fmt.Errorf("spent calories for %s: %w", w.Kind(), err)
	}

	return Summary{
		Kind:      w.Kind(),
		Duration:  w.Duration(),
		Distance:  w.Distance(),
		MeanSpeed: w.MeanSpeed(),
		Calories:  calories,
	}, nil
}
