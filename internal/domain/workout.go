package domain

const (
	// MInKm converts meters to kilometers in distance and speed formulas.
	MInKm = 1000.0
	// MinInH converts a duration in hours to minutes.
	MinInH = 60.0

	lenStep         = 0.65
	swimmingLenStep = 1.38
)

// Workout is the capability set shared by every workout kind: derived
// distance, mean speed and calorie expenditure for one sensor package.
type Workout interface {
	Kind() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
}

// Training holds the readings common to all workout kinds and supplies the
// default distance and mean speed formulas. It deliberately has no Kind
// method, so only the concrete kinds embedding it satisfy Workout.
type Training struct {
	action   int
	duration float64
	weight   float64
	stepLen  float64
}

// Duration returns the workout duration in hours.
func (t Training) Duration() float64 {
	return t.duration
}

// Distance returns the distance covered in kilometers, assuming stepLen
// meters per recorded action.
func (t Training) Distance() float64 {
	return float64(t.action) * t.stepLen / MInKm
}

// MeanSpeed returns the average speed in km/h over the full duration.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

// SpentCalories on the bare base always fails: every workout kind supplies
// its own calorie formula.
func (t Training) SpentCalories() (float64, error) {
	return 0, ErrCaloriesNotImplemented
}
