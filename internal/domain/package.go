package domain

// SensorPackage is one raw reading batch from the sensor unit: a workout
// type code plus positional values whose meaning depends on the code.
type SensorPackage struct {
	WorkoutType string
	Data        []float64
}
