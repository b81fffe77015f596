package domain

const (
	runningMeanSpeedMultiplier = 18.0
	runningMeanSpeedShift      = 20.0
)

// Running is a workout recorded as strides.
type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) Running {
	return Running{Training{
		action:   action,
		duration: duration,
		weight:   weight,
		stepLen:  lenStep,
	}}
}

func (Running) Kind() string {
	return "Running"
}

func (r Running) SpentCalories() (float64, error) {
	return (runningMeanSpeedMultiplier*r.MeanSpeed() - runningMeanSpeedShift) *
		r.weight / MInKm * (r.duration * MinInH), nil
}
