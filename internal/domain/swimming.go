package domain

const (
	swimmingMeanSpeedShift   = 1.1
	swimmingWeightMultiplier = 2.0
)

// Swimming is a workout recorded as strokes in a pool of known length. It
// derives mean speed from pool geometry rather than from stroke distance.
type Swimming struct {
	Training
	poolLength int
	poolLaps   int
}

func NewSwimming(action int, duration, weight float64, poolLength, poolLaps int) Swimming {
	return Swimming{
		Training: Training{
			action:   action,
			duration: duration,
			weight:   weight,
			stepLen:  swimmingLenStep,
		},
		poolLength: poolLength,
		poolLaps:   poolLaps,
	}
}

func (Swimming) Kind() string {
	return "Swimming"
}

func (s Swimming) MeanSpeed() float64 {
	return float64(s.poolLength) * float64(s.poolLaps) / MInKm / s.duration
}

func (s Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimmingMeanSpeedShift) * swimmingWeightMultiplier * s.weight, nil
}
