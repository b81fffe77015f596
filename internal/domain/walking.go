package domain

import "math"

const (
	walkingWeightMultiplier      = 0.035
	walkingSpeedHeightMultiplier = 0.029
)

// SportsWalking is a brisk-walking workout; the calorie formula additionally
// depends on the walker's height.
type SportsWalking struct {
	Training
	height float64
}

func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Training: Training{
			action:   action,
			duration: duration,
			weight:   weight,
			stepLen:  lenStep,
		},
		height: height,
	}
}

func (SportsWalking) Kind() string {
	return "SportsWalking"
}

func (w SportsWalking) SpentCalories() (float64, error) {
	speed := w.MeanSpeed()
	// The squared speed is floor-divided by height, matching the reference
	// formula. Not real division.
	return (walkingWeightMultiplier*w.weight +
		math.Floor(speed*speed/w.height)*walkingSpeedHeightMultiplier*w.weight) *
		(w.duration * MinInH), nil
}
