package domain

import "errors"

var (
	ErrUnsupportedWorkoutType = errors.New("unsupported workout type")
	ErrCaloriesNotImplemented = errors.New("spent calories not implemented")
)
