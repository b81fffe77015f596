package application

import (
	"testing"

	"github.com/bnema/ftrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkoutDispatchesByTypeCode(t *testing.T) {
	tests := []struct {
		name     string
		pkg      domain.SensorPackage
		wantKind string
	}{
		{
			name:     "swimming",
			pkg:      domain.SensorPackage{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
			wantKind: "Swimming",
		},
		{
			name:     "running",
			pkg:      domain.SensorPackage{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
			wantKind: "Running",
		},
		{
			name:     "sports walking",
			pkg:      domain.SensorPackage{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
			wantKind: "SportsWalking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workout, err := NewWorkout(tt.pkg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, workout.Kind())
		})
	}
}

func TestNewWorkoutUnknownTypeCode(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "bike", code: "BIKE"},
		{name: "arbitrary", code: "XYZ"},
		{name: "empty", code: ""},
		{name: "lowercase run", code: "run"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workout, err := NewWorkout(domain.SensorPackage{WorkoutType: tt.code, Data: []float64{1, 1, 1}})
			require.ErrorIs(t, err, domain.ErrUnsupportedWorkoutType)
			assert.Contains(t, err.Error(), tt.code)
			assert.Nil(t, workout)
		})
	}
}

func TestNewWorkoutArityMismatch(t *testing.T) {
	tests := []struct {
		name string
		pkg  domain.SensorPackage
		want string
	}{
		{
			name: "running with walking arity",
			pkg:  domain.SensorPackage{WorkoutType: "RUN", Data: []float64{9000, 1, 75, 180}},
			want: "want 3 values, got 4",
		},
		{
			name: "walking with running arity",
			pkg:  domain.SensorPackage{WorkoutType: "WLK", Data: []float64{15000, 1, 75}},
			want: "want 4 values, got 3",
		},
		{
			name: "swimming with no data",
			pkg:  domain.SensorPackage{WorkoutType: "SWM"},
			want: "want 5 values, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorkout(tt.pkg)
			require.Error(t, err)
			assert.NotErrorIs(t, err, domain.ErrUnsupportedWorkoutType)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
